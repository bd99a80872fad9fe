package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/grocerystore/lib/mycontext"
	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/myhttp"
	"github.com/MarcGrol/grocerystore/lib/mylog"
)

type webService struct {
	logger   mylog.Logger
	provider Provider
}

func NewWebService(provider Provider) *webService {
	return &webService{
		logger:   mylog.New("catalog"),
		provider: provider,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/product", s.listProducts()).Methods("GET")
	router.HandleFunc("/api/product/featured", s.featuredProducts()).Methods("GET")
	router.HandleFunc("/api/product/{productUID}", s.getProduct()).Methods("GET")

	router.HandleFunc("/api/category", s.listCategories()).Methods("GET")
	router.HandleFunc("/api/category/{categoryUID}", s.getCategory()).Methods("GET")

	return nil
}

// listProducts supports narrowing by category or search query and ordering the result
func (s *webService) listProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		categoryUID := r.URL.Query().Get("category")
		query := r.URL.Query().Get("q")
		order, ok := ParseSortOrder(r.URL.Query().Get("sort"))
		if !ok {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputErrorf("unknown sort order '%s'", r.URL.Query().Get("sort")))
			return
		}

		s.logger.Log(c, categoryUID, mylog.SeverityInfo, "List products (category:'%s', query:'%s', sort:%s)", categoryUID, query, order)

		var products []Product
		var err error
		if categoryUID != "" {
			products, err = s.provider.ProductsByCategory(c, categoryUID)
		} else {
			products, err = s.provider.SearchProducts(c, query)
		}
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		if categoryUID != "" && query != "" {
			products = narrow(products, query)
		}

		responseWriter.Write(c, w, http.StatusOK, SortProducts(products, order))
	}
}

func narrow(products []Product, query string) []Product {
	q := strings.ToLower(strings.TrimSpace(query))
	result := []Product{}
	for _, product := range products {
		if matchesQuery(product, q) {
			result = append(result, product)
		}
	}
	return result
}

func (s *webService) featuredProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		products, err := s.provider.FeaturedProducts(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s *webService) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		product, err := s.provider.GetProduct(c, productUID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s *webService) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		categories, err := s.provider.ListCategories(c)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInternalError(fmt.Errorf("error listing categories: %s", err)))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, categories)
	}
}

func (s *webService) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		categoryUID := mux.Vars(r)["categoryUID"]

		category, err := s.provider.GetCategory(c, categoryUID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, category)
	}
}
