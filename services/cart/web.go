package cart

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/grocerystore/lib/mycontext"
	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/myhttp"
	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/services/catalog"
)

type addItemRequest struct {
	ProductUID string `json:"productUID"`
	Quantity   int    `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type webService struct {
	logger   mylog.Logger
	ledger   *Ledger
	products catalog.Provider
}

func NewWebService(ledger *Ledger, products catalog.Provider) *webService {
	return &webService{
		logger:   mylog.New("cart"),
		ledger:   ledger,
		products: products,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/cart", s.getCart()).Methods("GET")
	router.HandleFunc("/api/cart", s.clearCart()).Methods("DELETE")

	router.HandleFunc("/api/cart/item", s.addItem()).Methods("POST")
	router.HandleFunc("/api/cart/item/{productUID}", s.setQuantity()).Methods("PUT")
	router.HandleFunc("/api/cart/item/{productUID}", s.removeItem()).Methods("DELETE")

	return nil
}

func (s *webService) getCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.ledger.Snapshot())
	}
}

// addItem resolves the product through the catalog; the client only sends its uid
func (s *webService) addItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		req := addItemRequest{}
		err := myhttp.DecodeJSONBody(r, &req)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}
		if req.ProductUID == "" {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing productUID"))
			return
		}

		product, err := s.products.GetProduct(c, req.ProductUID)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		cart, err := s.ledger.AddItem(c, product, req.Quantity)
		if err != nil {
			responseWriter.WriteError(c, w, 4, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, cart)
	}
}

func (s *webService) setQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		req := setQuantityRequest{}
		err := myhttp.DecodeJSONBody(r, &req)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}
		if req.Quantity > MaxLineQuantity {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputError(fmt.Errorf("%w: got %d for product %s", ErrInvalidQuantity, req.Quantity, productUID)))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, s.ledger.SetQuantity(c, productUID, req.Quantity))
	}
}

func (s *webService) removeItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		productUID := mux.Vars(r)["productUID"]

		responseWriter.Write(c, w, http.StatusOK, s.ledger.RemoveItem(c, productUID))
	}
}

func (s *webService) clearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		responseWriter.Write(c, w, http.StatusOK, s.ledger.Clear(c))
	}
}
