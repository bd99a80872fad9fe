package warmup

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/grocerystore/lib/mycontext"
	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/myhttp"
	"github.com/MarcGrol/grocerystore/lib/mykv"
	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/services/catalog"
)

const probeKey = "warmup-probe"

type webService struct {
	logger   mylog.Logger
	store    mykv.Store
	products catalog.Provider
}

// Use dependency injection to isolate the infrastructure and ease testing
func NewWebService(store mykv.Store, products catalog.Provider) *webService {
	return &webService{
		logger:   mylog.New("warmup"),
		store:    store,
		products: products,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/_ah/warmup", s.warmupPage()).Methods("GET")
	router.HandleFunc("/health", s.healthPage()).Methods("GET")

	return nil
}

// warmupPage touches storage and catalog so the first shopper does not pay for it
func (s *webService) warmupPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		_, _, err := s.store.Get(c, probeKey)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		products, err := s.products.ListProducts(c)
		if err != nil {
			responseWriter.WriteError(c, w, 2, myerrors.NewUnavailableError(err))
			return
		}
		s.logger.Log(c, "", mylog.SeverityInfo, "Warmed up with %d products", len(products))

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Successfully processed warmup request",
		})
	}
}

func (s *webService) healthPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		_, _, err := s.store.Get(c, probeKey)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{Message: "ok"})
	}
}
