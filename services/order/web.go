package order

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/grocerystore/lib/mycontext"
	"github.com/MarcGrol/grocerystore/lib/myhttp"
	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/lib/mypublisher"
	"github.com/MarcGrol/grocerystore/lib/mystore"
	"github.com/MarcGrol/grocerystore/lib/mytime"
	"github.com/MarcGrol/grocerystore/lib/myuuid"
	"github.com/MarcGrol/grocerystore/services/order/orderevents"
)

type webService struct {
	logger    mylog.Logger
	service   *service
	publisher mypublisher.Publisher
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewWebService(store mystore.Store[Order], ledger CartLedger, pricing Pricing, nower mytime.Nower, uuider myuuid.UUIDer, pub mypublisher.Publisher) *webService {
	logger := mylog.New("order")
	return &webService{
		logger:    logger,
		service:   newService(store, ledger, pricing, nower, uuider, logger, pub),
		publisher: pub,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	err := s.publisher.CreateTopic(c, orderevents.TopicName)
	if err != nil {
		return fmt.Errorf("error creating topic %s: %s", orderevents.TopicName, err)
	}

	router.HandleFunc("/api/order", s.placeOrder()).Methods("POST")
	router.HandleFunc("/api/order", s.listOrders()).Methods("GET")
	router.HandleFunc("/api/order/{orderUID}", s.getOrder()).Methods("GET")

	return nil
}

// placeOrder turns the current cart into an order
func (s *webService) placeOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		form, err := NewCheckoutFormFromRequest(r)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		order, err := s.service.placeOrder(c, form)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusCreated, order)
	}
}

func (s *webService) listOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		orders, err := s.service.listOrders(c, r.URL.Query().Get("status"))
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, orders)
	}
}

func (s *webService) getOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)

		orderUID := mux.Vars(r)["orderUID"]

		order, err := s.service.getOrder(c, orderUID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, order)
	}
}
