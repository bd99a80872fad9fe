package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/grocerystore/lib/myconfig"
	"github.com/MarcGrol/grocerystore/lib/mykv"
	"github.com/MarcGrol/grocerystore/lib/mylog"
	"github.com/MarcGrol/grocerystore/lib/mymetrics"
	"github.com/MarcGrol/grocerystore/lib/mypublisher"
	"github.com/MarcGrol/grocerystore/lib/mypubsub"
	"github.com/MarcGrol/grocerystore/lib/mystore"
	"github.com/MarcGrol/grocerystore/lib/mytime"
	"github.com/MarcGrol/grocerystore/lib/myuuid"
	"github.com/MarcGrol/grocerystore/services/cart"
	"github.com/MarcGrol/grocerystore/services/catalog"
	"github.com/MarcGrol/grocerystore/services/order"
	"github.com/MarcGrol/grocerystore/services/preferences"
	"github.com/MarcGrol/grocerystore/services/warmup"
)

type webService interface {
	RegisterEndpoints(c context.Context, router *mux.Router) error
}

func main() {
	c := context.Background()
	defer mylog.Sync()

	cfg, err := myconfig.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %s", err)
	}
	logger := mylog.New("main")

	kvStore, kvCleanup, err := mykv.New(c, cfg.Storage)
	if err != nil {
		log.Fatalf("Error opening %s storage: %s", cfg.Storage.Backend, err)
	}
	defer kvCleanup()

	orderStore, orderStoreCleanup, err := mystore.New[order.Order](c, cfg.Events.GoogleCloudProject)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c, cfg.Events)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()
	publisher := mypublisher.New(pubsub, mytime.RealNower{}, mylog.New("publisher"))

	cartLogger := mylog.New("cart")
	persister := cart.NewPersister(kvStore, cartLogger)
	ledger := cart.NewLedger(cart.LoadCart(c, kvStore, cartLogger), cartLogger, persister, cart.NewMetricsObserver())

	products := catalog.NewFixtureProvider()

	router := mux.NewRouter()
	router.Use(mymetrics.Middleware)
	mymetrics.RegisterEndpoints(router)

	services := []webService{
		catalog.NewWebService(products),
		cart.NewWebService(ledger, products),
		order.NewWebService(orderStore, ledger, order.Pricing{
			Currency:    cfg.Checkout.Currency,
			DeliveryFee: cfg.Checkout.DeliveryFee,
		}, mytime.RealNower{}, myuuid.RealUUIDer{}, publisher),
		preferences.NewWebService(c, kvStore),
		warmup.NewWebService(kvStore, products),
	}
	for _, s := range services {
		err = s.RegisterEndpoints(c, router)
		if err != nil {
			log.Fatalf("Error registering endpoints: %s", err)
		}
	}

	startWebServerBlocking(c, cfg.Server.Port, router, logger)

	err = persister.Close()
	if err != nil {
		logger.Log(c, "", mylog.SeverityError, "Error writing final cart snapshot: %s", err)
	}
}

// startWebServerBlocking returns once the server has drained after SIGINT or SIGTERM.
func startWebServerBlocking(c context.Context, port string, router *mux.Router, logger mylog.Logger) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log(c, "", mylog.SeverityInfo, "Starting webserver on port %s (try http://localhost:%s)", port, port)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting webserver on port %s: %s", port, err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log(c, "", mylog.SeverityInfo, "Shutting down webserver")

	shutdownCtx, cancel := context.WithTimeout(c, 10*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		logger.Log(c, "", mylog.SeverityError, "Webserver forced to shutdown: %s", err)
	}
}
