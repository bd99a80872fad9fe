package mymetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	CartMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Total number of cart mutations",
	}, []string{"mutation"})

	CartItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cart_items",
		Help: "Number of units currently in the cart",
	})

	CartLineItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "cart_line_items",
		Help: "Number of distinct products currently in the cart",
	})

	CartPersistFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "cart_persist_failures_total",
		Help: "Total number of failed cart snapshot writes",
	})

	OrdersPlacedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Total number of orders placed",
	})

	OrdersFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_failed_total",
		Help: "Total number of failed checkouts",
	}, []string{"reason"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)

func RegisterEndpoints(router *mux.Router) {
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// Middleware records latency and count per route template.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}
		status := strconv.Itoa(recorder.status)

		HTTPRequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(start).Seconds())
		HTTPRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
