package mymetrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware(t *testing.T) {
	router := mux.NewRouter()
	router.Use(Middleware)
	router.HandleFunc("/api/product/{productUID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods("GET")
	RegisterEndpoints(router)

	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/product/{productUID}", "404"))

	request := httptest.NewRequest(http.MethodGet, "/api/product/prod9", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)

	assert.Equal(t, http.StatusNotFound, response.Code)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/product/{productUID}", "404"))
	assert.Equal(t, before+1, after)

	t.Run("Metrics endpoint", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		assert.Equal(t, http.StatusOK, response.Code)
		assert.Contains(t, response.Body.String(), "http_requests_total")
	})
}
