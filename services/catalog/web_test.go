package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogWebService(t *testing.T) {

	t.Run("List products of category sorted by price", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product?category=cat1&sort=price_desc", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		products := []Product{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &products))
		assert.Equal(t, []string{"prod7", "prod1"}, productUIDs(products))
	})

	t.Run("Search within category", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product?category=cat2&q=milk", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		products := []Product{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &products))
		assert.Equal(t, []string{"prod2"}, productUIDs(products))
	})

	t.Run("Invalid sort order", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product?sort=random", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 400, response.Code)
	})

	t.Run("Featured products", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product/featured", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		products := []Product{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &products))
		assert.Len(t, products, 4)
	})

	t.Run("Get product", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product/prod3", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		product := Product{}
		require.NoError(t, json.Unmarshal(response.Body.Bytes(), &product))
		assert.Equal(t, "Chicken Breast", product.Name)
		assert.Equal(t, "7.99", product.EffectiveUnitPrice().String())
	})

	t.Run("Get unknown product", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/product/prod42", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 404, response.Code)
	})

	t.Run("Categories", func(t *testing.T) {
		// setup
		router := setup(t)

		// when
		request, err := http.NewRequest(http.MethodGet, "/api/category/cat5", nil)
		assert.NoError(t, err)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.Contains(t, response.Body.String(), "Beverages")
	})
}

func setup(t *testing.T) *mux.Router {
	sut := NewWebService(NewFixtureProvider())
	router := mux.NewRouter()
	err := sut.RegisterEndpoints(context.TODO(), router)
	assert.NoError(t, err)
	return router
}
