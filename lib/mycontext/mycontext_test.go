package mycontext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextFromHTTPRequest(t *testing.T) {
	t.Run("With cloud trace header", func(t *testing.T) {
		t.Setenv("GOOGLE_CLOUD_PROJECT", "grocery")

		request := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		request.Header.Set("X-Cloud-Trace-Context", "105445aa7843bc8bf206b12000100000/1;o=1")

		c := ContextFromHTTPRequest(request)
		assert.Equal(t, "projects/grocery/traces/105445aa7843bc8bf206b12000100000", TraceFromContext(c))
	})

	t.Run("Without trace header", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/api/cart", nil)

		c := ContextFromHTTPRequest(request)
		assert.Equal(t, "", TraceFromContext(c))
	})

	t.Run("Missing value", func(t *testing.T) {
		assert.Equal(t, "", TraceFromContext(context.Background()))
	})
}
