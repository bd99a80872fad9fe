package myhttp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/mylog"
)

func TestResponseWriter(t *testing.T) {
	writer := NewWriter(mylog.New("myhttp"))

	t.Run("Write error", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.WriteError(context.TODO(), response, 3, myerrors.NewNotFoundError(errors.New("product prod9 not found")))

		assert.Equal(t, http.StatusNotFound, response.Code)
		assert.Equal(t, "application/json", response.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"errorCode":3,"message":"status: 404, err: product prod9 not found"}`, response.Body.String())
	})

	t.Run("Write success", func(t *testing.T) {
		response := httptest.NewRecorder()

		writer.Write(context.TODO(), response, http.StatusCreated, SuccessResponse{Message: "ok"})

		assert.Equal(t, http.StatusCreated, response.Code)
		assert.JSONEq(t, `{"message":"ok"}`, response.Body.String())
	})
}

func TestDecodeJSONBody(t *testing.T) {
	type body struct {
		Quantity int `json:"quantity"`
	}

	t.Run("Valid", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"quantity":3}`))
		b := body{}
		err := DecodeJSONBody(request, &b)
		assert.NoError(t, err)
		assert.Equal(t, 3, b.Quantity)
	})

	t.Run("Unknown field", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"qty":3}`))
		err := DecodeJSONBody(request, &body{})
		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
	})

	t.Run("Malformed", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{`))
		err := DecodeJSONBody(request, &body{})
		assert.Equal(t, http.StatusBadRequest, myerrors.GetHTTPStatus(err))
	})
}
