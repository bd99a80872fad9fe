package myhttp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
)

const maxRequestBodySize = 1 << 20

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// DecodeJSONBody decodes the request body into dest. Unknown fields are rejected.
func DecodeJSONBody(r *http.Request, dest any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodySize))
	decoder.DisallowUnknownFields()
	err := decoder.Decode(dest)
	if err != nil {
		return myerrors.NewInvalidInputError(fmt.Errorf("error parsing request body: %s", err))
	}
	return nil
}
