package myerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func (e httpError) Unwrap() error {
	return e.err
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) error {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...any) error {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

func NewNotFoundError(err error) error {
	return newError(http.StatusNotFound, err)
}

func NewConflictError(err error) error {
	return newError(http.StatusConflict, err)
}

func NewUnsupportedMediaTypeError(err error) error {
	return newError(http.StatusUnsupportedMediaType, err)
}

func NewInternalError(err error) error {
	return newError(http.StatusInternalServerError, err)
}

func NewNotImplementedError(err error) error {
	return newError(http.StatusNotImplemented, err)
}

func NewUnavailableError(err error) error {
	return newError(http.StatusServiceUnavailable, err)
}

// GetHTTPStatus returns the status of the outermost coded error in the chain.
func GetHTTPStatus(err error) int {
	var coder httpErrorCoder
	if err != nil && errors.As(err, &coder) {
		return coder.GetHTTPErrorCode()
	}
	return http.StatusInternalServerError
}
