package myhttp

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
	"github.com/MarcGrol/grocerystore/lib/mylog"
)

type ResponseWriter interface {
	WriteError(c context.Context, w http.ResponseWriter, errorCode int, err error)
	Write(c context.Context, w http.ResponseWriter, httpStatus int, resp any)
}

type ErrorResponse struct {
	ErrorCode int    `json:"errorCode"`
	Message   string `json:"message"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

func NewWriter(logger mylog.Logger) ResponseWriter {
	return &responseWriter{
		logger: logger,
	}
}

type responseWriter struct {
	logger mylog.Logger
}

func (rw responseWriter) WriteError(c context.Context, w http.ResponseWriter, errorCode int, err error) {
	httpStatus := myerrors.GetHTTPStatus(err)
	rw.logger.Log(c, "", mylog.SeverityWarn, "Error response: http-status:%d, error-code:%d, error-msg:%s", httpStatus, errorCode, err)
	rw.write(c, w, httpStatus, ErrorResponse{
		ErrorCode: errorCode,
		Message:   err.Error(),
	})
}

func (rw responseWriter) Write(c context.Context, w http.ResponseWriter, httpStatus int, resp any) {
	rw.logger.Log(c, "", mylog.SeverityDebug, "Success response: http-status:%d", httpStatus)
	rw.write(c, w, httpStatus, resp)
}

func (rw responseWriter) write(c context.Context, w http.ResponseWriter, httpStatus int, resp any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "\t")
	err := encoder.Encode(resp)
	if err != nil {
		rw.logger.Log(c, "", mylog.SeverityError, "Error writing response: %s", err)
	}
}
