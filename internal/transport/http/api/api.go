// Package api holds the wire-level helpers shared by all HTTP handlers:
// the error body shape and JSON response writers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/grupo99/catalog-service/pkg/logger"
)

// TimeLayout is the timestamp format of every response body: second
// precision, no timezone offset.
const TimeLayout = "2006-01-02T15:04:05"

type ErrorResponse struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "failed to encode response", logger.ErrorF(err))
	}
}

func WriteError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	WriteJSON(w, r, status, ErrorResponse{
		Code:    int32(status),
		Message: msg,
	})
}
