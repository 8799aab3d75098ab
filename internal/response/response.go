// Package response writes JSON bodies and the error envelope shared by
// handlers and middlewares.
package response

import (
	"encoding/json"
	"net/http"

	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
	"github.com/sbilibin2017/gw-bookmarker/internal/logger"
)

// ErrorBody is the payload of every failed request.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps ErrorBody as {"error": {...}}.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

// OK writes v with 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Created writes v with 201.
func Created(w http.ResponseWriter, v any) {
	JSON(w, http.StatusCreated, v)
}

// Error writes the envelope for err. Domain errors keep their message and
// status; anything else is logged and answered with a generic 500.
func Error(w http.ResponseWriter, err error) {
	var domainErr *domainerrors.Error
	if !domainerrors.As(err, &domainErr) || domainErr.Code == domainerrors.CodeInternal {
		logger.Log.Errorw("unhandled error", "err", err)
		Status(w, http.StatusInternalServerError, domainerrors.ErrInternal.Message)
		return
	}

	status := domainErr.HTTPStatus()
	JSON(w, status, ErrorEnvelope{Error: ErrorBody{
		Message: domainErr.Message,
		Status:  status,
		Details: domainErr.Details,
	}})
}

// Status writes the envelope with an explicit status and message.
func Status(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorEnvelope{Error: ErrorBody{Message: message, Status: status}})
}
