package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/ecofinds-marketplace/internal/errors"
)

const contentTypeJSON = "application/json"

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

var unexpected = ErrorResponse{
	Code:    errors.ErrCodeInternal,
	Message: "An unexpected error occurred",
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	write(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error renders err in the envelope. Anything that is not an AppError is
// reported as a generic 500 so driver messages never reach the client.
func Error(w http.ResponseWriter, err error) {
	status, body := describe(err)
	write(w, status, APIResponse{Error: body})
}

func describe(err error) (int, *ErrorResponse) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		body := unexpected
		return http.StatusInternalServerError, &body
	}

	return appErr.StatusCode, &ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}
}

func write(w http.ResponseWriter, statusCode int, body APIResponse) {
	h := w.Header()
	h.Set("Content-Type", contentTypeJSON)
	h.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to write response", slog.Int("status", statusCode), slog.Any("error", err))
	}
}
