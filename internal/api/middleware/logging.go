package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type logContextKey string

const LoggerKey = logContextKey("logger")

const requestIDHeader = "X-Request-ID"

// statusWriter remembers the status the handler wrote.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

func (sw *statusWriter) Unwrap() http.ResponseWriter {
	return sw.ResponseWriter
}

// Logging attaches a request scoped logger to the context and logs the start
// and outcome of every request. routes is consulted only for the matched
// pattern, so /api/v1/products/{id} is logged once instead of per product.
func Logging(routes *http.ServeMux, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		logger := slog.Default().With(
			slog.String("correlation_id", requestID),
			slog.String("http_method", r.Method),
			slog.String("http_path", r.URL.Path),
			slog.String("http_route", matchedRoute(routes, r)),
			slog.String("remote_addr", r.RemoteAddr),
			slog.String("user_agent", r.UserAgent()),
		)
		logger.Info("Incoming request")

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(context.WithValue(r.Context(), LoggerKey, logger)))

		logger.Log(r.Context(), levelFor(sw.status), "Request completed",
			slog.Int("http_status", sw.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func matchedRoute(routes *http.ServeMux, r *http.Request) string {
	if routes == nil {
		return "unmatched"
	}
	if _, pattern := routes.Handler(r); pattern != "" {
		return pattern
	}

	return "unmatched"
}

// levelFor raises server failures to Error and client mistakes to Warn.
func levelFor(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*slog.Logger); ok {
		return logger
	}

	return slog.Default()
}
