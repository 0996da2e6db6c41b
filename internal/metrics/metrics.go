package metrics

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Checkout outcomes.
const (
	CheckoutSucceeded = "success"
	CheckoutEmptyCart = "empty_cart"
	CheckoutNotFound  = "not_found"
	CheckoutReplayed  = "replayed"
	CheckoutFailed    = "error"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	checkoutsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecofinds_checkouts_total",
			Help: "Checkout attempts by outcome.",
		},
		[]string{"outcome"},
	)

	ordersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ecofinds_orders_created_total",
			Help: "Orders written by committed checkouts.",
		},
	)

	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecofinds_checkout_notifications_total",
			Help: "Post-checkout notifications by channel and result.",
		},
		[]string{"channel", "result"},
	)
)

func init() {
	for _, c := range []prometheus.Collector{
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	} {
		var already prometheus.AlreadyRegisteredError
		if err := prometheus.Register(c); err != nil && !errors.As(err, &already) {
			slog.Warn("runtime collector not registered", slog.Any("error", err))
		}
	}
}

// RecordCheckout counts one checkout attempt and the orders it created.
func RecordCheckout(outcome string, orders int) {
	checkoutsTotal.WithLabelValues(outcome).Inc()
	if orders > 0 {
		ordersCreatedTotal.Add(float64(orders))
	}
}

func RecordNotification(channel string, err error) {
	result := "sent"
	if err != nil {
		result = "failed"
	}

	notificationsTotal.WithLabelValues(channel, result).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }

const unmatchedRoute = "unmatched"

// routeLabel returns the ServeMux pattern r matches so product ids and other
// path values stay out of label values.
func routeLabel(mux *http.ServeMux, r *http.Request) string {
	if mux == nil {
		return unmatchedRoute
	}

	if _, pattern := mux.Handler(r); pattern != "" {
		return pattern
	}

	return unmatchedRoute
}

func Middleware(next http.Handler) http.Handler {
	mux, _ := next.(*http.ServeMux)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := routeLabel(mux, r)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		httpRequestsInFlight.Inc()
		timer := prometheus.NewTimer(httpRequestsDuration.WithLabelValues(r.Method, route))

		defer func() {
			timer.ObserveDuration()
			httpRequestsInFlight.Dec()
			httpRequestsTotal.WithLabelValues(strconv.Itoa(rec.status), r.Method, route).Inc()
		}()

		next.ServeHTTP(rec, r)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
