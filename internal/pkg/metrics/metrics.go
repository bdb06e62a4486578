package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	PurchaseResultCompleted = "completed"
	PurchaseResultRejected  = "rejected"
	PurchaseResultFailed    = "failed"
)

type Registry struct {
	reg *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	Purchases   *prometheus.CounterVec
	Reports     *prometheus.CounterVec
	Escalations prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_http_requests_total",
	}, []string{"method", "route", "status"})
	httpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "market_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	purchases := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_purchases_total",
	}, []string{"result"})
	reports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "market_reports_total",
	}, []string{"target_type"})
	escalations := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "market_escalations_total",
	})

	r.MustRegister(httpRequests, httpDuration, purchases, reports, escalations)
	return &Registry{
		reg:                 r,
		HTTPRequests:        httpRequests,
		HTTPRequestDuration: httpDuration,
		Purchases:           purchases,
		Reports:             reports,
		Escalations:         escalations,
	}
}

func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
