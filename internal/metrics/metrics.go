package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	Validations     *prometheus.CounterVec
	FieldViolations *prometheus.CounterVec
	Submissions     *prometheus.CounterVec
	PlaceLatencySec prometheus.Histogram
	CartMutations   *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	validations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkout_validations_total",
		Help: "Checkout form validations by result.",
	}, []string{"result"})
	violations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_checkout_field_violations_total",
		Help: "Rejected checkout fields.",
	}, []string{"field"})
	submissions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_submissions_total",
		Help: "Order placement attempts by result.",
	}, []string{"result"})
	latency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "storefront_order_place_seconds",
		Buckets: prometheus.DefBuckets,
	})
	cart := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_cart_mutations_total",
	}, []string{"op"})

	r.MustRegister(validations, violations, submissions, latency, cart)
	return &Registry{
		reg:             r,
		Validations:     validations,
		FieldViolations: violations,
		Submissions:     submissions,
		PlaceLatencySec: latency,
		CartMutations:   cart,
	}
}

// The recording helpers accept a nil receiver so callers can run without metrics.

func (r *Registry) ObserveValidation(violated []string) {
	if r == nil {
		return
	}
	if len(violated) == 0 {
		r.Validations.WithLabelValues("ok").Inc()
		return
	}
	r.Validations.WithLabelValues("invalid").Inc()
	for _, f := range violated {
		r.FieldViolations.WithLabelValues(f).Inc()
	}
}

func (r *Registry) ObserveSubmission(result string, took time.Duration) {
	if r == nil {
		return
	}
	r.Submissions.WithLabelValues(result).Inc()
	if took > 0 {
		r.PlaceLatencySec.Observe(took.Seconds())
	}
}

func (r *Registry) ObserveCart(op string) {
	if r == nil {
		return
	}
	r.CartMutations.WithLabelValues(op).Inc()
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
