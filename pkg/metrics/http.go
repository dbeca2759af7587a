package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of HTTP requests by route
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quickbite_http_request_duration_seconds",
		Help:    "Latency of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	// Total cart mutations served, by operation (add, remove)
	CartOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quickbite_cart_operations_total",
		Help: "Total cart add/remove operations",
	}, []string{"operation"})

	// Total simulated checkout confirmations rendered
	CheckoutTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quickbite_checkout_confirmations_total",
		Help: "Total final order confirmations served",
	})
)

func Init() {
	prometheus.MustRegister(
		RequestDuration,
		CartOperations,
		CheckoutTotal,
	)
}
