package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	}, []string{"activity"})
	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	}, []string{"activity"})
	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "rejected_operations_total",
		Help:      "Number of roster operations rejected by validation.",
	}, []string{"reason"})
	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_api",
		Subsystem: "roster",
		Name:      "size",
		Help:      "Current participant count per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterSizeGauge)
}

// RecordSignup updates the signup counter and roster size gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregistration updates the unregistration counter and roster size gauge.
func RecordUnregistration(activity string, rosterSize int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	rosterSizeGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordRejection counts a rejected roster operation by reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}
