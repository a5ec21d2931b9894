package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	})
	unregistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	})
	rejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "api",
		Name:      "rejected_requests_total",
		Help:      "Number of signup/unregister requests rejected, keyed by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, rejectedTotal)
}

// RecordSignup increments the successful signup counter.
func RecordSignup() {
	signupsTotal.Inc()
}

// RecordUnregistration increments the successful unregistration counter.
func RecordUnregistration() {
	unregistrationsTotal.Inc()
}

// RecordRejection counts a rejected request by reason.
func RecordRejection(reason string) {
	rejectedTotal.WithLabelValues(reason).Inc()
}
