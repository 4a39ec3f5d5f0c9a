package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful activity sign-ups.",
	})
	unregistrationCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	})
	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "rejected_requests_total",
		Help:      "Number of rejected roster mutations, labeled by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregistrationCounter, rejectionCounter)
}

// RecordSignup increments the successful sign-up counter.
func RecordSignup() {
	signupCounter.Inc()
}

// RecordUnregistration increments the successful unregistration counter.
func RecordUnregistration() {
	unregistrationCounter.Inc()
}

// RecordRejection counts a rejected mutation under its reason label.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}
