// Package metrics holds the Prometheus instruments for the registration API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RegistrationsAccepted prometheus.Counter
	RegistrationsRejected prometheus.Counter
	RegistrationConflicts prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RegistrationsAccepted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nousmei_registrations_accepted_total",
			Help: "Registrations validated and persisted",
		}),
		RegistrationsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nousmei_registrations_rejected_total",
			Help: "Registrations rejected by field validation",
		}),
		RegistrationConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nousmei_registration_conflicts_total",
			Help: "Registrations rejected because the CNPJ already exists",
		}),
	}
}
