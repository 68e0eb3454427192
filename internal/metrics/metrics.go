// Package metrics exposes prometheus instrumentation for activity rosters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "activities"

// Operation labels.
const (
	OperationSignup     = "signup"
	OperationUnregister = "unregister"
)

// Metrics groups the roster collectors.
type Metrics struct {
	Signups         *prometheus.CounterVec
	Unregistrations *prometheus.CounterVec
	Rejections      *prometheus.CounterVec
	Participants    *prometheus.GaugeVec
}

// New creates the collectors and registers them on reg.
// A nil reg leaves the collectors unregistered.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Signups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "signups_total",
				Help:      "Total number of successful activity signups",
			},
			[]string{"activity"},
		),
		Unregistrations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "unregistrations_total",
				Help:      "Total number of successful activity unregistrations",
			},
			[]string{"activity"},
		),
		Rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejections_total",
				Help:      "Total number of rejected roster changes",
			},
			[]string{"operation", "reason"},
		),
		Participants: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "participants",
				Help:      "Current number of participants per activity",
			},
			[]string{"activity"},
		),
	}
}

// RecordSignup counts a signup and updates the roster size.
func (m *Metrics) RecordSignup(activity string, participants int) {
	m.Signups.WithLabelValues(activity).Inc()
	m.SetParticipants(activity, participants)
}

// RecordUnregister counts an unregistration and updates the roster size.
func (m *Metrics) RecordUnregister(activity string, participants int) {
	m.Unregistrations.WithLabelValues(activity).Inc()
	m.SetParticipants(activity, participants)
}

// RecordRejection counts a failed roster change.
func (m *Metrics) RecordRejection(operation, reason string) {
	m.Rejections.WithLabelValues(operation, reason).Inc()
}

// SetParticipants sets the roster size gauge.
func (m *Metrics) SetParticipants(activity string, participants int) {
	m.Participants.WithLabelValues(activity).Set(float64(participants))
}
