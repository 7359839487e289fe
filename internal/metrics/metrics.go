// Package metrics declares the prometheus instruments for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_signups_total",
			Help: "Total number of signup attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	Unregistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "activity_unregistrations_total",
			Help: "Total number of unregister attempts by activity and outcome",
		},
		[]string{"activity", "outcome"},
	)

	RosterSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "activity_roster_size",
			Help: "Current number of participants per activity",
		},
		[]string{"activity"},
	)
)
