// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registered with the default registry and served on GET /metrics.
var (
	// ElectionsCreated counts elections created by the operator.
	ElectionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "ballot_kiosk",
			Subsystem: "elections",
			Name:      "created_total",
			Help:      "Total number of elections created",
		},
	)

	// Transitions counts lifecycle transitions by target status.
	Transitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ballot_kiosk",
			Subsystem: "elections",
			Name:      "transitions_total",
			Help:      "Election state transitions by target status",
		},
		[]string{"status"},
	)

	// VotesCast counts accepted votes per election.
	VotesCast = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ballot_kiosk",
			Subsystem: "votes",
			Name:      "cast_total",
			Help:      "Total number of votes accepted",
		},
		[]string{"election"},
	)

	// VotesRejected counts rejected vote attempts by reason.
	VotesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ballot_kiosk",
			Subsystem: "votes",
			Name:      "rejected_total",
			Help:      "Vote attempts rejected by reason",
		},
		[]string{"reason"},
	)

	// Exports counts export attempts by sink (file, archive) and outcome.
	Exports = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ballot_kiosk",
			Subsystem: "exports",
			Name:      "total",
			Help:      "Result exports by sink and outcome",
		},
		[]string{"sink", "outcome"},
	)
)
