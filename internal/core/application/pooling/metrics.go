package pooling

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	failureNotAParticipant = "not_a_participant"
	failureNothingDue      = "nothing_due"
	failureTransfer        = "transfer_failed"
	failureOther           = "other"
)

var (
	withdrawalsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pooling_withdrawals_total",
			Help: "Number of successful withdrawals.",
		},
		[]string{"asset"},
	)
	withdrawnAmountCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pooling_withdrawn_amount_total",
			Help: "Amount of asset paid out by withdrawals, in base units.",
		},
		[]string{"asset"},
	)
	withdrawalFailuresCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pooling_withdrawal_failures_total",
			Help: "Number of rejected or failed withdrawals.",
		},
		[]string{"reason"},
	)
)
