package services

import (
	"github.com/SscSPs/corebank/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine metrics. Labels are closed variants only; card numbers never become label values.
var (
	transactionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "corebank_transactions_total",
		Help: "Processed transaction attempts by kind, outcome and reason.",
	}, []string{"kind", "outcome", "reason"})

	transactionFaultsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "corebank_transaction_faults_total",
		Help: "Transaction attempts aborted by a storage or crypto fault.",
	}, []string{"class"})

	transactionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "corebank_transaction_duration_seconds",
		Help:    "Latency of a full Process unit of work.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
)

var reasonLabels = map[string]string{
	domain.MsgInvalidCard:         "invalid_card",
	domain.MsgCardInactive:        "card_inactive",
	domain.MsgInvalidPIN:          "invalid_pin",
	domain.MsgAmountNotPositive:   "amount_not_positive",
	domain.MsgAmountPrecision:     "amount_precision",
	domain.MsgInsufficientBalance: "insufficient_balance",
	domain.MsgInvalidKind:         "invalid_kind",
	domain.MsgWithdrawalSuccess:   "ok",
	domain.MsgTopUpSuccess:        "ok",
}

// reasonLabel maps a result message to a bounded label value.
func reasonLabel(message string) string {
	if l, ok := reasonLabels[message]; ok {
		return l
	}
	return "other"
}
