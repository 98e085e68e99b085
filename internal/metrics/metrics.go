package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	DrawsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDrawsTotal,
			Help: HelpTextDrawsTotal,
		},
		[]string{LabelOutcome},
	)

	StockConflictsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStockConflictsTotal,
			Help: HelpTextStockConflictsTotal,
		},
	)

	ChancesCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChancesCreatedTotal,
			Help: HelpTextChancesCreatedTotal,
		},
	)

	ChancesExpiredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameChancesExpiredTotal,
			Help: HelpTextChancesExpiredTotal,
		},
	)

	PrizeOrdersTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePrizeOrdersTotal,
			Help: HelpTextPrizeOrdersTotal,
		},
	)
)
