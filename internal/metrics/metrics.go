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

	SecurityBlocks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSecurityBlocks,
			Help: HelpTextSecurityBlocks,
		},
		[]string{LabelReason},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	RuleRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRuleRejections,
			Help: HelpTextRuleRejections,
		},
		[]string{LabelRule},
	)

	ItemsEquipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsEquipped,
			Help: HelpTextItemsEquipped,
		},
		[]string{LabelSlot},
	)

	ItemsMoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsMoved,
			Help: HelpTextItemsMoved,
		},
		[]string{LabelOutcome},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	GoldEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldEarned,
			Help: HelpTextGoldEarned,
		},
	)

	DarkStoneTransfers = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDarkStoneTransfers,
			Help: HelpTextDarkStoneTransfers,
		},
		[]string{LabelDirection},
	)

	DefinitionsSynced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDefinitionsSynced,
			Help: HelpTextDefinitionsSynced,
		},
		[]string{LabelConfig},
	)

	CharactersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCharactersCreated,
			Help: HelpTextCharactersCreated,
		},
	)

	CharacterLevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCharacterLevelUps,
			Help: HelpTextCharacterLevelUps,
		},
	)
)
