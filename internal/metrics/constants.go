package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameSecurityBlocks       = "http_security_blocks_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameRuleRejections     = "rule_rejections_total"
	MetricNameItemsEquipped      = "items_equipped_total"
	MetricNameItemsMoved         = "items_moved_total"
	MetricNameItemsSold          = "items_sold_total"
	MetricNameGoldEarned         = "gold_earned_total"
	MetricNameDarkStoneTransfers = "dark_stone_transfers_total"
	MetricNameDefinitionsSynced  = "catalog_definitions_synced_total"
	MetricNameCharactersCreated  = "characters_created_total"
	MetricNameCharacterLevelUps  = "character_level_ups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextSecurityBlocks       = "Requests refused by auth or rate limiting, by reason"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextRuleRejections     = "Operations refused by a rule engine"
	HelpTextItemsEquipped      = "Items equipped, by slot"
	HelpTextItemsMoved         = "Item container moves, by outcome"
	HelpTextItemsSold          = "Total number of items sold"
	HelpTextGoldEarned         = "Total gold earned from selling items"
	HelpTextDarkStoneTransfers = "Dark stone moved between a character and containers"
	HelpTextDefinitionsSynced  = "Definitions inserted from seed files"
	HelpTextCharactersCreated  = "Total number of characters created"
	HelpTextCharacterLevelUps  = "Total number of level ups"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelItem      = "item"
	LabelRule      = "rule"
	LabelSlot      = "slot"
	LabelOutcome   = "outcome"
	LabelDirection = "direction"
	LabelConfig    = "config"
	LabelReason    = "reason"
)

// Label values
const (
	OutcomeMoved  = "moved"
	OutcomeMerged = "merged"

	DirectionStored    = "stored"
	DirectionRetrieved = "retrieved"

	SlotNone = "none"

	ReasonUnauthorized = "unauthorized"
	ReasonRateLimited  = "rate_limited"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets spans 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload for metrics"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
