package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameDrawsTotal          = "raffle_draws_total"
	MetricNameStockConflictsTotal = "raffle_stock_conflicts_total"
	MetricNameChancesCreatedTotal = "raffle_chances_created_total"
	MetricNameChancesExpiredTotal = "raffle_chances_expired_total"
	MetricNamePrizeOrdersTotal    = "raffle_prize_orders_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextDrawsTotal          = "Total number of draws by outcome"
	HelpTextStockConflictsTotal = "Total number of draws that lost the stock race"
	HelpTextChancesCreatedTotal = "Total number of draw chances granted"
	HelpTextChancesExpiredTotal = "Total number of chances expired by the retention sweep"
	HelpTextPrizeOrdersTotal    = "Total number of prize claims placed"
)

// ============================================================================
// Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
)

// Draw outcome label values
const (
	OutcomeWin  = "win"
	OutcomeLose = "lose"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}
