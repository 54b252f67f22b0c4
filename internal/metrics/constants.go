package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every collector
const Namespace = "sololeveler"

// API client metric names
const (
	MetricNameAPIRequestsTotal   = "api_requests_total"
	MetricNameAPIRequestDuration = "api_request_duration_seconds"
)

// Synchronizer metric names
const (
	MetricNameSliceLoadsTotal    = "slice_loads_total"
	MetricNameNotificationsTotal = "notifications_total"
	MetricNameEffectsTotal       = "effects_total"
)

// Discord front-end metric names
const (
	MetricNameDiscordCommandsTotal = "discord_commands_total"
)

// Status server metric names
const (
	MetricNameHTTPRequestsTotal    = "status_http_requests_total"
	MetricNameHTTPRequestsInFlight = "status_http_requests_in_flight"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextAPIRequestsTotal     = "Total number of requests sent to the Solo Leveler API"
	HelpTextAPIRequestDuration   = "Solo Leveler API request latency in seconds"
	HelpTextSliceLoadsTotal      = "Total number of slice loads by result"
	HelpTextNotificationsTotal   = "Total number of notifications shown to the user"
	HelpTextEffectsTotal         = "Total number of transient effects played"
	HelpTextDiscordCommandsTotal = "Total number of Discord slash commands handled"
	HelpTextHTTPRequestsTotal    = "Total number of requests served by the status server"
	HelpTextHTTPRequestsInFlight = "Current number of status server requests being served"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelEndpoint = "endpoint"
	LabelOutcome  = "outcome"
	LabelSlice    = "slice"
	LabelResult   = "result"
	LabelLevel    = "level"
	LabelKind     = "kind"
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCommand  = "command"
)

// API latency buckets (seconds)
var APILatencyBuckets = []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// Log messages
const (
	LogMsgEventPayloadDecode = "Failed to decode event payload for metrics"
)
