package status

import "time"

// Routes
const (
	RouteHealthz = "/healthz"
	RouteReadyz  = "/readyz"
	RouteSlices  = "/slices"
	RouteMetrics = "/metrics"
)

// Health states
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	StatusDegraded    = "degraded"
)

// Messages
const (
	MsgNotReady        = "initial load incomplete"
	LogMsgServerStart  = "Status server starting"
	LogMsgServerFailed = "Status server failed"
	LogMsgShutdownFail = "Status server shutdown failed"
	LogMsgRequest      = "Status request"
	LogMsgCheckFailed  = "Health check failed"
)

// Security headers
const (
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"

	HeaderValueNoSniff            = "nosniff"
	HeaderValueDeny               = "DENY"
	HeaderValueReferrerNoReferrer = "no-referrer"
)

const (
	headerContentType = "Content-Type"
	contentTypeJSON   = "application/json"
)

const (
	readHeaderTimeout = 5 * time.Second
	checkTimeout      = 2 * time.Second
	shutdownTimeout   = 5 * time.Second
)
