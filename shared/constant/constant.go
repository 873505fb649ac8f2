package constant

const (
	RequestParamID   = "id"
	RequestParamZone = "zone"
)

const (
	// DateLayout and ClockLayout are the boundary formats for civil input.
	DateLayout        = "2006-01-02"
	ClockLayout       = "15:04"
	ClockLayoutSecond = "15:04:05"
	CivilLayout       = "2006-01-02 15:04:05"

	// DisplayTimeLayout and DisplayDateLayout render values for the view layer.
	DisplayTimeLayout = "03:04:05 PM"
	DisplayDateLayout = "Mon, Jan 2, 2006"
)

const (
	OtelServiceScopeName    = "service"
	OtelHandlerScopeName    = "handler"
	OtelRepositoryScopeName = "repository"
	OtelCacheScopeName      = "cache"

	OtelZoneAttributeKey    = "zone"
	OtelSourceAttributeKey  = "source.zone"
	OtelTargetsAttributeKey = "target.zones"
)

const (
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderCacheControl       = "Cache-Control"
	RequestHeaderConnection         = "Connection"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON        = "application/json"
	ContentTypeEventStream = "text/event-stream"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseMessageNoTargets          = "No target time zones selected. Please add at least one."
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	CacheKeySeparator = ":"
	Empty             = ""
)
