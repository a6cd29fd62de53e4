package util

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key and log field of the request id.
	RequestIDKey = "requestId"
)
