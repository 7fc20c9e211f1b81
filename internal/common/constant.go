package common

const (
	// AuthHeaderName is the HTTP header carrying the bearer token.
	AuthHeaderName = "Authorization"

	// RequestIDHeaderName is attached to every outgoing API request so
	// server logs can be correlated with client logs.
	RequestIDHeaderName = "X-Request-Id"

	// SectionKeyPrefix namespaces persisted collapsible-section state in
	// the local key-value store.
	SectionKeyPrefix = "collapsible_"
)
