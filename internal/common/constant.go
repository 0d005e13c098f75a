// Package common contains shared constants and sentinel errors used across
// Community OS client components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer token on
// outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the raw token in AuthorizationHeaderName.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags every outbound request with a unique id.
const RequestIDHeaderName = "X-Request-ID"

// Keys of the persisted session record in the local key/value store.
const (
	TokenStorageKey = "auth_token"
	UserStorageKey  = "user"
)
