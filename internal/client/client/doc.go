// Package client talks to the Community OS backend over REST.
//
// # Overview
//
// HTTPClient is a typed client for the backend API (auth, geography, events,
// clubs, leaderboard, admin). Every request goes through authTransport, an
// http.RoundTripper with two interceptors:
//
//  1. Outbound: the bearer token is read from the durable key/value store
//     (not from the in-memory session) and sent as
//     "Authorization: Bearer <token>"; without a token the request is
//     anonymous. Each request also carries an X-Request-ID.
//  2. Inbound: a 401 response removes the persisted token and user and then
//     notifies OnUnauthorized subscribers, so the session store can drop
//     its in-memory state too. The response itself reaches the caller
//     unchanged.
//
// # Error Handling
//
// Failures are reported as ErrNetwork (no response), *HTTPError (non-2xx;
// errors.Is(err, ErrUnauthorized) for 401), ErrDecode (malformed body) and
// ErrThrottled (OTP resend too soon). Nothing is retried.
package client
