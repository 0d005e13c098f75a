package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNetwork means no response was received (DNS, connect, timeout...).
	ErrNetwork = errors.New("network failure")
	// ErrUnauthorized matches any *HTTPError with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDecode means a response arrived but its body was malformed.
	ErrDecode = errors.New("malformed response")
	// ErrStorage wraps failures of the durable key/value store.
	ErrStorage = errors.New("storage failure")
	// ErrThrottled is returned when an OTP is requested again too soon.
	ErrThrottled = errors.New("otp resend throttled")
)

// HTTPError is returned for any non-2xx response.
type HTTPError struct {
	Status int
	Body   []byte
}

func (e *HTTPError) Error() string {
	if msg := e.Detail(); msg != "" {
		return fmt.Sprintf("http %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("http %d: %s", e.Status, http.StatusText(e.Status))
}

// Is lets errors.Is(err, ErrUnauthorized) match 401 responses.
func (e *HTTPError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// Detail extracts the backend's {"detail": "..."} message, if any.
func (e *HTTPError) Detail() string {
	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil || body.Detail == nil {
		return ""
	}
	if s, ok := body.Detail.(string); ok {
		return s
	}
	b, _ := json.Marshal(body.Detail)
	return string(b)
}
