package common

import "errors"

var (
	// ErrorUnauthenticated is returned by operations that need a signed-in user.
	ErrorUnauthenticated = errors.New("not authenticated")

	// Token inspection errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
