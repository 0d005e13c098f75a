// Package auth inspects bearer tokens on the client side.
//
// The client never holds the signing key, so claims are read without
// signature verification and are only good for display and diagnostics;
// the backend remains the authority on whether a token is valid.
package auth

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/communityos/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the payload the backend puts into access tokens.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"user_id"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
}

// Inspect decodes the claims of token without verifying its signature.
// Opaque (non-JWT) tokens yield common.ErrInvalidToken.
func Inspect(token string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return claims, nil
}

// Expiry returns the expiry of the token, if it carries one.
func (c *Claims) Expiry() (time.Time, bool) {
	if c == nil || c.RegisteredClaims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return c.RegisteredClaims.ExpiresAt.Time, true
}

// Expired reports whether the token has an expiry that is not after now.
func (c *Claims) Expired(now time.Time) bool {
	exp, ok := c.Expiry()
	return ok && !exp.After(now)
}

// CheckExpiry returns common.ErrTokenExpired for a JWT that is past its
// expiry at now, and nil otherwise. Opaque tokens are never reported as
// expired.
func CheckExpiry(token string, now time.Time) error {
	claims, err := Inspect(token)
	if err != nil {
		return nil
	}
	if claims.Expired(now) {
		return common.ErrTokenExpired
	}
	return nil
}
