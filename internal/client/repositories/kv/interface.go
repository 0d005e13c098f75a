package kv

import (
	"context"
)

// Repository is a durable string key/value store.
//
// Get reports ok=false for a missing key. Delete accepts several keys and
// ignores the ones that do not exist.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
