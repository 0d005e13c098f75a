package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepository_RoundTrip(t *testing.T) {
	m := NewMemoryRepository()
	ctx := context.Background()

	_, ok, err := m.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, m.Set(ctx, "auth_token", "abc"))
	require.NoError(t, m.Set(ctx, "user", "{}"))
	require.Equal(t, 2, m.Len())

	v, ok, err := m.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "abc", v)

	require.NoError(t, m.Delete(ctx, "auth_token", "user", "missing"))
	require.Zero(t, m.Len())
}

func TestMemoryRepository_InjectedFailures(t *testing.T) {
	boom := errors.New("disk full")
	m := NewMemoryRepository()
	m.FailGet, m.FailSet, m.FailDelete = boom, boom, boom
	ctx := context.Background()

	_, _, err := m.Get(ctx, "k")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, m.Set(ctx, "k", "v"), boom)
	require.ErrorIs(t, m.Delete(ctx, "k"), boom)
}
