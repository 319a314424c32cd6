package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionStorage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStorage()

	_, ok, err := s.Get(ctx, "SDK_LINK")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "SDK_LINK", "1"))
	require.NoError(t, s.Set(ctx, "SDK_DID", "did:example:123"))

	value, ok, err := s.Get(ctx, "SDK_DID")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "did:example:123", value)

	require.NoError(t, s.Remove(ctx, "SDK_LINK", "SDK_DID", "missing"))

	_, ok, _ = s.Get(ctx, "SDK_LINK")
	assert.False(t, ok)
	_, ok, _ = s.Get(ctx, "SDK_DID")
	assert.False(t, ok)
}

func TestMemorySessionStorage_EmptyValueIsPresent(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStorage()

	require.NoError(t, s.Set(ctx, "SDK_LINK", ""))

	value, ok, err := s.Get(ctx, "SDK_LINK")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestMemorySessionStorage_EmptyKey(t *testing.T) {
	s := NewMemorySessionStorage()

	assert.ErrorIs(t, s.Set(context.Background(), "", "x"), ErrEmptyKey)
	_, _, err := s.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestMemorySessionStorage_Concurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySessionStorage()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Set(ctx, "SDK_LINK", "1")
			_, _, _ = s.Get(ctx, "SDK_LINK")
			_ = s.Remove(ctx, "SDK_LINK")
		}()
	}
	wg.Wait()
}
