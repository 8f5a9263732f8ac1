package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetForget(t *testing.T) {
	c := NewMemoryCache()

	require.NoError(t, c.Set("k", "v", 0))

	ok, err := c.Has("k")
	require.NoError(t, err)
	assert.True(t, ok)

	val, ok, err := c.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", val)

	require.NoError(t, c.Forget("k"))
	ok, err = c.Has("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	now := time.Now()
	c := NewMemoryCache()
	c.SetClock(func() time.Time { return now })

	require.NoError(t, c.Set("k", "v", 10))

	ok, err := c.Has("k")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(11 * time.Minute)

	ok, err = c.Has("k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCache_Remember(t *testing.T) {
	c := NewMemoryCache()
	calls := 0

	producer := func() (string, error) {
		calls++
		return "produced", nil
	}

	val, err := c.Remember("k", 10, producer)
	require.NoError(t, err)
	assert.Equal(t, "produced", val)

	val, err = c.Remember("k", 10, producer)
	require.NoError(t, err)
	assert.Equal(t, "produced", val)
	assert.Equal(t, 1, calls)
}
