package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomboydon/landing_backend/internal/i18n"
)

func TestNoopNeverHits(t *testing.T) {
	ctx := context.Background()
	var c Landing = Noop{}

	require.NoError(t, c.Set(ctx, i18n.Ru, []byte(`{"x":1}`)))
	data, ok, err := c.Get(ctx, i18n.Ru)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
	assert.NoError(t, c.Invalidate(ctx))
}

func TestRedisLandingKeys(t *testing.T) {
	r := NewRedisLanding(redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"}), time.Minute)
	assert.Equal(t, "landing:ru", r.key(i18n.Ru))

	r.Prefix = "test:"
	assert.Equal(t, "test:en", r.key(i18n.Default))
}
