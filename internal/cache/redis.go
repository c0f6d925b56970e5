package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/jomboydon/landing_backend/internal/i18n"
)

const defaultPrefix = "landing:"

type RedisLanding struct {
	Client *redis.Client
	TTL    time.Duration
	Prefix string
}

func NewRedisLanding(client *redis.Client, ttl time.Duration) *RedisLanding {
	return &RedisLanding{Client: client, TTL: ttl, Prefix: defaultPrefix}
}

func (r *RedisLanding) key(loc i18n.Locale) string {
	prefix := r.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return prefix + string(loc)
}

func (r *RedisLanding) Get(ctx context.Context, loc i18n.Locale) ([]byte, bool, error) {
	data, err := r.Client.Get(ctx, r.key(loc)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisLanding) Set(ctx context.Context, loc i18n.Locale, data []byte) error {
	return r.Client.Set(ctx, r.key(loc), data, r.TTL).Err()
}

// Invalidate drops every locale; called after any content write.
func (r *RedisLanding) Invalidate(ctx context.Context) error {
	keys := make([]string, 0, len(i18n.Supported))
	for _, loc := range i18n.Supported {
		keys = append(keys, r.key(loc))
	}
	return r.Client.Del(ctx, keys...).Err()
}
