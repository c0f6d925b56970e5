// Package cache stores rendered landing pages per locale.
package cache

import (
	"context"

	"github.com/jomboydon/landing_backend/internal/i18n"
)

// Landing caches the serialized landing page for each locale. Implementations
// must treat a miss as (nil, false, nil).
type Landing interface {
	Get(ctx context.Context, loc i18n.Locale) ([]byte, bool, error)
	Set(ctx context.Context, loc i18n.Locale, data []byte) error
	Invalidate(ctx context.Context) error
}

// Noop never stores anything. Used when REDIS_ADDR is not configured.
type Noop struct{}

func (Noop) Get(context.Context, i18n.Locale) ([]byte, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, i18n.Locale, []byte) error         { return nil }
func (Noop) Invalidate(context.Context) error                       { return nil }
