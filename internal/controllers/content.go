package controllers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/activity"
	"github.com/jomboydon/landing_backend/internal/landing"
	"github.com/jomboydon/landing_backend/internal/middleware"
	"github.com/jomboydon/landing_backend/internal/storage"
)

// Content bundles what every content-writing controller needs.
type Content struct {
	DB       *gorm.DB
	Storage  storage.Storage
	Activity *activity.Recorder
	Landing  *landing.Builder
}

// changed records an audit entry and drops cached landing pages after a
// successful write.
func (ct *Content) changed(c *gin.Context, action, entity string, id uint, details map[string]any) {
	entry := activity.Entry{Action: action, Entity: entity, Details: details}
	if id != 0 {
		entry.EntityID = strconv.FormatUint(uint64(id), 10)
	}
	if admin, ok := middleware.CurrentAdmin(c); ok {
		adminID := admin.ID
		entry.AdminID = &adminID
	}
	ct.Activity.Record(c.Request.Context(), entry)
	ct.Landing.Invalidate(context.WithoutCancel(c.Request.Context()))
}
