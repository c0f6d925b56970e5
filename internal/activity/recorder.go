// Package activity keeps the admin audit trail shown on the dashboard.
package activity

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/models"
)

// Publisher receives every persisted activity, e.g. the dashboard websocket hub.
type Publisher interface {
	Publish(models.Activity)
}

type Recorder struct {
	DB        *gorm.DB
	Publisher Publisher
}

func NewRecorder(db *gorm.DB, pub Publisher) *Recorder {
	return &Recorder{DB: db, Publisher: pub}
}

// Entry describes a single content change.
type Entry struct {
	Action   string
	Entity   string
	EntityID string
	AdminID  *uint
	Details  map[string]any
}

// Record persists e and publishes it. Failures are logged only; an audit
// entry must never fail the write that caused it.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	if r == nil || r.DB == nil {
		return
	}
	row := models.Activity{
		Action:   e.Action,
		Entity:   e.Entity,
		EntityID: e.EntityID,
		AdminID:  e.AdminID,
	}
	if len(e.Details) > 0 {
		raw, err := json.Marshal(e.Details)
		if err != nil {
			log.Printf("activity: marshal details: %v", err)
		} else {
			row.Details = datatypes.JSON(raw)
		}
	}
	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("activity: record %q: %v", e.Action, err)
		return
	}
	if r.Publisher != nil {
		r.Publisher.Publish(row)
	}
}

// Latest returns the newest n activities.
func (r *Recorder) Latest(ctx context.Context, n int) ([]models.Activity, error) {
	var rows []models.Activity
	err := r.DB.WithContext(ctx).Order("created_at desc").Order("id desc").Limit(n).Find(&rows).Error
	return rows, err
}

// Prune deletes activities created before cutoff and returns how many were removed.
func (r *Recorder) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.Activity{})
	return res.RowsAffected, res.Error
}
