package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity is an audit entry for a content change made through the admin panel.
type Activity struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Action    string         `gorm:"size:64;not null" json:"action"`
	Entity    string         `gorm:"size:64;index" json:"entity"`
	EntityID  string         `gorm:"size:64" json:"entityId,omitempty"`
	AdminID   *uint          `gorm:"index" json:"adminId,omitempty"`
	Details   datatypes.JSON `json:"details,omitempty"`
	CreatedAt time.Time      `gorm:"index" json:"timestamp"`
}
