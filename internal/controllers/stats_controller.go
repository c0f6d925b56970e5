package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/models"
)

const (
	StatsSync     = "sync"
	StatsRecreate = "recreate"
)

type StatsController struct {
	Content
	// Mode selects how PUT replaces the list: StatsSync keeps ids of rows
	// that are resubmitted, StatsRecreate rebuilds the table.
	Mode string
}

type statInput struct {
	ID      FlexibleID `json:"id"`
	Value   string     `json:"value"`
	Label   string     `json:"label"`
	LabelRu string     `json:"labelRu"`
	LabelUz string     `json:"labelUz"`
}

func (sc *StatsController) List(c *gin.Context) {
	stats := []models.Stat{}
	if err := sc.DB.Order("sort_order asc").Order("id asc").Find(&stats).Error; err != nil {
		respondError(c, err, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// decodeStats accepts {"stats":[...]} as well as a bare array.
func decodeStats(body []byte) ([]statInput, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, invalid("stats are required")
	}
	var list []statInput
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, invalid("invalid stats payload")
		}
		return list, nil
	}
	var wrapped struct {
		Stats *[]statInput `json:"stats"`
	}
	if err := json.Unmarshal(trimmed, &wrapped); err != nil || wrapped.Stats == nil {
		return nil, invalid("invalid stats payload")
	}
	return *wrapped.Stats, nil
}

func (sc *StatsController) Replace(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, invalid("invalid stats payload"), "")
		return
	}
	inputs, err := decodeStats(body)
	if err != nil {
		respondError(c, err, "")
		return
	}

	replace := syncStats
	if sc.Mode == StatsRecreate {
		replace = recreateStats
	}
	if err := sc.DB.Transaction(func(tx *gorm.DB) error { return replace(tx, inputs) }); err != nil {
		respondError(c, err, "Failed to update stats")
		return
	}

	stats := []models.Stat{}
	if err := sc.DB.Order("sort_order asc").Order("id asc").Find(&stats).Error; err != nil {
		respondError(c, err, "Failed to fetch stats")
		return
	}
	sc.changed(c, "Stats updated", "stat", 0, map[string]any{"count": len(stats), "mode": sc.modeName()})
	c.JSON(http.StatusOK, gin.H{"message": "Stats updated successfully", "stats": stats})
}

func (sc *StatsController) modeName() string {
	if sc.Mode == StatsRecreate {
		return StatsRecreate
	}
	return StatsSync
}

func (in statInput) row(order int) models.Stat {
	return models.Stat{
		Value:     in.Value,
		Label:     in.Label,
		LabelRu:   in.LabelRu,
		LabelUz:   in.LabelUz,
		SortOrder: order,
	}
}

// syncStats updates rows whose id is resubmitted, creates the rest and
// deletes rows missing from the payload.
func syncStats(tx *gorm.DB, inputs []statInput) error {
	var existing []models.Stat
	if err := tx.Select("id").Find(&existing).Error; err != nil {
		return err
	}
	known := make(map[uint]bool, len(existing))
	for _, s := range existing {
		known[s.ID] = false
	}

	for i, in := range inputs {
		row := in.row(i)
		id, valid := in.ID.Uint()
		if used, ok := known[id]; valid && ok && !used {
			known[id] = true
			if err := tx.Model(&models.Stat{ID: id}).Updates(map[string]any{
				"value":      row.Value,
				"label":      row.Label,
				"label_ru":   row.LabelRu,
				"label_uz":   row.LabelUz,
				"sort_order": row.SortOrder,
			}).Error; err != nil {
				return err
			}
			continue
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	var stale []uint
	for id, kept := range known {
		if !kept {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	return tx.Delete(&models.Stat{}, stale).Error
}

func recreateStats(tx *gorm.DB, inputs []statInput) error {
	if err := tx.Where("1 = 1").Delete(&models.Stat{}).Error; err != nil {
		return err
	}
	if len(inputs) == 0 {
		return nil
	}
	rows := make([]models.Stat, 0, len(inputs))
	for i, in := range inputs {
		rows = append(rows, in.row(i))
	}
	return tx.Create(&rows).Error
}
