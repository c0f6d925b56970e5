package models

import (
	"time"

	"github.com/jomboydon/landing_backend/internal/i18n"
)

// SingletonID addresses the one row of hero, mission and site settings tables.
const SingletonID uint = 1

type HeroSection struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `json:"title"`
	TitleRu         string    `json:"titleRu"`
	TitleUz         string    `json:"titleUz"`
	Subtitle        string    `json:"subtitle"`
	SubtitleRu      string    `json:"subtitleRu"`
	SubtitleUz      string    `json:"subtitleUz"`
	CtaText         string    `json:"ctaText"`
	CtaTextRu       string    `json:"ctaTextRu"`
	CtaTextUz       string    `json:"ctaTextUz"`
	BackgroundVideo *string   `json:"backgroundVideo"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (h HeroSection) Translations() map[string]i18n.Text {
	return map[string]i18n.Text{
		"title":    {Default: h.Title, Ru: h.TitleRu, Uz: h.TitleUz},
		"subtitle": {Default: h.Subtitle, Ru: h.SubtitleRu, Uz: h.SubtitleUz},
		"ctaText":  {Default: h.CtaText, Ru: h.CtaTextRu, Uz: h.CtaTextUz},
	}
}

type MissionSection struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `json:"title"`
	TitleRu   string    `json:"titleRu"`
	TitleUz   string    `json:"titleUz"`
	Text      string    `gorm:"type:text" json:"text"`
	TextRu    string    `gorm:"type:text" json:"textRu"`
	TextUz    string    `gorm:"type:text" json:"textUz"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m MissionSection) Translations() map[string]i18n.Text {
	return map[string]i18n.Text{
		"title": {Default: m.Title, Ru: m.TitleRu, Uz: m.TitleUz},
		"text":  {Default: m.Text, Ru: m.TextRu, Uz: m.TextUz},
	}
}

// Stat is one figure in the statistics strip, e.g. "~300T" production capacity.
type Stat struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Value     string    `json:"value"`
	Label     string    `json:"label"`
	LabelRu   string    `json:"labelRu"`
	LabelUz   string    `json:"labelUz"`
	SortOrder int       `gorm:"index" json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Stat) Translations() map[string]i18n.Text {
	return map[string]i18n.Text{
		"label": {Default: s.Label, Ru: s.LabelRu, Uz: s.LabelUz},
	}
}
