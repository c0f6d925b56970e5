package models

import (
	"time"

	"github.com/jomboydon/landing_backend/internal/i18n"
)

type Product struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	NameRu        string    `json:"name_ru"`
	NameUz        string    `json:"name_uz"`
	Description   *string   `gorm:"type:text" json:"description"`
	DescriptionRu *string   `gorm:"type:text" json:"description_ru"`
	DescriptionUz *string   `gorm:"type:text" json:"description_uz"`
	Category      string    `json:"category"`
	CategoryRu    string    `json:"category_ru"`
	CategoryUz    string    `json:"category_uz"`
	Price         float64   `gorm:"type:decimal(12,2);not null;default:0" json:"price"`
	ImageURL      *string   `json:"imageUrl"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p Product) Translations() map[string]i18n.Text {
	return map[string]i18n.Text{
		"name":        {Default: p.Name, Ru: p.NameRu, Uz: p.NameUz},
		"description": i18n.OptText(p.Description, p.DescriptionRu, p.DescriptionUz),
		"category":    {Default: p.Category, Ru: p.CategoryRu, Uz: p.CategoryUz},
	}
}

type News struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	TitleRu   string    `json:"title_ru"`
	TitleUz   string    `json:"title_uz"`
	Content   string    `gorm:"type:text" json:"content"`
	ContentRu string    `gorm:"type:text" json:"content_ru"`
	ContentUz string    `gorm:"type:text" json:"content_uz"`
	ImageURL  *string   `json:"imageUrl"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n News) Translations() map[string]i18n.Text {
	return map[string]i18n.Text{
		"title":   {Default: n.Title, Ru: n.TitleRu, Uz: n.TitleUz},
		"content": {Default: n.Content, Ru: n.ContentRu, Uz: n.ContentUz},
	}
}
