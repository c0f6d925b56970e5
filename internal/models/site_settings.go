package models

import (
	"time"

	"github.com/jomboydon/landing_backend/internal/i18n"
)

// SiteSettings holds company-wide data: branding, footer address, social
// links and contact phones. Only the id=1 row is used.
type SiteSettings struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyName string    `json:"companyName"`
	Logo        *string   `json:"logo"`
	Address     *string   `gorm:"type:text" json:"address"`
	AddressRu   *string   `gorm:"type:text" json:"address_ru"`
	AddressUz   *string   `gorm:"type:text" json:"address_uz"`
	Instagram   *string   `json:"instagram"`
	Telegram    *string   `json:"telegram"`
	Youtube     *string   `json:"youtube"`
	Facebook    *string   `json:"facebook"`
	Phones      []Phone   `gorm:"foreignKey:SettingsID;constraint:OnDelete:CASCADE" json:"phones,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (s SiteSettings) Translations() map[string]i18n.Text {
	return map[string]i18n.Text{
		"address": i18n.OptText(s.Address, s.AddressRu, s.AddressUz),
	}
}

type Phone struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	Number        string  `gorm:"not null" json:"number"`
	Department    string  `json:"department"`
	DepartmentRu  string  `json:"department_ru"`
	DepartmentUz  string  `json:"department_uz"`
	Description   *string `json:"description"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionUz *string `json:"description_uz"`
	SettingsID    uint    `gorm:"index;not null" json:"settingsId"`
}

func (p Phone) Translations() map[string]i18n.Text {
	return map[string]i18n.Text{
		"department":  {Default: p.Department, Ru: p.DepartmentRu, Uz: p.DepartmentUz},
		"description": i18n.OptText(p.Description, p.DescriptionRu, p.DescriptionUz),
	}
}
