package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/database"
	"github.com/jomboydon/landing_backend/internal/models"
	"github.com/jomboydon/landing_backend/internal/storage"
)

const logoDir = "uploads"

type SettingsController struct {
	Content
	CompanyName string
}

func (sc *SettingsController) load(c *gin.Context, withPhones bool) (models.SiteSettings, bool, error) {
	db := sc.DB.WithContext(c.Request.Context())
	if withPhones {
		db = db.Preload("Phones", func(tx *gorm.DB) *gorm.DB { return tx.Order("id asc") })
	}
	var settings models.SiteSettings
	found, err := database.LoadSingleton(db, &settings)
	settings.ID = models.SingletonID
	return settings, found, err
}

// Get serves GET /api/site-settings, falling back to defaults before the
// first save.
func (sc *SettingsController) Get(c *gin.Context) {
	settings, found, err := sc.load(c, false)
	if err != nil {
		respondError(c, err, "Failed to fetch site settings")
		return
	}
	if !found {
		c.JSON(http.StatusOK, gin.H{"logo": nil, "companyName": sc.CompanyName})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// AdminGet serves GET /api/admin/site-settings.
func (sc *SettingsController) AdminGet(c *gin.Context) {
	settings, found, err := sc.load(c, false)
	if err != nil {
		respondError(c, err, "Failed to fetch site settings")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Site settings not found"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// Update handles the branding form: companyName and an optional logo.
func (sc *SettingsController) Update(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	ctx := c.Request.Context()
	settings, found, err := sc.load(c, false)
	if err != nil {
		respondError(c, err, "Failed to update site settings")
		return
	}
	if v := postValue(c, "companyName"); v.Present && strings.TrimSpace(v.Value) != "" {
		settings.CompanyName = v.Value
	}
	if !found && settings.CompanyName == "" {
		settings.CompanyName = sc.CompanyName
	}

	old := assets.FromPtr(settings.Logo)
	fh, uploaded := formFile(c, "logo")
	if uploaded {
		ref, err := storage.SaveUpload(ctx, sc.Storage, logoDir, "logo", fh)
		if err != nil {
			respondError(c, err, "Failed to upload file")
			return
		}
		settings.Logo = ref.Ptr()
	}

	if err := sc.saveSingleton(&settings); err != nil {
		if uploaded {
			storage.DiscardReplaced(ctx, sc.Storage, assets.FromPtr(settings.Logo), "")
		}
		respondError(c, err, "Failed to update site settings")
		return
	}
	if uploaded {
		storage.DiscardReplaced(ctx, sc.Storage, old, assets.FromPtr(settings.Logo))
	}
	sc.changed(c, "Site settings updated", "site_settings", settings.ID, map[string]any{"logoReplaced": uploaded})
	c.JSON(http.StatusOK, settings)
}

// UpdateLogo serves POST /api/admin/site-settings, which only replaces the
// logo of existing settings.
func (sc *SettingsController) UpdateLogo(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	_, found, err := sc.load(c, false)
	if err != nil {
		respondError(c, err, "Failed to update site settings")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Site settings not found"})
		return
	}
	sc.Update(c)
}

func (sc *SettingsController) GetFooter(c *gin.Context) {
	settings, found, err := sc.load(c, true)
	if err != nil {
		respondError(c, err, "Failed to fetch footer settings")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not found"})
		return
	}
	if settings.Phones == nil {
		settings.Phones = []models.Phone{}
	}
	c.JSON(http.StatusOK, settings)
}

type phoneInput struct {
	Number        string  `json:"number"`
	Department    string  `json:"department"`
	DepartmentRu  string  `json:"department_ru"`
	DepartmentUz  string  `json:"department_uz"`
	Description   *string `json:"description"`
	DescriptionRu *string `json:"description_ru"`
	DescriptionUz *string `json:"description_uz"`
}

type footerRequest struct {
	Address   *string      `json:"address"`
	AddressRu *string      `json:"address_ru"`
	AddressUz *string      `json:"address_uz"`
	Instagram *string      `json:"instagram"`
	Telegram  *string      `json:"telegram"`
	Youtube   *string      `json:"youtube"`
	Facebook  *string      `json:"facebook"`
	Phones    []phoneInput `json:"phones"`
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

// UpdateFooter replaces address, social links and the full phone list in
// one transaction.
func (sc *SettingsController) UpdateFooter(c *gin.Context) {
	var req footerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, p := range req.Phones {
		if strings.TrimSpace(p.Number) == "" {
			respondError(c, invalid("phone number is required"), "")
			return
		}
	}

	settings, found, err := sc.load(c, false)
	if err != nil {
		respondError(c, err, "Failed to update footer settings")
		return
	}
	if !found {
		settings.CompanyName = sc.CompanyName
	}
	settings.Address = blankToNil(req.Address)
	settings.AddressRu = blankToNil(req.AddressRu)
	settings.AddressUz = blankToNil(req.AddressUz)
	settings.Instagram = blankToNil(req.Instagram)
	settings.Telegram = blankToNil(req.Telegram)
	settings.Youtube = blankToNil(req.Youtube)
	settings.Facebook = blankToNil(req.Facebook)

	phones := make([]models.Phone, 0, len(req.Phones))
	for _, p := range req.Phones {
		phones = append(phones, models.Phone{
			Number:        p.Number,
			Department:    p.Department,
			DepartmentRu:  p.DepartmentRu,
			DepartmentUz:  p.DepartmentUz,
			Description:   blankToNil(p.Description),
			DescriptionRu: blankToNil(p.DescriptionRu),
			DescriptionUz: blankToNil(p.DescriptionUz),
			SettingsID:    settings.ID,
		})
	}

	err = sc.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Phones").Save(&settings).Error; err != nil {
			return err
		}
		if err := tx.Where("settings_id = ?", settings.ID).Delete(&models.Phone{}).Error; err != nil {
			return err
		}
		if len(phones) == 0 {
			return nil
		}
		return tx.Create(&phones).Error
	})
	if err != nil {
		respondError(c, err, "Failed to update footer settings")
		return
	}
	sc.changed(c, "Footer updated", "site_settings", settings.ID, map[string]any{"phones": len(phones)})
	c.JSON(http.StatusOK, gin.H{"success": true})
}
