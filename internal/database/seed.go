package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/config"
	"github.com/jomboydon/landing_backend/internal/models"
	"github.com/jomboydon/landing_backend/internal/utils"
)

func SeedAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Admin{}).Where("username = ?", cfg.AdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}
	admin := models.Admin{
		Username: cfg.AdminUsername,
		Password: hashed,
		Name:     cfg.AdminName,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("Seeded initial admin:", admin.Username)
	return nil
}

// SeedContent creates the singleton rows and the default statistics on an
// empty database. Existing rows are never touched.
func SeedContent(db *gorm.DB, cfg *config.Config) error {
	hero := models.HeroSection{
		ID:         models.SingletonID,
		Title:      "Our Production Facility",
		TitleRu:    "Наше производственное предприятие",
		TitleUz:    "Bizning Ishlab Chiqarish Zavodimiz",
		Subtitle:   "Modern equipment and advanced technologies",
		SubtitleRu: "Современное оборудование и передовые технологии",
		SubtitleUz: "Zamonaviy uskunalar va ilg'or texnologiyalar",
		CtaText:    "Learn More",
		CtaTextRu:  "Узнать больше",
		CtaTextUz:  "Ko'proq ma'lumot",
	}
	if err := db.FirstOrCreate(&hero, models.SingletonID).Error; err != nil {
		return err
	}

	mission := models.MissionSection{
		ID:      models.SingletonID,
		Title:   "Our Mission",
		TitleRu: "Наша миссия",
		TitleUz: "Bizning vazifamiz",
		Text:    "We strive to provide quality products",
		TextRu:  "Мы стремимся предоставлять качественные продукты",
		TextUz:  "Biz sifatli mahsulotlar taqdim etishga intilamiz",
	}
	if err := db.FirstOrCreate(&mission, models.SingletonID).Error; err != nil {
		return err
	}

	settings := models.SiteSettings{ID: models.SingletonID, CompanyName: cfg.CompanyName}
	if err := db.FirstOrCreate(&settings, models.SingletonID).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&models.Stat{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	stats := []models.Stat{
		{Value: "~300T", Label: "Production Capacity", LabelRu: "Производственная мощность", LabelUz: "Ishlab chiqarish quvvati"},
		{Value: "~6", Label: "Product Types", LabelRu: "Виды продукции", LabelUz: "Mahsulot turlari"},
		{Value: "~6", Label: "Services", LabelRu: "Услуги", LabelUz: "Xizmatlar"},
		{Value: "~2", Label: "Certificates", LabelRu: "Сертификаты", LabelUz: "Sertifikatlar"},
		{Value: "~250", Label: "Partnership and Trade", LabelRu: "Партнерство и торговля", LabelUz: "Hamkorlik va Savdo"},
	}
	for i := range stats {
		stats[i].SortOrder = i
	}
	if err := db.Create(&stats).Error; err != nil {
		return err
	}
	log.Println("Seeded landing content (hero, mission, site settings, stats)")
	return nil
}
