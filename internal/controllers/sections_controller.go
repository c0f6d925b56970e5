package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/database"
	"github.com/jomboydon/landing_backend/internal/media"
	"github.com/jomboydon/landing_backend/internal/models"
	"github.com/jomboydon/landing_backend/internal/storage"
)

const (
	heroVideoDir    = "uploads/videos"
	landingVideoDir = "videos"
	missionImageDir = "images/mission"
	missionPrefix   = "mission"
)

// SectionsController edits the hero and mission singletons.
type SectionsController struct {
	Content
	Video *media.VideoProcessor
}

// saveSingleton upserts a row whose ID is models.SingletonID.
func (ct *Content) saveSingleton(row any) error {
	return ct.DB.Omit(clause.Associations).Save(row).Error
}

func (sc *SectionsController) loadHero(c *gin.Context) (models.HeroSection, bool, error) {
	var hero models.HeroSection
	found, err := database.LoadSingleton(sc.DB.WithContext(c.Request.Context()), &hero)
	hero.ID = models.SingletonID
	return hero, found, err
}

// GetHero serves GET /api/admin/hero-settings.
func (sc *SectionsController) GetHero(c *gin.Context) {
	hero, found, err := sc.loadHero(c)
	if err != nil {
		respondError(c, err, "Failed to fetch hero settings")
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Hero settings not found"})
		return
	}
	c.JSON(http.StatusOK, hero)
}

// GetLanding serves the hero row or null when none exists yet.
func (sc *SectionsController) GetLanding(c *gin.Context) {
	hero, found, err := sc.loadHero(c)
	if err != nil {
		respondError(c, err, "Failed to fetch settings")
		return
	}
	if !found {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, hero)
}

// UpdateHero handles the hero form; an uploaded backgroundVideo is
// re-encoded for the web before it replaces the current one.
func (sc *SectionsController) UpdateHero(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	hero, _, err := sc.loadHero(c)
	if err != nil {
		respondError(c, err, "Failed to update hero settings")
		return
	}
	postLocalized(c, "title", "heroTitle").set(&hero.Title, &hero.TitleRu, &hero.TitleUz)
	postLocalized(c, "subtitle").set(&hero.Subtitle, &hero.SubtitleRu, &hero.SubtitleUz)
	postLocalized(c, "ctaText").set(&hero.CtaText, &hero.CtaTextRu, &hero.CtaTextUz)

	old := assets.FromPtr(hero.BackgroundVideo)
	fh, uploaded := formFile(c, "backgroundVideo")
	if uploaded {
		ref, err := sc.Video.Process(c.Request.Context(), heroVideoDir, "hero", fh)
		if err != nil {
			respondError(c, err, "Failed to update hero settings")
			return
		}
		hero.BackgroundVideo = ref.Ptr()
	}
	sc.finishHero(c, &hero, old, uploaded, "Failed to update hero settings")
}

// UpdateLanding handles PUT /api/admin/landing-settings. The video is
// stored as uploaded; currentVideo may only name the stored one.
func (sc *SectionsController) UpdateLanding(c *gin.Context) {
	sc.updateRawHero(c, "file", "Failed to update settings")
}

// UpdateLandingHero handles POST /api/admin/landing-settings/hero-settings,
// the older hero form that uploads backgroundVideo without re-encoding.
func (sc *SectionsController) UpdateLandingHero(c *gin.Context) {
	sc.updateRawHero(c, "backgroundVideo", "Failed to update hero section")
}

func (sc *SectionsController) updateRawHero(c *gin.Context, fileField, fallback string) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	hero, _, err := sc.loadHero(c)
	if err != nil {
		respondError(c, err, fallback)
		return
	}
	postLocalized(c, "heroTitle", "title").set(&hero.Title, &hero.TitleRu, &hero.TitleUz)
	postLocalized(c, "subtitle").set(&hero.Subtitle, &hero.SubtitleRu, &hero.SubtitleUz)
	postLocalized(c, "ctaText").set(&hero.CtaText, &hero.CtaTextRu, &hero.CtaTextUz)

	old := assets.FromPtr(hero.BackgroundVideo)
	fh, uploaded := formFile(c, fileField)
	if uploaded {
		ref, err := storage.SaveUpload(c.Request.Context(), sc.Storage, landingVideoDir, "hero", fh)
		if err != nil {
			respondError(c, err, "Failed to upload video")
			return
		}
		hero.BackgroundVideo = ref.Ptr()
	} else if err := currentRef(postValue(c, "currentVideo"), "currentVideo", old); err != nil {
		respondError(c, err, "")
		return
	}
	sc.finishHero(c, &hero, old, uploaded, fallback)
}

func (sc *SectionsController) finishHero(c *gin.Context, hero *models.HeroSection, old assets.Ref, uploaded bool, fallback string) {
	ctx := c.Request.Context()
	if err := sc.saveSingleton(hero); err != nil {
		if uploaded {
			storage.DiscardReplaced(ctx, sc.Storage, assets.FromPtr(hero.BackgroundVideo), "")
		}
		respondError(c, err, fallback)
		return
	}
	if uploaded {
		storage.DiscardReplaced(ctx, sc.Storage, old, assets.FromPtr(hero.BackgroundVideo))
	}
	sc.changed(c, "Hero section updated", "hero", hero.ID, map[string]any{"videoReplaced": uploaded})
	c.JSON(http.StatusOK, hero)
}

// GetMission returns the mission row, or an empty one when none exists.
func (sc *SectionsController) GetMission(c *gin.Context) {
	var mission models.MissionSection
	if _, err := database.LoadSingleton(sc.DB.WithContext(c.Request.Context()), &mission); err != nil {
		respondError(c, err, "Failed to fetch mission section")
		return
	}
	c.JSON(http.StatusOK, mission)
}

func (sc *SectionsController) UpdateMission(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	ctx := c.Request.Context()
	var mission models.MissionSection
	if _, err := database.LoadSingleton(sc.DB.WithContext(ctx), &mission); err != nil {
		respondError(c, err, "Failed to update settings")
		return
	}
	mission.ID = models.SingletonID
	postLocalized(c, "missionTitle", "title").set(&mission.Title, &mission.TitleRu, &mission.TitleUz)
	postLocalized(c, "missionText", "text").set(&mission.Text, &mission.TextRu, &mission.TextUz)

	old := assets.FromPtr(mission.Image)
	fh, uploaded := formFile(c, "missionImage")
	if uploaded {
		ref, err := storage.SaveUpload(ctx, sc.Storage, missionImageDir, missionPrefix, fh)
		if err != nil {
			respondError(c, err, "Failed to upload image")
			return
		}
		mission.Image = ref.Ptr()
	} else if err := currentRef(postValue(c, "currentMissionImage"), "currentMissionImage", old); err != nil {
		respondError(c, err, "")
		return
	}

	if err := sc.saveSingleton(&mission); err != nil {
		if uploaded {
			storage.DiscardReplaced(ctx, sc.Storage, assets.FromPtr(mission.Image), "")
		}
		respondError(c, err, "Failed to update settings")
		return
	}
	if uploaded {
		storage.DiscardReplaced(ctx, sc.Storage, old, assets.FromPtr(mission.Image))
	}
	sc.changed(c, "Mission section updated", "mission", mission.ID, nil)
	c.JSON(http.StatusOK, mission)
}
