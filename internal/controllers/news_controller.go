package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/models"
	"github.com/jomboydon/landing_backend/internal/storage"
)

const newsImageDir = "uploads"

type NewsController struct {
	Content
}

func (nc *NewsController) List(c *gin.Context) {
	news := []models.News{}
	if err := nc.DB.Order("created_at desc").Order("id desc").Find(&news).Error; err != nil {
		respondError(c, err, "Failed to fetch news")
		return
	}
	c.JSON(http.StatusOK, news)
}

func (nc *NewsController) find(c *gin.Context) (*models.News, bool) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return nil, false
	}
	var item models.News
	if err := nc.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "News not found"})
			return nil, false
		}
		respondError(c, err, "Failed to fetch news")
		return nil, false
	}
	return &item, true
}

func (nc *NewsController) Get(c *gin.Context) {
	item, ok := nc.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, item)
}

func bindNews(c *gin.Context, n *models.News) error {
	postLocalized(c, "title").set(&n.Title, &n.TitleRu, &n.TitleUz)
	postLocalized(c, "content").set(&n.Content, &n.ContentRu, &n.ContentUz)
	if n.Title == "" {
		return invalid("title is required")
	}
	return nil
}

func (nc *NewsController) Create(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	var item models.News
	if err := bindNews(c, &item); err != nil {
		respondError(c, err, "")
		return
	}
	if fh, ok := formFile(c, "image"); ok {
		ref, err := storage.SaveUpload(c.Request.Context(), nc.Storage, newsImageDir, "news", fh)
		if err != nil {
			respondError(c, err, "Failed to upload image")
			return
		}
		item.ImageURL = ref.Ptr()
	}
	if err := nc.DB.Create(&item).Error; err != nil {
		storage.DiscardReplaced(c.Request.Context(), nc.Storage, assets.FromPtr(item.ImageURL), "")
		respondError(c, err, "Failed to create news")
		return
	}
	nc.changed(c, "News published", "news", item.ID, map[string]any{"title": item.Title})
	c.JSON(http.StatusOK, item)
}

func (nc *NewsController) Update(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	item, ok := nc.find(c)
	if !ok {
		return
	}
	if err := bindNews(c, item); err != nil {
		respondError(c, err, "")
		return
	}
	old := assets.FromPtr(item.ImageURL)
	fh, uploaded := formFile(c, "image")
	if uploaded {
		ref, err := storage.SaveUpload(c.Request.Context(), nc.Storage, newsImageDir, "news", fh)
		if err != nil {
			respondError(c, err, "Failed to upload image")
			return
		}
		item.ImageURL = ref.Ptr()
	}
	if err := nc.DB.Save(item).Error; err != nil {
		if uploaded {
			storage.DiscardReplaced(c.Request.Context(), nc.Storage, assets.FromPtr(item.ImageURL), "")
		}
		respondError(c, err, "Failed to update news")
		return
	}
	if uploaded {
		storage.DiscardReplaced(c.Request.Context(), nc.Storage, old, assets.FromPtr(item.ImageURL))
	}
	nc.changed(c, "News updated", "news", item.ID, map[string]any{"title": item.Title})
	c.JSON(http.StatusOK, item)
}

func (nc *NewsController) Delete(c *gin.Context) {
	item, ok := nc.find(c)
	if !ok {
		return
	}
	if err := nc.DB.Delete(item).Error; err != nil {
		respondError(c, err, "Failed to delete news")
		return
	}
	storage.DiscardReplaced(c.Request.Context(), nc.Storage, assets.FromPtr(item.ImageURL), "")
	nc.changed(c, "News deleted", "news", item.ID, nil)
	c.JSON(http.StatusOK, gin.H{"message": "News deleted successfully"})
}
