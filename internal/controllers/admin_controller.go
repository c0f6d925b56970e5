package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/activity"
	"github.com/jomboydon/landing_backend/internal/middleware"
	"github.com/jomboydon/landing_backend/internal/models"
	"github.com/jomboydon/landing_backend/internal/utils"
)

// AdminController manages operator accounts of the content panel.
type AdminController struct {
	DB       *gorm.DB
	Activity *activity.Recorder
}

type createAdminRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	Name     string `json:"name" form:"name"`
}

func (a *AdminController) List(c *gin.Context) {
	// Query params: limit, page, all, sort_by, sort_dir, q
	all := strings.EqualFold(c.Query("all"), "true") || c.Query("all") == "1"
	limit := 50
	page := 1
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	sortDir := strings.ToUpper(c.DefaultQuery("sort_dir", "ASC"))
	if sortDir != "ASC" && sortDir != "DESC" {
		sortDir = "ASC"
	}
	allowedSorts := map[string]string{
		"id":         "id",
		"created_at": "created_at",
		"username":   "username",
		"name":       "name",
	}
	sortCol, ok := allowedSorts[strings.ToLower(c.DefaultQuery("sort_by", "id"))]
	if !ok {
		sortCol = "id"
	}

	base := a.DB.Model(&models.Admin{})
	qText := strings.TrimSpace(c.Query("q"))
	if qText != "" {
		like := "%" + strings.ToLower(qText) + "%"
		base = base.Where("LOWER(username) LIKE ? OR LOWER(name) LIKE ?", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		respondError(c, err, "Failed to fetch admins")
		return
	}

	admins := []models.Admin{}
	listQ := base.Order(fmt.Sprintf("%s %s", sortCol, sortDir))
	if !all {
		listQ = listQ.Offset((page - 1) * limit).Limit(limit)
	}
	if err := listQ.Find(&admins).Error; err != nil {
		respondError(c, err, "Failed to fetch admins")
		return
	}

	meta := gin.H{"total": total, "all": all}
	if !all {
		meta["limit"] = limit
		meta["page"] = page
	}
	if qText != "" {
		meta["q"] = qText
	}
	c.JSON(http.StatusOK, gin.H{"data": admins, "meta": meta})
}

func (a *AdminController) Create(c *gin.Context) {
	var req createAdminRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at most 72 bytes"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	admin := models.Admin{
		Username: strings.TrimSpace(req.Username),
		Password: hashed,
		Name:     strings.TrimSpace(req.Name),
	}
	if err := a.DB.Create(&admin).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "username already taken"})
			return
		}
		respondError(c, err, "Failed to create admin")
		return
	}
	a.record(c, "Admin created", admin.ID, admin.Username)
	c.JSON(http.StatusCreated, admin)
}

func (a *AdminController) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	if current, ok := middleware.CurrentAdmin(c); ok && current.ID == id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot delete your own account"})
		return
	}
	res := a.DB.Delete(&models.Admin{}, id)
	if res.Error != nil {
		respondError(c, res.Error, "Failed to delete admin")
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}
	a.record(c, "Admin deleted", id, "")
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (a *AdminController) record(c *gin.Context, action string, id uint, username string) {
	entry := activity.Entry{Action: action, Entity: "admin", EntityID: strconv.FormatUint(uint64(id), 10)}
	if username != "" {
		entry.Details = map[string]any{"username": username}
	}
	if current, ok := middleware.CurrentAdmin(c); ok {
		adminID := current.ID
		entry.AdminID = &adminID
	}
	a.Activity.Record(c.Request.Context(), entry)
}
