package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/activity"
	"github.com/jomboydon/landing_backend/internal/models"
)

const recentActivities = 20

type DashboardController struct {
	DB       *gorm.DB
	Activity *activity.Recorder
}

// Stats returns the dashboard counters. There is no order model; the
// counter is kept for the admin UI and is always zero.
func (d *DashboardController) Stats(c *gin.Context) {
	var products, admins, news int64
	if err := d.DB.Model(&models.Product{}).Count(&products).Error; err != nil {
		respondError(c, err, "Failed to fetch stats")
		return
	}
	if err := d.DB.Model(&models.Admin{}).Count(&admins).Error; err != nil {
		respondError(c, err, "Failed to fetch stats")
		return
	}
	if err := d.DB.Model(&models.News{}).Count(&news).Error; err != nil {
		respondError(c, err, "Failed to fetch stats")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"totalProducts": products,
		"totalOrders":   0,
		"totalUsers":    admins,
		"totalNews":     news,
	})
}

func (d *DashboardController) Activities(c *gin.Context) {
	rows, err := d.Activity.Latest(c.Request.Context(), recentActivities)
	if err != nil {
		respondError(c, err, "Failed to fetch activities")
		return
	}
	if rows == nil {
		rows = []models.Activity{}
	}
	c.JSON(http.StatusOK, rows)
}
