package routes

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/activity"
	"github.com/jomboydon/landing_backend/internal/config"
	"github.com/jomboydon/landing_backend/internal/controllers"
	"github.com/jomboydon/landing_backend/internal/i18n"
	"github.com/jomboydon/landing_backend/internal/landing"
	"github.com/jomboydon/landing_backend/internal/media"
	"github.com/jomboydon/landing_backend/internal/middleware"
	"github.com/jomboydon/landing_backend/internal/storage"
	"github.com/jomboydon/landing_backend/internal/ws"
)

// Deps are the long-lived services the routes are wired to.
type Deps struct {
	DB       *gorm.DB
	Storage  storage.Storage
	Public   *storage.Local
	Video    *media.VideoProcessor
	Landing  *landing.Builder
	Activity *activity.Recorder
	Hub      *ws.ActivityHub
}

func Register(r *gin.Engine, cfg *config.Config, d Deps) {
	r.Use(cors.New(corsConfig(cfg)))

	defaultLang, ok := i18n.ParseLocale(cfg.DefaultLang)
	if !ok {
		defaultLang = i18n.Uz
	}

	// Controllers
	content := controllers.Content{DB: d.DB, Storage: d.Storage, Activity: d.Activity, Landing: d.Landing}
	authCtrl := &controllers.AuthController{
		DB:           d.DB,
		JWTSecret:    cfg.JWTSecret,
		TTL:          cfg.SessionTTL(),
		CookieName:   cfg.SessionCookie,
		SecureCookie: cfg.IsProduction(),
	}
	productCtrl := &controllers.ProductController{Content: content}
	newsCtrl := &controllers.NewsController{Content: content}
	statsCtrl := &controllers.StatsController{Content: content, Mode: cfg.StatsReplaceMode}
	sectionsCtrl := &controllers.SectionsController{Content: content, Video: d.Video}
	settingsCtrl := &controllers.SettingsController{Content: content, CompanyName: cfg.CompanyName}
	adminCtrl := &controllers.AdminController{DB: d.DB, Activity: d.Activity}
	dashCtrl := &controllers.DashboardController{DB: d.DB, Activity: d.Activity}
	imagesCtrl := &controllers.ImagesController{Local: d.Public}
	landingCtrl := &controllers.LandingController{Builder: d.Landing, DefaultLang: defaultLang, SecureCookie: cfg.IsProduction()}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Uploaded files
	for _, dir := range []string{"uploads", "images", "videos"} {
		r.Static("/"+dir, filepath.Join(d.Public.Root, dir))
	}
	r.GET("/api/images/*path", imagesCtrl.Serve)

	// Public
	api := r.Group("/api")
	{
		api.POST("/auth/login", authCtrl.Login)

		api.GET("/products", productCtrl.List)
		api.GET("/products/:id", productCtrl.Get)
		api.GET("/news", newsCtrl.List)
		api.GET("/news/:id", newsCtrl.Get)
		api.GET("/stats", statsCtrl.List)
		api.GET("/site-settings", settingsCtrl.Get)
		api.GET("/site-settings/footer", settingsCtrl.GetFooter)
		api.GET("/landing-settings", sectionsCtrl.GetLanding)
		api.GET("/landing/:lang", landingCtrl.JSON)
	}

	// Protected
	authMW := middleware.AuthMiddleware(d.DB, middleware.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		CookieName: cfg.SessionCookie,
	})
	limit := middleware.MaxBodySize(cfg.MaxUploadBytes())
	protected := r.Group("/api", authMW, limit)
	{
		protected.GET("/auth/session", authCtrl.Session)
		protected.POST("/auth/logout", authCtrl.Logout)

		protected.POST("/products", productCtrl.Create)
		protected.PUT("/products/:id", productCtrl.Update)
		protected.DELETE("/products/:id", productCtrl.Delete)

		protected.POST("/news", newsCtrl.Create)
		protected.PUT("/news/:id", newsCtrl.Update)
		protected.DELETE("/news/:id", newsCtrl.Delete)

		protected.PUT("/stats", statsCtrl.Replace)

		protected.PUT("/site-settings", settingsCtrl.Update)
		protected.PUT("/site-settings/footer", settingsCtrl.UpdateFooter)

		admin := protected.Group("/admin")
		{
			admin.GET("/products", productCtrl.List)
			admin.POST("/products", productCtrl.Create)
			admin.GET("/products/:id", productCtrl.Get)
			admin.PUT("/products/:id", productCtrl.Update)
			admin.DELETE("/products/:id", productCtrl.Delete)

			admin.GET("/hero-settings", sectionsCtrl.GetHero)
			admin.POST("/hero-settings", sectionsCtrl.UpdateHero)
			admin.GET("/landing-settings", sectionsCtrl.GetLanding)
			admin.PUT("/landing-settings", sectionsCtrl.UpdateLanding)
			admin.GET("/landing-settings/hero-settings", sectionsCtrl.GetHero)
			admin.POST("/landing-settings/hero-settings", sectionsCtrl.UpdateLandingHero)
			admin.GET("/mission-settings", sectionsCtrl.GetMission)
			admin.PUT("/mission-settings", sectionsCtrl.UpdateMission)

			admin.GET("/site-settings", settingsCtrl.AdminGet)
			admin.POST("/site-settings", settingsCtrl.UpdateLogo)

			admin.GET("/stats", dashCtrl.Stats)
			admin.GET("/activities", dashCtrl.Activities)
			admin.GET("/activities/ws", ws.ActivityHandler(d.Hub))

			admin.GET("/admins", adminCtrl.List)
			admin.POST("/admins", adminCtrl.Create)
			admin.DELETE("/admins/:id", adminCtrl.Delete)
		}
	}

	// Landing pages
	r.SetHTMLTemplate(landing.Templates())
	r.GET("/", landingCtrl.Root)
	r.GET("/:lang", landingCtrl.HTML)
}

func corsConfig(cfg *config.Config) cors.Config {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) == 0 || (len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*") {
		cc.AllowOriginFunc = func(string) bool { return true }
	} else {
		cc.AllowOrigins = cfg.CORSOrigins
	}
	return cc
}
