package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/jomboydon/landing_backend/internal/activity"
	"github.com/jomboydon/landing_backend/internal/cache"
	"github.com/jomboydon/landing_backend/internal/config"
	"github.com/jomboydon/landing_backend/internal/database"
	"github.com/jomboydon/landing_backend/internal/jobs"
	"github.com/jomboydon/landing_backend/internal/landing"
	"github.com/jomboydon/landing_backend/internal/media"
	"github.com/jomboydon/landing_backend/internal/middleware"
	"github.com/jomboydon/landing_backend/internal/routes"
	"github.com/jomboydon/landing_backend/internal/storage"
	"github.com/jomboydon/landing_backend/internal/ws"
)

func main() {
	// Load .env (non-fatal if missing in production)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}
	if err := database.SeedContent(db, cfg); err != nil {
		log.Fatalf("content seed failed: %v", err)
	}

	public, err := storage.NewLocal(cfg.PublicDir)
	if err != nil {
		log.Fatalf("public dir: %v", err)
	}
	var store storage.Storage = public
	if cfg.StorageBackend == "cloudinary" {
		cld, err := storage.NewCloudinary(cfg.CloudinaryURL)
		if err != nil {
			log.Fatalf("cloudinary: %v", err)
		}
		store = cld
		log.Println("storage: uploads go to cloudinary")
	}

	var transcoder media.Transcoder = media.Passthrough{}
	if cfg.TranscodeEnabled {
		transcoder = &media.FFmpeg{Bin: cfg.FFmpegPath, Timeout: cfg.TranscodeTimeout}
	} else {
		log.Println("media: transcoding disabled, videos are stored as uploaded")
	}
	video := &media.VideoProcessor{Transcoder: transcoder, Storage: store, TempDir: cfg.TempDir}

	var landingCache cache.Landing = cache.Noop{}
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("cache: redis unavailable, landing cache disabled: %v", err)
		} else {
			landingCache = cache.NewRedisLanding(rdb, cfg.LandingCacheTTL)
			defer rdb.Close()
		}
	}

	hub := ws.NewActivityHub()
	go hub.Run()
	defer hub.Stop()

	recorder := activity.NewRecorder(db, hub)
	builder := &landing.Builder{
		DB:          db,
		Cache:       landingCache,
		BaseURL:     cfg.PublicBaseURL,
		CompanyName: cfg.CompanyName,
	}

	scheduler := jobs.NewScheduler(cfg.TempDir, recorder, cfg.ActivityRetentionDays)
	if err := scheduler.Start(cfg.TempSweepSchedule); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	defer scheduler.Stop()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), middleware.RecoveryMiddleware())
	r.MaxMultipartMemory = 32 << 20
	routes.Register(r, cfg, routes.Deps{
		DB:       db,
		Storage:  store,
		Public:   public,
		Video:    video,
		Landing:  builder,
		Activity: recorder,
		Hub:      hub,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Println("server exited with error:", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
