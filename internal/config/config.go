package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`

	DBDriver    string `env:"DB_DRIVER" envDefault:"postgres"` // postgres | mysql | sqlite
	DatabaseURL string `env:"DATABASE_URL"`                    // overrides the DB_* parts when set
	DBHost      string `env:"DB_HOST" envDefault:"localhost"`
	DBPort      string `env:"DB_PORT" envDefault:"5432"`
	DBUser      string `env:"DB_USER" envDefault:"postgres"`
	DBPassword  string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName      string `env:"DB_NAME" envDefault:"jomboy_db"`
	DBSSLMode   string `env:"DB_SSLMODE" envDefault:"disable"`

	JWTSecret         string `env:"JWT_SECRET" envDefault:"supersecret_change_me"`
	SessionTTLMinutes int    `env:"SESSION_TTL_MINUTES" envDefault:"1440"`
	SessionCookie     string `env:"SESSION_COOKIE" envDefault:"session_token"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`
	AdminName     string `env:"ADMIN_NAME" envDefault:"Admin User"`
	CompanyName   string `env:"COMPANY_NAME" envDefault:"Jomboy don"`

	// Uploads
	PublicDir      string `env:"PUBLIC_DIR" envDefault:"./public"`
	PublicBaseURL  string `env:"PUBLIC_BASE_URL"`
	TempDir        string `env:"TEMP_DIR" envDefault:"./tmp"`
	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"local"` // local | cloudinary
	CloudinaryURL  string `env:"CLOUDINARY_URL"`
	MaxUploadMB    int64  `env:"MAX_UPLOAD_MB" envDefault:"200"`

	FFmpegPath       string        `env:"FFMPEG_PATH" envDefault:"ffmpeg"`
	TranscodeEnabled bool          `env:"TRANSCODE_ENABLED" envDefault:"true"`
	TranscodeTimeout time.Duration `env:"TRANSCODE_TIMEOUT" envDefault:"10m"`

	// Landing cache; disabled when RedisAddr is empty
	RedisAddr       string        `env:"REDIS_ADDR"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" envDefault:"0"`
	LandingCacheTTL time.Duration `env:"LANDING_CACHE_TTL" envDefault:"5m"`

	StatsReplaceMode string   `env:"STATS_REPLACE_MODE" envDefault:"sync"` // sync | recreate
	CORSOrigins      []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
	DefaultLang      string   `env:"DEFAULT_LANG" envDefault:"uz"`

	TempSweepSchedule     string `env:"TEMP_SWEEP_SCHEDULE" envDefault:"@hourly"`
	ActivityRetentionDays int    `env:"ACTIVITY_RETENTION_DAYS" envDefault:"90"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	cfg.DBDriver = strings.ToLower(strings.TrimSpace(cfg.DBDriver))
	cfg.StatsReplaceMode = strings.ToLower(strings.TrimSpace(cfg.StatsReplaceMode))
	switch cfg.StatsReplaceMode {
	case "sync", "recreate":
	default:
		return nil, fmt.Errorf("invalid STATS_REPLACE_MODE %q", cfg.StatsReplaceMode)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func (c *Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c *Config) MaxUploadBytes() int64 {
	if c.MaxUploadMB <= 0 {
		return 200 << 20
	}
	return c.MaxUploadMB << 20
}
