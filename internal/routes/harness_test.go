package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/activity"
	"github.com/jomboydon/landing_backend/internal/config"
	"github.com/jomboydon/landing_backend/internal/database"
	"github.com/jomboydon/landing_backend/internal/landing"
	"github.com/jomboydon/landing_backend/internal/media"
	"github.com/jomboydon/landing_backend/internal/middleware"
	"github.com/jomboydon/landing_backend/internal/storage"
	"github.com/jomboydon/landing_backend/internal/testutil"
	"github.com/jomboydon/landing_backend/internal/ws"
)

type harness struct {
	t       *testing.T
	db      *gorm.DB
	router  *gin.Engine
	public  *storage.Local
	tempDir string
	token   string
}

type harnessOption func(*config.Config, *media.VideoProcessor)

func withStatsMode(mode string) harnessOption {
	return func(cfg *config.Config, _ *media.VideoProcessor) { cfg.StatsReplaceMode = mode }
}

func withMaxUploadMB(n int64) harnessOption {
	return func(cfg *config.Config, _ *media.VideoProcessor) { cfg.MaxUploadMB = n }
}

func withTranscoder(tr media.Transcoder) harnessOption {
	return func(_ *config.Config, v *media.VideoProcessor) { v.Transcoder = tr }
}

func newHarness(t *testing.T, opts ...harnessOption) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:         "test-secret",
		SessionCookie:     "session_token",
		SessionTTLMinutes: 60,
		AdminUsername:     "admin",
		AdminPassword:     "admin123",
		AdminName:         "Admin User",
		CompanyName:       "Jomboy don",
		StatsReplaceMode:  "sync",
		CORSOrigins:       []string{"*"},
		DefaultLang:       "uz",
		MaxUploadMB:       10,
		PublicDir:         t.TempDir(),
		TempDir:           t.TempDir(),
	}

	public, err := storage.NewLocal(cfg.PublicDir)
	require.NoError(t, err)
	video := &media.VideoProcessor{Transcoder: media.Passthrough{}, Storage: public, TempDir: cfg.TempDir}
	for _, opt := range opts {
		opt(cfg, video)
	}

	db := testutil.NewDB(t)
	require.NoError(t, database.SeedAdmin(db, cfg))

	hub := ws.NewActivityHub()
	recorder := activity.NewRecorder(db, hub)
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware())
	Register(r, cfg, Deps{
		DB:       db,
		Storage:  public,
		Public:   public,
		Video:    video,
		Landing:  &landing.Builder{DB: db, CompanyName: cfg.CompanyName},
		Activity: recorder,
		Hub:      hub,
	})

	h := &harness{t: t, db: db, router: r, public: public, tempDir: cfg.TempDir}
	h.token = h.login("admin", "admin123")
	return h
}

func (h *harness) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *harness) authed(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+h.token)
	return req
}

func (h *harness) login(username, password string) string {
	h.t.Helper()
	w := h.do(jsonRequest(h.t, http.MethodPost, "/api/auth/login", gin.H{"username": username, "password": password}))
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())
	var out struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(h.t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(h.t, out.AccessToken)
	return out.AccessToken
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type upload struct {
	field, name, content string
}

func multipartRequest(t *testing.T, method, path string, fields map[string]string, files ...upload) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.field, f.name)
		require.NoError(t, err)
		_, err = io.WriteString(part, f.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
