package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomboydon/landing_backend/internal/i18n"
	"github.com/jomboydon/landing_backend/internal/landing"
	"github.com/jomboydon/landing_backend/internal/models"
)

func TestLandingJSONProjectsLocale(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.db.Create(&models.Product{
		Name: "Flour", NameRu: "Мука", NameUz: "Un",
		Category: "Grain", Price: 10,
	}).Error)
	require.NoError(t, h.db.Create(&models.Stat{Value: "~6", Label: "Factories", LabelRu: "Заводов"}).Error)

	w := h.do(httptest.NewRequest(http.MethodGet, "/api/landing/ru", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decode[landing.Page](t, w)
	assert.Equal(t, i18n.Ru, page.Locale)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Мука", page.Products[0].Name)
	// Blank translations fall back to the default column.
	assert.Equal(t, "Grain", page.Products[0].Category)
	require.Len(t, page.Stats, 1)
	assert.Equal(t, "Заводов", page.Stats[0].Label)
	assert.Equal(t, "Jomboy don", page.CompanyName)

	w = h.do(httptest.NewRequest(http.MethodGet, "/api/landing/fr", nil))
	require.Equal(t, http.StatusOK, w.Code)
	page = decode[landing.Page](t, w)
	assert.Equal(t, i18n.Default, page.Locale)
	assert.Equal(t, "Flour", page.Products[0].Name)
}

func TestLandingRedirects(t *testing.T) {
	h := newHarness(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ru-RU,ru;q=0.9,en;q=0.5")
	w := h.do(req)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/ru", w.Header().Get("Location"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "ru")
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})
	w = h.do(req)
	assert.Equal(t, "/en", w.Header().Get("Location"))

	w = h.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "/uz", w.Header().Get("Location"))

	w = h.do(httptest.NewRequest(http.MethodGet, "/fr", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/uz", w.Header().Get("Location"))
}

func TestLandingHTML(t *testing.T) {
	h := newHarness(t)

	w := h.do(httptest.NewRequest(http.MethodGet, "/ru", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `<html lang="ru">`)
	assert.Contains(t, w.Body.String(), "Jomboy don")

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == i18n.CookieName {
			found = true
			assert.Equal(t, "ru", c.Value)
		}
	}
	assert.True(t, found, "locale cookie not set")
}

func TestImageProxy(t *testing.T) {
	h := newHarness(t)
	full, err := h.public.Path("images/products/logo.png")
	require.NoError(t, err)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte("png"), 0o644))

	w := h.do(httptest.NewRequest(http.MethodGet, "/api/images/images/products/logo.png", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "png", w.Body.String())

	w = h.do(httptest.NewRequest(http.MethodGet, "/api/images/images/products/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Image not found", w.Body.String())
}

func TestDashboard(t *testing.T) {
	h := newHarness(t)

	w := h.do(h.authed(multipartRequest(t, http.MethodPost, "/api/admin/products", map[string]string{
		"name": "Flour", "price": "5",
	})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = h.do(h.authed(httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalProducts":1,"totalOrders":0,"totalUsers":1,"totalNews":0}`, w.Body.String())

	w = h.do(h.authed(httptest.NewRequest(http.MethodGet, "/api/admin/activities", nil)))
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode[[]models.Activity](t, w)
	require.NotEmpty(t, rows)
	assert.Equal(t, "New product added", rows[0].Action)
	assert.Equal(t, "product", rows[0].Entity)
	require.NotNil(t, rows[0].AdminID)
}
