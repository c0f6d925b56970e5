package routes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomboydon/landing_backend/internal/media"
	"github.com/jomboydon/landing_backend/internal/models"
)

type brokenTranscoder struct{}

func (brokenTranscoder) Transcode(context.Context, string, string) error {
	return fmt.Errorf("%w: exit status 1", media.ErrTranscode)
}

func TestHeroUpsertAndVideoReplace(t *testing.T) {
	h := newHarness(t)

	w := h.do(h.authed(httptest.NewRequest(http.MethodGet, "/api/admin/hero-settings", nil)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(h.authed(multipartRequest(t, http.MethodPost, "/api/admin/hero-settings", map[string]string{
		"title": "Our Production", "titleRu": "Наше производство", "titleUz": "Ishlab chiqarish",
		"subtitle": "Modern", "ctaText": "More",
	}, upload{"backgroundVideo", "clip.mov", "v1"})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[models.HeroSection](t, w)
	assert.Equal(t, models.SingletonID, first.ID)
	require.NotNil(t, first.BackgroundVideo)
	assert.Regexp(t, `^/uploads/videos/hero-\d+-clip\.mp4$`, *first.BackgroundVideo)
	firstFile := h.fileFor(first.BackgroundVideo)
	assert.FileExists(t, firstFile)

	w = h.do(h.authed(multipartRequest(t, http.MethodPost, "/api/admin/hero-settings", map[string]string{
		"titleRu": "Новое",
	}, upload{"backgroundVideo", "other.mp4", "v2"})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := decode[models.HeroSection](t, w)
	assert.Equal(t, models.SingletonID, second.ID)
	assert.Equal(t, "Новое", second.TitleRu)
	assert.Equal(t, "Our Production", second.Title)
	assert.NoFileExists(t, firstFile)
	assert.FileExists(t, h.fileFor(second.BackgroundVideo))

	var count int64
	h.db.Model(&models.HeroSection{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestHeroTranscodeFailureCleansUp(t *testing.T) {
	h := newHarness(t, withTranscoder(brokenTranscoder{}))

	w := h.do(h.authed(multipartRequest(t, http.MethodPost, "/api/admin/hero-settings", map[string]string{
		"title": "T",
	}, upload{"backgroundVideo", "clip.mp4", "v"})))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)

	entries, err := os.ReadDir(h.tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	var count int64
	h.db.Model(&models.HeroSection{}).Count(&count)
	assert.Zero(t, count)
}

func TestLandingSettingsUsesPrefixedKeys(t *testing.T) {
	h := newHarness(t)

	w := h.do(httptest.NewRequest(http.MethodGet, "/api/landing-settings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	w = h.do(h.authed(multipartRequest(t, http.MethodPut, "/api/admin/landing-settings", map[string]string{
		"heroTitle": "Hello", "heroTitleRu": "Привет", "heroTitleUz": "Salom",
		"subtitle": "Sub", "ctaText": "Go",
	})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	hero := decode[models.HeroSection](t, w)
	assert.Equal(t, "Привет", hero.TitleRu)
	assert.Nil(t, hero.BackgroundVideo)

	w = h.do(h.authed(multipartRequest(t, http.MethodPut, "/api/admin/landing-settings", map[string]string{
		"heroTitle": "Hello",
	}, upload{"file", "raw video.mp4", "bytes"})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	hero = decode[models.HeroSection](t, w)
	require.NotNil(t, hero.BackgroundVideo)
	assert.Regexp(t, `^/videos/hero-\d+-raw_video\.mp4$`, *hero.BackgroundVideo)
	stored := *hero.BackgroundVideo

	// Echoing the stored video back keeps it.
	w = h.do(h.authed(multipartRequest(t, http.MethodPut, "/api/admin/landing-settings", map[string]string{
		"ctaText": "Contact", "currentVideo": stored,
	})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, stored, *decode[models.HeroSection](t, w).BackgroundVideo)

	w = h.do(h.authed(multipartRequest(t, http.MethodPut, "/api/admin/landing-settings", map[string]string{
		"ctaText": "Other", "currentVideo": "/videos/someone-else.mp4",
	})))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(httptest.NewRequest(http.MethodGet, "/api/landing-settings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	hero = decode[models.HeroSection](t, w)
	assert.Equal(t, "Hello", hero.Title)
	assert.Equal(t, "Contact", hero.CtaText)
	assert.Equal(t, stored, *hero.BackgroundVideo)
	assert.FileExists(t, h.fileFor(hero.BackgroundVideo))
}

func TestLandingHeroSettingsStoresRawVideo(t *testing.T) {
	h := newHarness(t)

	w := h.do(h.authed(httptest.NewRequest(http.MethodGet, "/api/admin/landing-settings/hero-settings", nil)))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(h.authed(multipartRequest(t, http.MethodPost, "/api/admin/landing-settings/hero-settings", map[string]string{
		"title": "Hero", "titleRu": "Герой",
	}, upload{"backgroundVideo", "clip.mov", "raw"})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	hero := decode[models.HeroSection](t, w)
	require.NotNil(t, hero.BackgroundVideo)
	assert.Regexp(t, `^/videos/hero-\d+-clip\.mov$`, *hero.BackgroundVideo)

	w = h.do(h.authed(httptest.NewRequest(http.MethodGet, "/api/admin/landing-settings/hero-settings", nil)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Герой", decode[models.HeroSection](t, w).TitleRu)
}

func TestMissionUpsertIsIdempotent(t *testing.T) {
	h := newHarness(t)

	w := h.do(h.authed(httptest.NewRequest(http.MethodGet, "/api/admin/mission-settings", nil)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", decode[models.MissionSection](t, w).Title)

	var img string
	for i, title := range []string{"Mission", "Mission 2"} {
		w = h.do(h.authed(multipartRequest(t, http.MethodPut, "/api/admin/mission-settings", map[string]string{
			"missionTitle": title, "missionTextRu": "Текст",
		}, upload{"missionImage", fmt.Sprintf("m%d.jpg", i), "img"})))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		m := decode[models.MissionSection](t, w)
		assert.Equal(t, models.SingletonID, m.ID)
		assert.Equal(t, title, m.Title)
		assert.Equal(t, "Текст", m.TextRu)
		if img != "" {
			assert.NoFileExists(t, img)
		}
		img = h.fileFor(m.Image)
		assert.FileExists(t, img)
	}

	var count int64
	h.db.Model(&models.MissionSection{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSiteSettingsDefaultsAndUpsert(t *testing.T) {
	h := newHarness(t)

	w := h.do(httptest.NewRequest(http.MethodGet, "/api/site-settings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"logo":null,"companyName":"Jomboy don"}`, w.Body.String())

	w = h.do(h.authed(httptest.NewRequest(http.MethodGet, "/api/admin/site-settings", nil)))
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = h.do(h.authed(multipartRequest(t, http.MethodPost, "/api/admin/site-settings", nil, upload{"logo", "logo.png", "x"})))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = h.do(h.authed(multipartRequest(t, http.MethodPut, "/api/site-settings", map[string]string{"companyName": "Jomboy Don LLC"},
		upload{"logo", "logo.png", "first"})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	first := decode[models.SiteSettings](t, w)
	assert.Equal(t, models.SingletonID, first.ID)
	firstLogo := h.fileFor(first.Logo)

	w = h.do(h.authed(multipartRequest(t, http.MethodPost, "/api/admin/site-settings", nil, upload{"logo", "logo2.png", "second"})))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	second := decode[models.SiteSettings](t, w)
	assert.Equal(t, "Jomboy Don LLC", second.CompanyName)
	assert.NotEqual(t, *first.Logo, *second.Logo)
	assert.NoFileExists(t, firstLogo)

	var count int64
	h.db.Model(&models.SiteSettings{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestFooterReplacesPhones(t *testing.T) {
	h := newHarness(t)

	w := h.do(httptest.NewRequest(http.MethodGet, "/api/site-settings/footer", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	put := func(phones []gin.H) {
		w := h.do(h.authed(jsonRequest(t, http.MethodPut, "/api/site-settings/footer", gin.H{
			"address": "Jomboy", "address_ru": "Джамбай", "address_uz": "",
			"telegram": "https://t.me/jomboy", "instagram": "",
			"phones": phones,
		})))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	}
	put([]gin.H{
		{"number": "+998 90 111 11 11", "department": "Sales", "department_ru": "Продажи"},
		{"number": "+998 90 222 22 22", "department": "Office"},
	})
	put([]gin.H{{"number": "+998 90 333 33 33", "department": "Export", "description": "9-18"}})

	w = h.do(httptest.NewRequest(http.MethodGet, "/api/site-settings/footer", nil))
	require.Equal(t, http.StatusOK, w.Code)
	settings := decode[models.SiteSettings](t, w)
	require.Len(t, settings.Phones, 1)
	assert.Equal(t, "Export", settings.Phones[0].Department)
	require.NotNil(t, settings.AddressRu)
	assert.Equal(t, "Джамбай", *settings.AddressRu)
	assert.Nil(t, settings.AddressUz)
	assert.Nil(t, settings.Instagram)
	assert.Equal(t, "Jomboy don", settings.CompanyName)

	var phones int64
	h.db.Model(&models.Phone{}).Count(&phones)
	assert.EqualValues(t, 1, phones)

	w = h.do(h.authed(jsonRequest(t, http.MethodPut, "/api/site-settings/footer", gin.H{"phones": []gin.H{{"department": "x"}}})))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
