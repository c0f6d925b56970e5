package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jomboydon/landing_backend/internal/i18n"
	"github.com/jomboydon/landing_backend/internal/landing"
)

const localeCookieMaxAge = 365 * 24 * 60 * 60

type LandingController struct {
	Builder     *landing.Builder
	DefaultLang i18n.Locale
	// SecureCookie marks the locale cookie Secure in production.
	SecureCookie bool
}

// JSON serves GET /api/landing/:lang. Unsupported codes use the default
// content columns.
func (lc *LandingController) JSON(c *gin.Context) {
	loc, _ := i18n.ParseLocale(c.Param("lang"))
	page, err := lc.Builder.Load(c.Request.Context(), loc)
	if err != nil {
		respondError(c, err, "Failed to load landing page")
		return
	}
	c.JSON(http.StatusOK, page)
}

// HTML renders GET /:lang and redirects unknown language codes to the
// default one.
func (lc *LandingController) HTML(c *gin.Context) {
	loc, ok := i18n.ParseLocale(c.Param("lang"))
	if !ok {
		c.Redirect(http.StatusFound, "/"+lc.DefaultLang.String())
		return
	}
	page, err := lc.Builder.Load(c.Request.Context(), loc)
	if err != nil {
		respondError(c, err, "Failed to load landing page")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i18n.CookieName, loc.String(), localeCookieMaxAge, "/", "", lc.SecureCookie, false)
	c.HTML(http.StatusOK, landing.PageTemplate, page)
}

// Root redirects / to the visitor's language: the remembered cookie, then
// Accept-Language, then the configured default.
func (lc *LandingController) Root(c *gin.Context) {
	cookie, _ := c.Cookie(i18n.CookieName)
	loc := i18n.Negotiate(cookie, c.GetHeader("Accept-Language"), lc.DefaultLang)
	c.Redirect(http.StatusFound, "/"+loc.String())
}
