package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/middleware"
	"github.com/jomboydon/landing_backend/internal/models"
	"github.com/jomboydon/landing_backend/internal/utils"
)

const tokenIssuer = "landing_backend"

type AuthController struct {
	DB           *gorm.DB
	JWTSecret    string
	TTL          time.Duration
	CookieName   string
	SecureCookie bool
}

type loginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	if err := a.DB.Where("username = ?", req.Username).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if !utils.CheckPassword(admin.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := a.issueToken(admin)
	if err != nil {
		respondError(c, err, "failed to issue token")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.CookieName, token, int(a.TTL.Seconds()), "/", "", a.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(a.TTL.Seconds()),
		"user":         admin,
	})
}

// Session returns the admin behind the current token.
func (a *AuthController) Session(c *gin.Context) {
	admin, _ := middleware.CurrentAdmin(c)
	c.JSON(http.StatusOK, gin.H{"user": admin})
}

func (a *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(a.CookieName, "", -1, "/", "", a.SecureCookie, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *AuthController) issueToken(admin models.Admin) (string, error) {
	now := time.Now().UTC()
	claims := middleware.Claims{
		AdminID:  admin.ID,
		Username: admin.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.TTL)),
			Subject:   strconv.FormatUint(uint64(admin.ID), 10),
			ID:        uuid.NewString(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(a.JWTSecret))
}
