package controllers

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/storage"
)

// ImagesController serves files from the public root under /api/images/*path,
// the URL form older rows still reference.
type ImagesController struct {
	Local *storage.Local
}

func (ic *ImagesController) Serve(c *gin.Context) {
	rel := assets.Ref(c.Param("path")).LocalPath()
	full, err := ic.Local.Path(rel)
	if err != nil || rel == "" {
		c.String(http.StatusNotFound, "Image not found")
		return
	}
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		c.String(http.StatusNotFound, "Image not found")
		return
	}
	if ct := mime.TypeByExtension(filepath.Ext(full)); ct != "" {
		c.Header("Content-Type", ct)
	}
	c.File(full)
}
