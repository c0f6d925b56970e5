package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jomboydon/landing_backend/internal/assets"
)

// Storage persists uploaded files and hands back the reference to store in the row.
type Storage interface {
	Put(ctx context.Context, dir, name string, r io.Reader) (assets.Ref, error)
	Delete(ctx context.Context, ref assets.Ref) error
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// SanitizeName strips directories and anything outside [a-zA-Z0-9.-] from a
// client supplied filename.
func SanitizeName(original string) string {
	base := filepath.Base(strings.ReplaceAll(strings.TrimSpace(original), "\\", "/"))
	if base == "." || base == ".." || base == "/" || base == "" {
		return "file"
	}
	return unsafeName.ReplaceAllString(base, "_")
}

// UploadName builds "<prefix>-<unix millis>-<original name>".
func UploadName(prefix, original string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), SanitizeName(original))
}

// SaveUpload stores a multipart file under dir.
func SaveUpload(ctx context.Context, st Storage, dir, prefix string, fh *multipart.FileHeader) (assets.Ref, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return st.Put(ctx, dir, UploadName(prefix, fh.Filename, time.Now()), f)
}

// DiscardReplaced deletes old once it has been replaced by current. Failures
// are logged and swallowed; the row already points at the new file.
func DiscardReplaced(ctx context.Context, st Storage, old, current assets.Ref) {
	if old.IsZero() || old == current {
		return
	}
	if err := st.Delete(ctx, old); err != nil {
		log.Printf("storage: failed to delete replaced file %s: %v", old, err)
	}
}
