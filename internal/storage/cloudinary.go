package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/jomboydon/landing_backend/internal/assets"
)

// Cloudinary stores uploads in a Cloudinary account; refs are https URLs.
type Cloudinary struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinary(cloudinaryURL string) (*Cloudinary, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary URL is required")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &Cloudinary{cld: cld}, nil
}

func (c *Cloudinary) Put(ctx context.Context, dir, name string, r io.Reader) (assets.Ref, error) {
	name = SanitizeName(name)
	result, err := c.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:       strings.TrimSuffix(name, path.Ext(name)),
		Folder:         strings.Trim(dir, "/"),
		UniqueFilename: &[]bool{false}[0],
		Overwrite:      &[]bool{false}[0],
		ResourceType:   "auto",
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}
	url := result.SecureURL
	if url == "" {
		url = forceHTTPS(result.URL)
	}
	return assets.Ref(url), nil
}

// Delete destroys the asset behind a Cloudinary URL. Other refs (legacy local
// paths) are ignored.
func (c *Cloudinary) Delete(ctx context.Context, ref assets.Ref) error {
	if !ref.IsRemote() || !strings.Contains(string(ref), "res.cloudinary.com") {
		return nil
	}
	publicID := ExtractPublicID(string(ref))
	if publicID == "" {
		return fmt.Errorf("cannot extract public id from %s", ref)
	}
	resourceType := "image"
	if strings.Contains(string(ref), "/video/upload/") {
		resourceType = "video"
	}
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// ExtractPublicID takes a delivery URL such as
// https://res.cloudinary.com/acc/image/upload/v123/folder/name.jpg and
// returns "folder/name".
func ExtractPublicID(url string) string {
	parts := strings.Split(url, "/")
	for i, part := range parts {
		if part != "upload" || i+1 >= len(parts) {
			continue
		}
		rest := parts[i+1:]
		if len(rest) > 1 && isVersion(rest[0]) {
			rest = rest[1:]
		}
		p := strings.Join(rest, "/")
		return strings.TrimSuffix(p, filepath.Ext(p))
	}
	return ""
}

func isVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func forceHTTPS(in string) string {
	return strings.Replace(strings.TrimSpace(in), "http://", "https://", 1)
}
