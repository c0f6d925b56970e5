package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jomboydon/landing_backend/internal/assets"
)

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "my_photo_1_.jpg", SanitizeName("my photo(1).jpg"))
	assert.Equal(t, "passwd", SanitizeName("../../etc/passwd"))
	assert.Equal(t, "evil.png", SanitizeName(`C:\tmp\evil.png`))
	assert.Equal(t, "file", SanitizeName(""))
	assert.Equal(t, "file", SanitizeName(".."))
}

func TestUploadName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "product-1700000000123-flour.png", UploadName("product", "flour.png", now))
}

func TestLocalPutAndDelete(t *testing.T) {
	st, err := NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	ref, err := st.Put(ctx, "images/products", "a.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, assets.Ref("/images/products/a.png"), ref)

	data, err := os.ReadFile(filepath.Join(st.Root, "images", "products", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	require.NoError(t, st.Delete(ctx, ref))
	_, err = os.Stat(filepath.Join(st.Root, "images", "products", "a.png"))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, st.Delete(ctx, ref), "deleting a missing file is not an error")
	assert.NoError(t, st.Delete(ctx, "https://cdn.example.com/a.png"))
}

func TestLocalPutStaysInsideRoot(t *testing.T) {
	st, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	ref, err := st.Put(context.Background(), "../../outside", "x.txt", bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, assets.Ref("/outside/x.txt"), ref)
	assert.FileExists(t, filepath.Join(st.Root, "outside", "x.txt"))
}

func TestLocalPath(t *testing.T) {
	st := &Local{Root: "/srv/public"}
	p, err := st.Path("../../etc/passwd")
	require.NoError(t, err)
	assert.Equal(t, "/srv/public/etc/passwd", p)
}

type recordingStorage struct {
	deleted []assets.Ref
	err     error
}

func (r *recordingStorage) Put(ctx context.Context, dir, name string, _ io.Reader) (assets.Ref, error) {
	return assets.Ref("/" + dir + "/" + name), nil
}

func (r *recordingStorage) Delete(ctx context.Context, ref assets.Ref) error {
	r.deleted = append(r.deleted, ref)
	return r.err
}

func TestDiscardReplaced(t *testing.T) {
	st := &recordingStorage{err: errors.New("disk gone")}
	ctx := context.Background()

	DiscardReplaced(ctx, st, "", "/uploads/new.png")
	DiscardReplaced(ctx, st, "/uploads/same.png", "/uploads/same.png")
	DiscardReplaced(ctx, st, "/uploads/old.png", "/uploads/new.png")

	assert.Equal(t, []assets.Ref{"/uploads/old.png"}, st.deleted)
}

func TestExtractPublicID(t *testing.T) {
	assert.Equal(t, "site/hero-1", ExtractPublicID("https://res.cloudinary.com/acc/video/upload/v1712/site/hero-1.mp4"))
	assert.Equal(t, "logo", ExtractPublicID("https://res.cloudinary.com/acc/image/upload/logo.png"))
	assert.Equal(t, "", ExtractPublicID("https://example.com/a.png"))
}
