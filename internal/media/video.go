package media

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/storage"
)

// TempPrefix marks scratch files so the sweeper can find leftovers.
const TempPrefix = "temp-"

// VideoProcessor stages an uploaded video on disk, re-encodes it and hands
// the result to storage. Scratch files are removed on every path.
type VideoProcessor struct {
	Transcoder Transcoder
	Storage    storage.Storage
	TempDir    string
}

func (p *VideoProcessor) Process(ctx context.Context, dir, prefix string, fh *multipart.FileHeader) (assets.Ref, error) {
	if err := os.MkdirAll(p.TempDir, 0o755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	id := uuid.NewString()
	inPath := filepath.Join(p.TempDir, TempPrefix+id+".upload")
	outPath := filepath.Join(p.TempDir, TempPrefix+id+".mp4")
	defer removeQuietly(inPath)
	defer removeQuietly(outPath)

	if err := stage(fh, inPath); err != nil {
		return "", err
	}
	if err := p.Transcoder.Transcode(ctx, inPath, outPath); err != nil {
		return "", err
	}

	out, err := os.Open(outPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	defer out.Close()

	base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename)) + ".mp4"
	return p.Storage.Put(ctx, dir, storage.UploadName(prefix, base, time.Now()), out)
}

func stage(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	return f.Close()
}

func removeQuietly(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("media: failed to delete temp file %s: %v", path, err)
	}
}
