package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jomboydon/landing_backend/internal/assets"
)

// ErrOutsideRoot is returned for paths that would escape the public root.
var ErrOutsideRoot = errors.New("path outside public root")

// Local writes files under the public static root so they are served as-is.
type Local struct {
	Root string
}

func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create public root: %w", err)
	}
	return &Local{Root: abs}, nil
}

func (l *Local) Put(ctx context.Context, dir, name string, r io.Reader) (assets.Ref, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	rel := path.Join(strings.Trim(path.Clean("/"+dir), "/"), SanitizeName(name))
	full, err := l.Path(rel)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	out, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		os.Remove(full)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(full)
		return "", fmt.Errorf("close file: %w", err)
	}
	return assets.Ref("/" + rel), nil
}

// Delete removes a local file. Remote references are left alone and a file
// that is already gone is not an error.
func (l *Local) Delete(ctx context.Context, ref assets.Ref) error {
	rel := ref.LocalPath()
	if rel == "" {
		return nil
	}
	full, err := l.Path(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Path maps a slash path relative to the root onto the filesystem.
func (l *Local) Path(rel string) (string, error) {
	clean := path.Clean("/" + strings.ReplaceAll(rel, "\\", "/"))
	full := filepath.Join(l.Root, filepath.FromSlash(clean))
	if full != l.Root && !strings.HasPrefix(full, l.Root+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return full, nil
}
