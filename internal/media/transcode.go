package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// ErrTranscode wraps every failure of the external encoder.
var ErrTranscode = errors.New("video compression failed")

// Transcoder re-encodes a video file into a web friendly format.
type Transcoder interface {
	Transcode(ctx context.Context, in, out string) error
}

// FFmpeg shells out to the ffmpeg binary.
type FFmpeg struct {
	Bin     string
	Timeout time.Duration
}

// Args are the encoder flags: H.264 main profile, CRF 23, AAC 128k and the
// moov atom up front so playback can start before the download finishes.
func Args(in, out string) []string {
	return []string{
		"-i", in,
		"-c:v", "libx264",
		"-crf", "23",
		"-preset", "slow",
		"-profile:v", "main",
		"-movflags", "+faststart",
		"-c:a", "aac",
		"-b:a", "128k",
		"-y",
		out,
	}
}

func (f *FFmpeg) Transcode(ctx context.Context, in, out string) error {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}
	bin := f.Bin
	if bin == "" {
		bin = "ffmpeg"
	}
	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, Args(in, out)...)
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %v: %s", ErrTranscode, err, tail(stderr.Bytes(), 512))
	}
	return nil
}

// Passthrough copies the input unchanged. Used when no encoder is installed.
type Passthrough struct{}

func (Passthrough) Transcode(ctx context.Context, in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	defer src.Close()
	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("%w: %v", ErrTranscode, err)
	}
	return dst.Close()
}

func tail(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[len(b)-n:]
}
