// Package jobs runs periodic maintenance: stale transcode files and old
// activity rows.
package jobs

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jomboydon/landing_backend/internal/media"
)

// TempMaxAge is how long a staged upload may live before the sweep removes it.
const TempMaxAge = time.Hour

// Pruner removes audit rows older than a cutoff.
type Pruner interface {
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
}

type Scheduler struct {
	cron          *cron.Cron
	TempDir       string
	Activities    Pruner
	RetentionDays int
}

func NewScheduler(tempDir string, activities Pruner, retentionDays int) *Scheduler {
	return &Scheduler{
		cron:          cron.New(),
		TempDir:       tempDir,
		Activities:    activities,
		RetentionDays: retentionDays,
	}
}

// Start registers the jobs and starts the cron loop. sweepSpec is a cron
// expression or descriptor such as "@hourly".
func (s *Scheduler) Start(sweepSpec string) error {
	if _, err := s.cron.AddFunc(sweepSpec, func() {
		if n, err := SweepTemp(s.TempDir, TempMaxAge, time.Now()); err != nil {
			log.Printf("jobs: temp sweep: %v", err)
		} else if n > 0 {
			log.Printf("jobs: removed %d stale temp files", n)
		}
	}); err != nil {
		return err
	}
	if s.Activities != nil && s.RetentionDays > 0 {
		if _, err := s.cron.AddFunc("@daily", s.pruneActivities); err != nil {
			return err
		}
	}
	s.cron.Start()
	log.Printf("jobs: scheduler started (sweep %s)", sweepSpec)
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) pruneActivities() {
	cutoff := time.Now().AddDate(0, 0, -s.RetentionDays)
	n, err := s.Activities.Prune(context.Background(), cutoff)
	if err != nil {
		log.Printf("jobs: prune activities: %v", err)
		return
	}
	if n > 0 {
		log.Printf("jobs: pruned %d activities older than %d days", n, s.RetentionDays)
	}
}

// SweepTemp removes temp-* files in dir whose modification time is older
// than maxAge relative to now. A missing dir is not an error.
func SweepTemp(dir string, maxAge time.Duration, now time.Time) (int, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), media.TempPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) < maxAge {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil && !os.IsNotExist(err) {
			log.Printf("jobs: remove %s: %v", e.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}
