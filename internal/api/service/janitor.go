package service

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// JanitorService periodically sweeps the upload spool directory so aborted
// uploads do not accumulate. Processed uploads are removed inline; this only
// catches the ones whose request died mid-flight.
type JanitorService struct {
	Dir      string
	Logger   *slog.Logger
	Interval time.Duration
	MaxAge   time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewJanitorService creates a janitor for dir. Zero interval defaults to one
// hour, zero maxAge to 24 hours.
func NewJanitorService(dir string, logger *slog.Logger, interval, maxAge time.Duration) *JanitorService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}
	if maxAge <= 0 {
		maxAge = 24 * time.Hour
	}

	return &JanitorService{
		Dir:      dir,
		Logger:   logger,
		Interval: interval,
		MaxAge:   maxAge,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop. Non-blocking; call Stop to shut
// down.
func (s *JanitorService) Start() {
	go s.run()
	s.Logger.Info("janitor started", "dir", s.Dir, "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep finishes.
func (s *JanitorService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("janitor stopped")
}

func (s *JanitorService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep once on startup to clear anything left by a previous run.
	s.Sweep()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stopCh:
			return
		}
	}
}

// Sweep removes spool files older than MaxAge. Individual failures are logged
// and skipped so one bad file cannot stall the sweep.
func (s *JanitorService) Sweep() {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.Logger.Error("failed to read spool dir", "dir", s.Dir, "err", err)
		}
		return
	}

	cutoff := time.Now().Add(-s.MaxAge)
	var removed int
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(s.Dir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.Logger.Error("failed to remove stale upload", "path", path, "err", err)
			continue
		}
		removed++
	}

	if removed > 0 {
		s.Logger.Info("swept stale uploads", "removed", removed)
	}
}
