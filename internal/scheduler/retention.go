package scheduler

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// SweepResult summarises one retention pass.
type SweepResult struct {
	Scanned int
	Removed int
	Failed  int
}

// RetentionSweeper periodically deletes generated memes older than a maximum age.
type RetentionSweeper struct {
	dir        string
	maxAge     time.Duration
	schedule   string
	extensions []string
	now        func() time.Time

	cron      *cron.Cron
	entryID   cron.EntryID
	mu        sync.RWMutex
	isRunning bool
}

// NewRetentionSweeper creates a sweeper over dir. Only files with one of the
// given extensions, plus leftover ".meme-*.tmp" files, are considered.
func NewRetentionSweeper(dir string, maxAge time.Duration, schedule string, extensions ...string) *RetentionSweeper {
	return &RetentionSweeper{
		dir:        dir,
		maxAge:     maxAge,
		schedule:   schedule,
		extensions: extensions,
		now:        time.Now,
		cron:       cron.New(cron.WithParser(scheduleParser)),
	}
}

// Start begins the periodic sweep. A zero max age disables it.
func (s *RetentionSweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.maxAge <= 0 {
		log.Printf("Meme retention: disabled")
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule retention job: %w", err)
	}
	s.entryID = entryID

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := NextRunTime(s.schedule, s.now())
	log.Printf("Meme retention: started with schedule '%s' (%s), max age %v. Next run: %v",
		s.schedule,
		GetCronDescription(s.schedule),
		s.maxAge,
		nextRun)

	// Monitor for context cancellation
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep.
func (s *RetentionSweeper) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()
	s.cron.Remove(s.entryID)

	s.isRunning = false
	log.Printf("Meme retention: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *RetentionSweeper) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next sweep will occur
func (s *RetentionSweeper) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

func (s *RetentionSweeper) runSweep() {
	startTime := time.Now()
	result, err := s.Sweep()
	if err != nil {
		log.Printf("Meme retention: sweep of %s failed: %v", s.dir, err)
		return
	}
	if result.Removed > 0 || result.Failed > 0 {
		log.Printf("Meme retention: removed %d of %d files (%d failed) in %v",
			result.Removed, result.Scanned, result.Failed, time.Since(startTime))
	}
}

// Sweep removes expired files from the directory once. Subdirectories are left alone.
func (s *RetentionSweeper) Sweep() (SweepResult, error) {
	var result SweepResult

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return result, err
	}

	cutoff := s.now().Add(-s.maxAge)
	for _, entry := range entries {
		if entry.IsDir() || !s.isCandidate(entry.Name()) {
			continue
		}
		result.Scanned++

		info, err := entry.Info()
		if err != nil {
			// Removed concurrently
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil && !os.IsNotExist(err) {
			log.Printf("Meme retention: failed to remove %s: %v", entry.Name(), err)
			result.Failed++
			continue
		}
		result.Removed++
	}

	return result, nil
}

func (s *RetentionSweeper) isCandidate(name string) bool {
	if strings.HasPrefix(name, ".meme-") && strings.HasSuffix(name, ".tmp") {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range s.extensions {
		if ext == e {
			return true
		}
	}
	return false
}
