package versioning

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
)

// Prune removes version directories created before now-maxAge and drops job
// directories left empty. It returns the number of versions removed.
func Prune(outBaseDir string, maxAge time.Duration, now time.Time) (int, error) {
	if outBaseDir == "" {
		outBaseDir = "out"
	}
	root := filepath.Join(outBaseDir, "versions")
	jobs, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := now.Add(-maxAge)
	removed := 0
	for _, job := range jobs {
		if !job.IsDir() {
			continue
		}
		versions, err := ListVersions(outBaseDir, job.Name())
		if err != nil {
			return removed, err
		}
		for _, v := range versions {
			if !v.CreatedAt.Before(cutoff) {
				continue
			}
			if err := os.RemoveAll(filepath.Join(root, job.Name(), v.VersionID)); err != nil {
				return removed, err
			}
			removed++
		}
		jobDir := filepath.Join(root, job.Name())
		if left, err := os.ReadDir(jobDir); err == nil && len(left) == 0 {
			_ = os.Remove(jobDir)
		}
	}
	return removed, nil
}

func sortByCreated(vs []Version) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].CreatedAt.Before(vs[j].CreatedAt) })
}

// Scheduler runs Prune nightly.
type Scheduler struct {
	OutDir string
	MaxAge time.Duration
	Spec   string

	c *cron.Cron
}

func NewScheduler(outDir string, retentionDays int) *Scheduler {
	return &Scheduler{
		OutDir: outDir,
		MaxAge: time.Duration(retentionDays) * 24 * time.Hour,
		Spec:   "0 0 0 * * *",
	}
}

// Start registers the prune job and starts the cron runner. A non-positive MaxAge
// disables retention.
func (s *Scheduler) Start() error {
	if s.MaxAge <= 0 {
		log.Println("[info] version retention disabled")
		return nil
	}
	s.c = cron.New(cron.WithSeconds())
	if _, err := s.c.AddFunc(s.Spec, s.RunOnce); err != nil {
		return err
	}
	log.Printf("[info] version retention scheduled spec=%q max_age=%s", s.Spec, s.MaxAge)
	s.c.Start()
	return nil
}

func (s *Scheduler) RunOnce() {
	n, err := Prune(s.OutDir, s.MaxAge, time.Now().UTC())
	if err != nil {
		log.Printf("[error] version prune failed: %v", err)
		return
	}
	log.Printf("[info] version prune removed=%d", n)
}

// Stop waits for a running prune to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	if s.c == nil {
		return
	}
	select {
	case <-s.c.Stop().Done():
	case <-ctx.Done():
	}
}
