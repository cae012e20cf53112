package ingest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"backend/internal/app/ds"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// ErrPollInProgress is returned when a manual check collides with a run
// that is already underway.
var ErrPollInProgress = errors.New("email check already in progress")

// Poller runs the ingestion pipeline on a fixed schedule and on demand.
// A mutex guarantees at most one run at a time; overlapping triggers
// are rejected, not queued.
type Poller struct {
	pipeline *Pipeline
	interval time.Duration

	mu   sync.Mutex
	cron *cron.Cron
}

func NewPoller(pipeline *Pipeline, interval time.Duration) *Poller {
	return &Poller{pipeline: pipeline, interval: interval}
}

// Start schedules the periodic inbox check. Scheduled runs that find a
// check already running are skipped silently.
func (p *Poller) Start() error {
	if p.cron != nil {
		return errors.New("poller already started")
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := c.AddFunc(spec, p.scheduledRun); err != nil {
		return fmt.Errorf("schedule email poll: %w", err)
	}
	c.Start()
	p.cron = c

	logrus.Infof("email polling started (%s)", spec)
	return nil
}

func (p *Poller) Stop() {
	if p.cron != nil {
		p.cron.Stop()
		p.cron = nil
	}
}

// Trigger runs the pipeline once, immediately. It fails with
// ErrPollInProgress instead of waiting when a run is active.
func (p *Poller) Trigger(ctx context.Context) ([]ds.Proposal, error) {
	if !p.mu.TryLock() {
		return nil, ErrPollInProgress
	}
	defer p.mu.Unlock()

	return p.pipeline.ProcessEmails(ctx)
}

func (p *Poller) scheduledRun() {
	if !p.mu.TryLock() {
		logrus.Debug("skipping scheduled email check: previous run still active")
		return
	}
	defer p.mu.Unlock()

	if _, err := p.pipeline.ProcessEmails(context.Background()); err != nil {
		logrus.Errorf("scheduled email check failed: %v", err)
	}
}
