// Package health periodically probes the REST backend and keeps the latest result for the dashboard.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Dan9191/custlysis-dashboard/internal/metrics"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Pinger is anything that can check backend reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// Status is the result of the most recent probe
type Status struct {
	Checked   bool
	Up        bool
	CheckedAt time.Time
	Error     string
}

// Prober runs backend probes on a cron schedule
type Prober struct {
	pinger  Pinger
	timeout time.Duration
	log     *logrus.Logger
	cron    *cron.Cron

	mu     sync.RWMutex
	status Status
}

// NewProber creates a prober for the given cron schedule (standard five-field expression or "@every 30s")
func NewProber(pinger Pinger, schedule string, timeout time.Duration, log *logrus.Logger) (*Prober, error) {
	p := &Prober{
		pinger:  pinger,
		timeout: timeout,
		log:     log,
		cron:    cron.New(),
	}
	if _, err := p.cron.AddFunc(schedule, func() { p.Check(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid health probe schedule %q: %w", schedule, err)
	}
	return p, nil
}

// Start begins scheduled probing
func (p *Prober) Start() {
	p.cron.Start()
}

// Stop stops the scheduler and waits for a running probe to finish
func (p *Prober) Stop() {
	<-p.cron.Stop().Done()
}

// Check probes the backend once and records the result
func (p *Prober) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.pinger.Ping(ctx)
	st := Status{Checked: true, Up: err == nil, CheckedAt: time.Now()}
	if err != nil {
		st.Error = err.Error()
		metrics.BackendUp.Set(0)
		p.log.WithError(err).Warn("backend health probe failed")
	} else {
		metrics.BackendUp.Set(1)
		p.log.Debug("backend health probe succeeded")
	}

	p.mu.Lock()
	p.status = st
	p.mu.Unlock()
	return st
}

// Status returns the latest probe result
func (p *Prober) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}
