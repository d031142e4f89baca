package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-overview/internal/domain"
	"github.com/couchcryptid/weather-overview/internal/observability"
	"github.com/jonboulle/clockwork"
)

// TableSource loads the weather table stored at path.
type TableSource interface {
	Load(path string) (domain.Table, error)
}

// Publisher delivers a rendered report downstream.
type Publisher interface {
	Publish(ctx context.Context, report domain.Report) error
}

// Pipeline loads the data file, renders it, and publishes the result on a
// fixed interval.
type Pipeline struct {
	source    TableSource
	publisher Publisher
	path      string
	interval  time.Duration
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
}

// New creates a Pipeline. A nil publisher disables publishing; Run then only
// refreshes the report and metrics.
func New(source TableSource, publisher Publisher, path string, interval time.Duration, clock clockwork.Clock, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:    source,
		publisher: publisher,
		path:      path,
		interval:  interval,
		clock:     clock,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness returns nil once a report has been generated, or an error
// describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no report has been generated yet")
	}
	return nil
}

// Generate loads the data file and renders a report from it.
func (p *Pipeline) Generate(ctx context.Context) (domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}
	start := p.clock.Now()

	table, err := p.source.Load(p.path)
	if err != nil {
		p.metrics.ReportErrors.Inc()
		return domain.Report{}, fmt.Errorf("load table: %w", err)
	}
	p.metrics.RowsLoaded.Set(float64(len(table)))

	report, err := domain.NewReport(p.path, table)
	if err != nil {
		p.metrics.ReportErrors.Inc()
		return domain.Report{}, fmt.Errorf("render report: %w", err)
	}

	p.metrics.ReportsGenerated.Inc()
	p.metrics.GenerationSeconds.Observe(p.clock.Since(start).Seconds())
	p.ready.Store(true)
	return report, nil
}

// Run refreshes immediately and then on every interval tick until the
// context is cancelled. Failures are logged and retried on the next tick.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started",
		"path", p.path,
		"refresh_interval", p.interval,
		"publish", p.publisher != nil,
	)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	ticker := p.clock.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		p.refresh(ctx)

		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		case <-ticker.Chan():
		}
	}
}

// refresh runs one generate-and-publish cycle.
func (p *Pipeline) refresh(ctx context.Context) {
	report, err := p.Generate(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Error("generate report failed", "error", err, "path", p.path)
		return
	}
	p.logger.Debug("report generated", "days", report.Days, "generated_at", report.GeneratedAt)

	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, report); err != nil {
		if ctx.Err() != nil {
			return
		}
		p.logger.Warn("publish report failed", "error", err, "days", report.Days)
		p.metrics.PublishErrors.Inc()
		return
	}
	p.metrics.ReportsPublished.Inc()
}
