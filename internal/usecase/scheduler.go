package usecase

import (
	"context"
	"log/slog"
	"time"

	"PoliceDigest/internal/ports"
)

// Scheduler wires the daily trigger with processing and export.
type Scheduler struct {
	driver    ports.Scheduler
	processor *Processor
	exporter  *Exporter
	logger    *slog.Logger
}

// NewScheduler returns a helper to start/stop the recurring export.
func NewScheduler(driver ports.Scheduler, processor *Processor, exporter *Exporter, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{driver: driver, processor: processor, exporter: exporter, logger: logger}
}

// RunOnce processes and exports the digest for the trigger's date.
func (s *Scheduler) RunOnce(ctx context.Context, trigger time.Time) (ExportResult, error) {
	snap, err := s.processor.Run(ctx, trigger, nil)
	if err != nil {
		return ExportResult{}, err
	}
	return s.exporter.Export(ctx, snap)
}

// Start registers the daily export with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.processor == nil || s.exporter == nil {
		return nil
	}

	job := func(trigger time.Time) {
		result, err := s.RunOnce(ctx, trigger)
		if err != nil {
			s.logger.Error("scheduled export failed", "error", err, "trigger", trigger)
			return
		}
		s.logger.Info("scheduled export done", "path", result.Path, "pages", result.Pages)
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}
