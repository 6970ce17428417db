package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/ports"
)

// Stage is one named step of the processing sequence.
type Stage struct {
	Step     string
	Progress int
}

// Stages is the fixed processing sequence, always run in this order.
var Stages = []Stage{
	{Step: "Fetching news articles from sources...", Progress: 20},
	{Step: "Analyzing relevance to police operations...", Progress: 40},
	{Step: "Clustering articles by topic...", Progress: 60},
	{Step: "Generating comparative analysis...", Progress: 80},
	{Step: "Finalizing daily digest...", Progress: 100},
}

// StatusFunc receives progress of the current run.
type StatusFunc func(domain.ProcessingStatus)

// Processor runs the simulated processing sequence and produces snapshots.
// Every Run takes a new generation; a run that is no longer the latest
// stops reporting and returns ErrSuperseded instead of its result.
type Processor struct {
	source ports.DigestSource
	delay  time.Duration
	logger *slog.Logger

	mu         sync.Mutex
	generation uint64
}

// NewProcessor wires the digest source and the per-stage delay.
func NewProcessor(source ports.DigestSource, delay time.Duration, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{source: source, delay: delay, logger: logger}
}

// Run walks every stage, then asks the source for the digest of day.
func (p *Processor) Run(ctx context.Context, day time.Time, report StatusFunc) (domain.Snapshot, error) {
	if p.source == nil {
		return domain.Snapshot{}, goerr.New("processor has no digest source")
	}

	p.mu.Lock()
	p.generation++
	gen := p.generation
	p.mu.Unlock()

	log := p.logger.With("generation", gen, "date", day.Format(domain.DateLayout))
	log.Debug("processing started")

	for i, stage := range Stages {
		status := domain.ProcessingStatus{Step: stage.Step, Progress: stage.Progress, IsComplete: i == len(Stages)-1}
		if !p.emit(gen, report, status) {
			log.Debug("processing superseded", "stage", stage.Step)
			return domain.Snapshot{}, goerr.Wrap(domain.ErrSuperseded, "process digest", goerr.V("generation", gen))
		}
		if err := sleep(ctx, p.delay); err != nil {
			return domain.Snapshot{}, goerr.Wrap(err, "process digest", goerr.V("stage", stage.Step))
		}
	}

	digest, alerts, err := p.source.Generate(ctx, day)
	if err != nil {
		p.emit(gen, report, domain.ProcessingStatus{Step: "Processing failed", Error: err.Error()})
		return domain.Snapshot{}, goerr.Wrap(err, "generate digest", goerr.V("source", p.source.Name()))
	}

	if !p.current(gen) {
		log.Debug("processing superseded after generation")
		return domain.Snapshot{}, goerr.Wrap(domain.ErrSuperseded, "process digest", goerr.V("generation", gen))
	}

	log.Info("processing finished",
		"clusters", len(digest.TopicClusters),
		"alerts", len(alerts))
	return domain.Snapshot{Digest: digest, Alerts: alerts, Generation: gen}, nil
}

// Current reports whether gen is still the latest run.
func (p *Processor) Current(gen uint64) bool {
	return p.current(gen)
}

func (p *Processor) current(gen uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return gen == p.generation
}

// emit reports status while holding the lock so that a superseded run can
// never report after a newer run has started.
func (p *Processor) emit(gen uint64, report StatusFunc, status domain.ProcessingStatus) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.generation {
		return false
	}
	if report != nil {
		report(status)
	}
	return true
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
