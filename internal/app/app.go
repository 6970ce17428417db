package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/config"
	"PoliceDigest/internal/infrastructure/mockdata"
	"PoliceDigest/internal/infrastructure/pdf"
	"PoliceDigest/internal/infrastructure/scheduler"
	"PoliceDigest/internal/infrastructure/storage"
	"PoliceDigest/internal/infrastructure/telegram"
	"PoliceDigest/internal/logging"
	"PoliceDigest/internal/ports"
	"PoliceDigest/internal/report"
	"PoliceDigest/internal/source"
	"PoliceDigest/internal/usecase"
)

// Application wires configs to use cases and lifecycle orchestration.
type Application struct {
	cfg     config.Config
	logger  *slog.Logger
	archive *storage.Archive
	source  ports.DigestSource

	Processor *usecase.Processor
	Exporter  *usecase.Exporter
	Session   *usecase.Session
}

// Option tweaks construction, mostly for tests.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock fixes the clock used for generated timestamps and report dates.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// New opens the export archive and builds the use cases.
func New(ctx context.Context, cfg config.Config, baseLogger *slog.Logger, opts ...Option) (*Application, error) {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format, nil)
	}

	registry := source.NewRegistry()
	registry.Register(mockdata.NewGenerator(baseLogger.With("component", "source.mock"), o.now))

	src, err := registry.Resolve(cfg.Processing.Source)
	if err != nil {
		return nil, err
	}

	archive, err := storage.Open(ctx, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, goerr.Wrap(err, "open export archive")
	}

	var notifier ports.Notifier
	if cfg.Notifications.Telegram.Enabled() {
		notifier = telegram.NewNotifier(cfg.Notifications.Telegram.BotToken, cfg.Notifications.Telegram.ChatID)
	}

	renderer := report.NewRenderer(pdf.NewMeasurer(), reportOptions(cfg.Report, o.now))

	processor := usecase.NewProcessor(src, cfg.Processing.StageDelay, baseLogger.With("component", "processor"))
	exporter := usecase.NewExporter(usecase.ExporterDeps{
		Renderer:  renderer,
		Writer:    pdf.NewWriter(),
		Archive:   archive,
		Notifier:  notifier,
		OutputDir: cfg.Report.OutputDir,
		Logger:    baseLogger.With("component", "exporter"),
		Now:       o.now,
	})

	baseLogger.Debug("application wired",
		"source", src.Name(),
		"storage", cfg.Storage.Driver,
		"telegram", notifier != nil,
		"output_dir", cfg.Report.OutputDir)

	return &Application{
		cfg:       cfg,
		logger:    baseLogger,
		archive:   archive,
		source:    src,
		Processor: processor,
		Exporter:  exporter,
		Session:   usecase.NewSession(processor, exporter, baseLogger.With("component", "session")),
	}, nil
}

func reportOptions(cfg config.ReportConfig, now func() time.Time) report.Options {
	opts := report.DefaultOptions()
	opts.Organization = cfg.Organization
	opts.Subtitle = cfg.Subtitle
	opts.Classification = cfg.Classification
	opts.FilePrefix = cfg.FilePrefix
	opts.PreparedBy = cfg.PreparedBy
	opts.Now = now
	return opts
}

// Scheduler builds the daily export trigger from the scheduler config.
// It runs on its own processor so a scheduled export never supersedes the interactive session.
func (a *Application) Scheduler() (*usecase.Scheduler, error) {
	driver, err := scheduler.NewCronScheduler(a.cfg.Scheduler.CronExpression, a.cfg.Scheduler.Location())
	if err != nil {
		return nil, err
	}
	processor := usecase.NewProcessor(a.source, 0, a.logger.With("component", "scheduler.processor"))
	return usecase.NewScheduler(driver, processor, a.Exporter, a.logger.With("component", "scheduler")), nil
}

// ExportDay processes day and saves its report.
func (a *Application) ExportDay(ctx context.Context, day time.Time) (usecase.ExportResult, error) {
	if _, err := a.Session.Process(ctx, day); err != nil {
		return usecase.ExportResult{}, err
	}
	return a.Session.Export(ctx)
}

// Close releases the archive connection.
func (a *Application) Close() error {
	if a.archive == nil {
		return nil
	}
	return a.archive.Close()
}
