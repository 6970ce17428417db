package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/ports"
	"PoliceDigest/internal/report"
)

// ExporterDeps wires the driven adapters of the export workflow.
type ExporterDeps struct {
	Renderer  ports.ReportRenderer
	Writer    ports.DocumentWriter
	Archive   ports.ExportArchive
	Notifier  ports.Notifier
	OutputDir string
	Logger    *slog.Logger
	Now       func() time.Time
}

// Exporter renders snapshots into report files.
type Exporter struct {
	renderer  ports.ReportRenderer
	writer    ports.DocumentWriter
	archive   ports.ExportArchive
	notifier  ports.Notifier
	outputDir string
	logger    *slog.Logger
	now       func() time.Time
}

// ExportResult describes a finished export.
type ExportResult struct {
	Path     string `json:"path,omitempty"`
	FileName string `json:"fileName"`
	Pages    int    `json:"pages"`
	Notified bool   `json:"notified"`
}

// NewExporter constructs the export component.
func NewExporter(deps ExporterDeps) *Exporter {
	e := &Exporter{
		renderer:  deps.Renderer,
		writer:    deps.Writer,
		archive:   deps.Archive,
		notifier:  deps.Notifier,
		outputDir: deps.OutputDir,
		logger:    deps.Logger,
		now:       deps.Now,
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.now == nil {
		e.now = time.Now
	}
	return e
}

// Export renders the snapshot, saves the file, archives a record and, when
// a notifier is set, announces the report. A failed notice is logged and
// does not fail the export.
func (e *Exporter) Export(ctx context.Context, snap domain.Snapshot) (ExportResult, error) {
	doc, err := e.render(snap)
	if err != nil {
		return ExportResult{}, err
	}

	path, err := e.writer.Save(doc, e.outputDir)
	if err != nil {
		return ExportResult{}, goerr.Wrap(err, "save report", goerr.V("dir", e.outputDir))
	}

	result := ExportResult{Path: path, FileName: doc.FileName, Pages: doc.PageCount()}
	rec := e.record(snap, doc, path, domain.ExportSaved)
	if err := e.save(ctx, rec); err != nil {
		return result, err
	}

	e.logger.Info("report exported", "path", path, "pages", result.Pages, "date", snap.Digest.Date)

	if e.notifier == nil {
		return result, nil
	}
	if err := e.notifier.PublishReport(ctx, exportMessage(snap, result)); err != nil {
		e.logger.Warn("report notice failed", "error", err, "date", snap.Digest.Date)
		return result, nil
	}

	result.Notified = true
	rec.Status = domain.ExportDelivered
	if err := e.save(ctx, rec); err != nil {
		return result, err
	}
	return result, nil
}

// WriteTo renders the snapshot straight into w, e.g. an HTTP response.
func (e *Exporter) WriteTo(ctx context.Context, snap domain.Snapshot, w io.Writer) (ExportResult, error) {
	doc, err := e.render(snap)
	if err != nil {
		return ExportResult{}, err
	}
	if err := e.writer.Write(doc, w); err != nil {
		return ExportResult{}, goerr.Wrap(err, "write report")
	}

	if err := e.save(ctx, e.record(snap, doc, "", domain.ExportRendered)); err != nil {
		e.logger.Warn("archive download record failed", "error", err)
	}
	return ExportResult{FileName: doc.FileName, Pages: doc.PageCount()}, nil
}

// History returns the most recent archived exports.
func (e *Exporter) History(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	if e.archive == nil {
		return nil, nil
	}
	return e.archive.Recent(ctx, limit)
}

// Exported reports which of the given dates already have a saved report.
func (e *Exporter) Exported(ctx context.Context, dates []string) (map[string]bool, error) {
	if e.archive == nil {
		return map[string]bool{}, nil
	}
	return e.archive.ExportedDates(ctx, dates)
}

func (e *Exporter) render(snap domain.Snapshot) (*report.Document, error) {
	if e.renderer == nil || e.writer == nil {
		return nil, goerr.New("exporter misconfigured")
	}
	doc, err := e.renderer.Render(&snap.Digest, snap.Alerts)
	if err != nil {
		return nil, goerr.Wrap(err, "render report", goerr.V("date", snap.Digest.Date))
	}
	return doc, nil
}

func (e *Exporter) record(snap domain.Snapshot, doc *report.Document, path string, status domain.ExportStatus) domain.ExportRecord {
	return domain.ExportRecord{
		ID:          uuid.NewString(),
		ReportDate:  snap.Digest.Date,
		FileName:    doc.FileName,
		FilePath:    path,
		Pages:       doc.PageCount(),
		Clusters:    len(snap.Digest.TopicClusters),
		Alerts:      len(snap.Alerts),
		Status:      status,
		GeneratedAt: e.now(),
	}
}

func (e *Exporter) save(ctx context.Context, rec domain.ExportRecord) error {
	if e.archive == nil {
		return nil
	}
	if err := e.archive.Save(ctx, rec); err != nil {
		return goerr.Wrap(err, "archive export", goerr.V("date", rec.ReportDate))
	}
	return nil
}

// markdownEscaper escapes the characters Telegram's legacy Markdown treats as entity markers.
var markdownEscaper = strings.NewReplacer("_", `\_`, "*", `\*`, "`", "\\`", "[", `\[`)

func exportMessage(snap domain.Snapshot, result ExportResult) string {
	d := snap.Digest
	return fmt.Sprintf("*Daily report %s*\nArticles: %d (relevant %d, %d%%)\nClusters: %d | Alerts: %d\nFile: %s (%d pages)",
		markdownEscaper.Replace(d.Date), d.TotalArticles, d.RelevantArticles, d.RelevanceRate(),
		len(d.TopicClusters), len(snap.Alerts), markdownEscaper.Replace(result.FileName), result.Pages)
}
