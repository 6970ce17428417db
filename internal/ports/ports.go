package ports

import (
	"context"
	"io"
	"time"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/report"
)

// DigestSource produces the digest and alert list for a day.
type DigestSource interface {
	Name() string
	Generate(ctx context.Context, day time.Time) (domain.DailyDigest, []domain.Alert, error)
}

// ReportRenderer lays a snapshot out into a paginated document.
type ReportRenderer interface {
	Render(digest *domain.DailyDigest, alerts []domain.Alert) (*report.Document, error)
}

// DocumentWriter persists a rendered document.
type DocumentWriter interface {
	Write(doc *report.Document, w io.Writer) error
	Save(doc *report.Document, dir string) (string, error)
}

// ExportArchive keeps a history of exported reports.
type ExportArchive interface {
	Save(ctx context.Context, record domain.ExportRecord) error
	Recent(ctx context.Context, limit int) ([]domain.ExportRecord, error)
	ExportedDates(ctx context.Context, dates []string) (map[string]bool, error)
}

// Notifier announces finished exports to Telegram or other channels.
type Notifier interface {
	PublishReport(ctx context.Context, message string) error
}

// Scheduler controls when recurring exports execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
