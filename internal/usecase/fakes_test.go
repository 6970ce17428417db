package usecase

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"sync"
	"time"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/report"
)

// fakeSource returns a small digest for any day. When gate is set, the
// first Generate call blocks until the gate is closed.
type fakeSource struct {
	mu      sync.Mutex
	calls   int
	gate    chan struct{}
	entered chan struct{}
	err     error
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Generate(ctx context.Context, day time.Time) (domain.DailyDigest, []domain.Alert, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	f.mu.Unlock()

	if first && f.gate != nil {
		if f.entered != nil {
			close(f.entered)
		}
		<-f.gate
	}
	if f.err != nil {
		return domain.DailyDigest{}, nil, f.err
	}

	date := day.Format(domain.DateLayout)
	alerts := []domain.Alert{
		{ID: date + "-a1", Title: "Road closure", Priority: domain.PriorityHigh, ActionRequired: true},
		{ID: date + "-a2", Title: "Rain warning", Priority: domain.PriorityLow},
	}
	return domain.DailyDigest{
		Date:             date,
		TotalArticles:    10,
		RelevantArticles: 4,
		Districts:        []string{"Downtown"},
		TopicClusters: []domain.TopicCluster{
			{ID: "c1", Title: "Traffic Safety Operations", Priority: domain.PriorityHigh},
		},
		Alerts: alerts,
	}, alerts, nil
}

type fakeRenderer struct {
	err    error
	alerts []domain.Alert
}

func (r *fakeRenderer) Render(d *domain.DailyDigest, alerts []domain.Alert) (*report.Document, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.alerts = alerts
	return &report.Document{
		FileName: report.FileName("Report", d.Date),
		Pages:    []*report.Page{{Number: 1}, {Number: 2}},
	}, nil
}

type fakeWriter struct {
	saved []string
}

func (w *fakeWriter) Write(doc *report.Document, out io.Writer) error {
	_, err := io.WriteString(out, "%PDF-fake "+doc.FileName)
	return err
}

func (w *fakeWriter) Save(doc *report.Document, dir string) (string, error) {
	path := filepath.Join(dir, doc.FileName)
	w.saved = append(w.saved, path)
	return path, nil
}

type fakeArchive struct {
	mu      sync.Mutex
	records []domain.ExportRecord
}

func (a *fakeArchive) Save(_ context.Context, rec domain.ExportRecord) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.records {
		if a.records[i].ID == rec.ID {
			a.records[i] = rec
			return nil
		}
	}
	a.records = append(a.records, rec)
	return nil
}

func (a *fakeArchive) Recent(_ context.Context, limit int) ([]domain.ExportRecord, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]domain.ExportRecord, 0, limit)
	for i := len(a.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, a.records[i])
	}
	return out, nil
}

func (a *fakeArchive) ExportedDates(_ context.Context, dates []string) (map[string]bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := map[string]bool{}
	for _, rec := range a.records {
		for _, d := range dates {
			if rec.ReportDate == d {
				out[d] = true
			}
		}
	}
	return out, nil
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (n *fakeNotifier) PublishReport(_ context.Context, msg string) error {
	if n.err != nil {
		return n.err
	}
	n.messages = append(n.messages, msg)
	return nil
}

var errBoom = errors.New("boom")

var testDay = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
