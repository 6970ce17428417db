package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/dashboard"
	"PoliceDigest/internal/domain"
)

// Status is the processing state exposed to the HTTP and terminal views.
type Status struct {
	Processing bool                     `json:"processing"`
	Date       string                   `json:"date,omitempty"`
	Current    *domain.ProcessingStatus `json:"current,omitempty"`
	Loaded     bool                     `json:"loaded"`
	Error      string                   `json:"error,omitempty"`
}

// Session holds the latest snapshot and its dashboard state. A newer
// Process call always wins: an older run never overwrites its result.
type Session struct {
	processor *Processor
	exporter  *Exporter
	logger    *slog.Logger

	mu         sync.Mutex
	ticket     uint64
	processing bool
	date       string
	current    *domain.ProcessingStatus
	lastErr    string
	state      *dashboard.State
}

// NewSession wires the processor and the exporter.
func NewSession(processor *Processor, exporter *Exporter, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{processor: processor, exporter: exporter, logger: logger}
}

// Process runs the processing sequence for day and installs the result.
func (s *Session) Process(ctx context.Context, day time.Time) (domain.Snapshot, error) {
	s.mu.Lock()
	s.ticket++
	ticket := s.ticket
	s.processing = true
	s.date = day.Format(domain.DateLayout)
	s.current = nil
	s.lastErr = ""
	s.mu.Unlock()

	snap, err := s.processor.Run(ctx, day, func(st domain.ProcessingStatus) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ticket == s.ticket {
			s.current = &st
		}
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket != s.ticket {
		return domain.Snapshot{}, goerr.Wrap(domain.ErrSuperseded, "install snapshot", goerr.V("date", day.Format(domain.DateLayout)))
	}
	if err != nil {
		if errors.Is(err, domain.ErrSuperseded) {
			return domain.Snapshot{}, err
		}
		s.processing = false
		s.current = nil
		s.lastErr = err.Error()
		return domain.Snapshot{}, err
	}

	s.processing = false
	s.current = nil
	if s.state == nil {
		s.state = dashboard.New(snap)
	} else {
		s.state.Reload(snap)
	}
	return snap, nil
}

// Status reports whether processing is running and how far it got.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Processing: s.processing,
		Date:       s.date,
		Loaded:     s.state != nil,
		Error:      s.lastErr,
	}
	if s.current != nil {
		cur := *s.current
		st.Current = &cur
	}
	return st
}

func (s *Session) withState(fn func(*dashboard.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return goerr.Wrap(domain.ErrNoDigest, "read dashboard")
	}
	return fn(s.state)
}

// Snapshot is the render input: the digest plus the alerts not dismissed.
func (s *Session) Snapshot() (domain.Snapshot, error) {
	var snap domain.Snapshot
	err := s.withState(func(st *dashboard.State) error {
		snap = st.RenderInput()
		return nil
	})
	return snap, err
}

// Clusters lists clusters through the given filter and search term.
func (s *Session) Clusters(filter dashboard.Filter, search string) ([]domain.TopicCluster, error) {
	var out []domain.TopicCluster
	err := s.withState(func(st *dashboard.State) error {
		out = dashboard.FilterClusters(st.Snapshot.Digest.TopicClusters, filter, search)
		return nil
	})
	return out, err
}

// Cluster returns one cluster by id.
func (s *Session) Cluster(id string) (domain.TopicCluster, error) {
	var c domain.TopicCluster
	err := s.withState(func(st *dashboard.State) error {
		var err error
		c, err = st.Cluster(id)
		return err
	})
	return c, err
}

// Alerts is the working alert list.
func (s *Session) Alerts() ([]domain.Alert, error) {
	var out []domain.Alert
	err := s.withState(func(st *dashboard.State) error {
		out = st.Alerts()
		return nil
	})
	return out, err
}

// Dismiss removes an alert from the working list.
func (s *Session) Dismiss(id string) error {
	return s.withState(func(st *dashboard.State) error {
		return st.Dismiss(id)
	})
}

// Overview returns the stats strip.
func (s *Session) Overview() (dashboard.Overview, error) {
	var o dashboard.Overview
	err := s.withState(func(st *dashboard.State) error {
		o = st.Overview()
		return nil
	})
	return o, err
}

// Analytics returns per-district statistics.
func (s *Session) Analytics() ([]domain.DistrictStats, error) {
	var out []domain.DistrictStats
	err := s.withState(func(st *dashboard.State) error {
		out = dashboard.DistrictAnalytics(st.Snapshot.Digest)
		return nil
	})
	return out, err
}

// Export saves the current snapshot as a report file.
func (s *Session) Export(ctx context.Context) (ExportResult, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return ExportResult{}, err
	}
	return s.exporter.Export(ctx, snap)
}

// WriteReport renders the current snapshot into w.
func (s *Session) WriteReport(ctx context.Context, w io.Writer) (ExportResult, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return ExportResult{}, err
	}
	return s.exporter.WriteTo(ctx, snap, w)
}

// Exports lists recent archived exports.
func (s *Session) Exports(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	return s.exporter.History(ctx, limit)
}
