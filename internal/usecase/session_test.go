package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/dashboard"
	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/logging"
)

func newTestSession(src *fakeSource) (*Session, *fakeRenderer) {
	renderer := &fakeRenderer{}
	exporter := NewExporter(ExporterDeps{
		Renderer: renderer,
		Writer:   &fakeWriter{},
		Archive:  &fakeArchive{},
		Logger:   logging.Discard(),
	})
	return NewSession(NewProcessor(src, 0, logging.Discard()), exporter, logging.Discard()), renderer
}

func TestSessionRequiresDigest(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(&fakeSource{})
	_, err := s.Snapshot()
	gt.True(t, errors.Is(err, domain.ErrNoDigest))
	_, err = s.Export(context.Background())
	gt.True(t, errors.Is(err, domain.ErrNoDigest))
	gt.False(t, s.Status().Loaded)
}

func TestSessionProcessAndQuery(t *testing.T) {
	t.Parallel()

	s, renderer := newTestSession(&fakeSource{})
	_, err := s.Process(context.Background(), testDay)
	gt.NoError(t, err).Required()

	st := s.Status()
	gt.True(t, st.Loaded)
	gt.False(t, st.Processing)
	gt.Equal(t, st.Date, "2025-01-15")

	clusters, err := s.Clusters(dashboard.FilterHigh, "traffic")
	gt.NoError(t, err)
	gt.Equal(t, len(clusters), 1)

	_, err = s.Cluster("nope")
	gt.True(t, errors.Is(err, domain.ErrClusterNotFound))

	gt.NoError(t, s.Dismiss("2025-01-15-a1")).Required()
	alerts, err := s.Alerts()
	gt.NoError(t, err)
	gt.Equal(t, len(alerts), 1)

	o, err := s.Overview()
	gt.NoError(t, err)
	gt.Equal(t, o.ActiveAlerts, 1)
	gt.Equal(t, o.ActionRequired, 0)

	_, err = s.Export(context.Background())
	gt.NoError(t, err).Required()
	gt.Equal(t, len(renderer.alerts), 1)
	gt.Equal(t, renderer.alerts[0].ID, "2025-01-15-a2")

	history, err := s.Exports(context.Background(), 10)
	gt.NoError(t, err)
	gt.Equal(t, len(history), 1)
}

func TestSessionStaleRunNeverOverwrites(t *testing.T) {
	t.Parallel()

	src := &fakeSource{gate: make(chan struct{}), entered: make(chan struct{})}
	s, _ := newTestSession(src)

	done := make(chan error, 1)
	go func() {
		_, err := s.Process(context.Background(), testDay)
		done <- err
	}()

	<-src.entered
	_, err := s.Process(context.Background(), testDay.AddDate(0, 0, -3))
	gt.NoError(t, err).Required()

	close(src.gate)
	gt.True(t, errors.Is(<-done, domain.ErrSuperseded))

	snap, err := s.Snapshot()
	gt.NoError(t, err).Required()
	gt.Equal(t, snap.Digest.Date, "2025-01-12")
	gt.Equal(t, s.Status().Date, "2025-01-12")
	gt.False(t, s.Status().Processing)
}

func TestSessionProcessError(t *testing.T) {
	t.Parallel()

	s, _ := newTestSession(&fakeSource{err: errBoom})
	_, err := s.Process(context.Background(), testDay)
	gt.True(t, errors.Is(err, errBoom))

	st := s.Status()
	gt.False(t, st.Processing)
	gt.False(t, st.Loaded)
	gt.True(t, st.Error != "")
}
