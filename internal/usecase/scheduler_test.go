package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/logging"
)

// immediateDriver fires the job once, synchronously, on Start.
type immediateDriver struct {
	at      time.Time
	stopped bool
}

func (d *immediateDriver) Start(_ context.Context, job func(time.Time)) error {
	job(d.at)
	return nil
}

func (d *immediateDriver) Stop(context.Context) error {
	d.stopped = true
	return nil
}

func TestSchedulerExportsOnTrigger(t *testing.T) {
	t.Parallel()

	archive := &fakeArchive{}
	exporter := NewExporter(ExporterDeps{
		Renderer: &fakeRenderer{},
		Writer:   &fakeWriter{},
		Archive:  archive,
		Logger:   logging.Discard(),
	})
	driver := &immediateDriver{at: time.Date(2025, time.February, 3, 6, 0, 0, 0, time.UTC)}
	s := NewScheduler(driver, NewProcessor(&fakeSource{}, 0, logging.Discard()), exporter, logging.Discard())

	ctx := context.Background()
	gt.NoError(t, s.Start(ctx)).Required()
	gt.Equal(t, len(archive.records), 1)
	gt.Equal(t, archive.records[0].ReportDate, "2025-02-03")

	gt.NoError(t, s.Stop(ctx))
	gt.True(t, driver.stopped)
}

func TestSchedulerWithoutDriver(t *testing.T) {
	t.Parallel()

	s := NewScheduler(nil, nil, nil, nil)
	gt.NoError(t, s.Start(context.Background()))
	gt.NoError(t, s.Stop(context.Background()))
}

func TestSchedulerDoesNotSupersedeSession(t *testing.T) {
	t.Parallel()

	src := &fakeSource{gate: make(chan struct{}), entered: make(chan struct{})}
	archive := &fakeArchive{}
	exporter := NewExporter(ExporterDeps{
		Renderer: &fakeRenderer{},
		Writer:   &fakeWriter{},
		Archive:  archive,
		Logger:   logging.Discard(),
	})
	session := NewSession(NewProcessor(src, 0, logging.Discard()), exporter, logging.Discard())
	s := NewScheduler(nil, NewProcessor(src, 0, logging.Discard()), exporter, logging.Discard())

	done := make(chan error, 1)
	go func() {
		_, err := session.Process(context.Background(), testDay)
		done <- err
	}()

	<-src.entered
	_, err := s.RunOnce(context.Background(), testDay.AddDate(0, 0, -1))
	gt.NoError(t, err).Required()
	gt.Equal(t, len(archive.records), 1)

	close(src.gate)
	gt.NoError(t, <-done)

	snap, err := session.Snapshot()
	gt.NoError(t, err).Required()
	gt.Equal(t, snap.Digest.Date, "2025-01-15")
}
