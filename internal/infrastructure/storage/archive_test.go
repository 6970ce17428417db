package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"PoliceDigest/internal/domain"
)

func openTestArchive(t *testing.T) *Archive {
	t.Helper()

	archive, err := Open(context.Background(), DriverSQLite, filepath.Join(t.TempDir(), "archive.db"))
	gt.NoError(t, err).Required()
	t.Cleanup(func() { _ = archive.Close() })
	return archive
}

func record(id, date string, at time.Time) domain.ExportRecord {
	return domain.ExportRecord{
		ID:          id,
		ReportDate:  date,
		FileName:    "AP_State_Police_Report_" + date + ".pdf",
		FilePath:    "/reports/AP_State_Police_Report_" + date + ".pdf",
		Pages:       4,
		Clusters:    3,
		Alerts:      1,
		Status:      domain.ExportSaved,
		GeneratedAt: at,
	}
}

func TestArchiveSaveAndRecent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	archive := openTestArchive(t)
	base := time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)

	gt.NoError(t, archive.Save(ctx, record("a", "2025-01-13", base))).Required()
	gt.NoError(t, archive.Save(ctx, record("b", "2025-01-14", base.Add(time.Hour)))).Required()
	gt.NoError(t, archive.Save(ctx, record("c", "2025-01-15", base.Add(2*time.Hour)))).Required()

	recent, err := archive.Recent(ctx, 2)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(recent), 2)
	gt.Equal(t, recent[0].ID, "c")
	gt.Equal(t, recent[1].ID, "b")
	gt.Equal(t, recent[0], record("c", "2025-01-15", base.Add(2*time.Hour)))

	none, err := archive.Recent(ctx, 0)
	gt.NoError(t, err)
	gt.Equal(t, len(none), 0)
}

func TestArchiveSaveUpserts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	archive := openTestArchive(t)
	at := time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)

	rec := record("same", "2025-01-15", at)
	gt.NoError(t, archive.Save(ctx, rec)).Required()

	rec.Status = domain.ExportDelivered
	rec.Pages = 6
	gt.NoError(t, archive.Save(ctx, rec)).Required()

	recent, err := archive.Recent(ctx, 10)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(recent), 1)
	gt.Equal(t, recent[0].Status, domain.ExportDelivered)
	gt.Equal(t, recent[0].Pages, 6)
}

func TestArchiveAssignsID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	archive := openTestArchive(t)

	gt.NoError(t, archive.Save(ctx, record("", "2025-01-15", time.Time{}))).Required()
	recent, err := archive.Recent(ctx, 1)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(recent), 1)
	gt.True(t, recent[0].ID != "")
	gt.False(t, recent[0].GeneratedAt.IsZero())
}

func TestArchiveExportedDates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	archive := openTestArchive(t)
	at := time.Date(2025, time.January, 15, 8, 0, 0, 0, time.UTC)

	gt.NoError(t, archive.Save(ctx, record("a", "2025-01-14", at))).Required()
	gt.NoError(t, archive.Save(ctx, record("b", "2025-01-15", at))).Required()
	gt.NoError(t, archive.Save(ctx, record("c", "2025-01-15", at.Add(time.Minute)))).Required()

	got, err := archive.ExportedDates(ctx, []string{"2025-01-13", "2025-01-15"})
	gt.NoError(t, err).Required()
	gt.Equal(t, got, map[string]bool{"2025-01-15": true})

	empty, err := archive.ExportedDates(ctx, nil)
	gt.NoError(t, err)
	gt.Equal(t, len(empty), 0)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "")
	gt.Error(t, err)
}
