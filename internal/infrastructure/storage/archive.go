package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/m-mizutani/goerr/v2"
	_ "modernc.org/sqlite"

	"PoliceDigest/internal/domain"
	"PoliceDigest/internal/ports"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const exportsTable = "report_exports"

// timeLayout keeps stored timestamps lexically sortable.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

var exportColumns = []string{
	"id", "report_date", "file_name", "file_path", "pages",
	"clusters", "alerts", "status", "generated_at",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS report_exports (
		id           TEXT PRIMARY KEY,
		report_date  TEXT NOT NULL,
		file_name    TEXT NOT NULL,
		file_path    TEXT NOT NULL,
		pages        INTEGER NOT NULL,
		clusters     INTEGER NOT NULL,
		alerts       INTEGER NOT NULL,
		status       TEXT NOT NULL,
		generated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS report_exports_date_idx ON report_exports (report_date)`,
}

// Archive keeps the export history in SQLite or Postgres.
type Archive struct {
	db      *sql.DB
	driver  string
	builder sq.StatementBuilderType
}

var _ ports.ExportArchive = (*Archive)(nil)

// NewArchive wires an open database handle for the named driver.
func NewArchive(db *sql.DB, driver string) *Archive {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Question)
	if driver == DriverPostgres {
		builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return &Archive{db: db, driver: driver, builder: builder}
}

// Open connects, pings and migrates the archive database.
func Open(ctx context.Context, driver, dsn string) (*Archive, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, goerr.New("unsupported storage driver", goerr.V("driver", driver))
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, goerr.Wrap(err, "open database", goerr.V("driver", driver))
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, goerr.Wrap(err, "ping database", goerr.V("driver", driver))
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}

	archive := NewArchive(db, driver)
	if err := archive.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return archive, nil
}

// Migrate creates the exports table when missing.
func (a *Archive) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := a.db.ExecContext(ctx, stmt); err != nil {
			return goerr.Wrap(err, "migrate export archive")
		}
	}
	return nil
}

// Close releases the database handle.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Save upserts an export record. Records without an id get a fresh one.
func (a *Archive) Save(ctx context.Context, record domain.ExportRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.GeneratedAt.IsZero() {
		record.GeneratedAt = time.Now()
	}

	query, args, err := a.builder.
		Insert(exportsTable).
		Columns(exportColumns...).
		Values(
			record.ID,
			record.ReportDate,
			record.FileName,
			record.FilePath,
			record.Pages,
			record.Clusters,
			record.Alerts,
			string(record.Status),
			record.GeneratedAt.UTC().Format(timeLayout),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			file_path = excluded.file_path,
			pages = excluded.pages,
			status = excluded.status,
			generated_at = excluded.generated_at`).
		ToSql()
	if err != nil {
		return goerr.Wrap(err, "build insert export")
	}

	if _, err := a.db.ExecContext(ctx, query, args...); err != nil {
		return goerr.Wrap(err, "insert export", goerr.V("id", record.ID), goerr.V("date", record.ReportDate))
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (a *Archive) Recent(ctx context.Context, limit int) ([]domain.ExportRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	query, args, err := a.builder.
		Select(exportColumns...).
		From(exportsTable).
		OrderBy("generated_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "build select exports")
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "query exports")
	}
	defer rows.Close()

	var out []domain.ExportRecord
	for rows.Next() {
		var (
			rec       domain.ExportRecord
			status    string
			generated string
		)
		if err := rows.Scan(&rec.ID, &rec.ReportDate, &rec.FileName, &rec.FilePath,
			&rec.Pages, &rec.Clusters, &rec.Alerts, &status, &generated); err != nil {
			return nil, goerr.Wrap(err, "scan export")
		}
		rec.Status = domain.ExportStatus(status)
		if rec.GeneratedAt, err = time.Parse(timeLayout, generated); err != nil {
			return nil, goerr.Wrap(err, "parse export timestamp", goerr.V("id", rec.ID))
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "iterate exports")
	}
	return out, nil
}

// ExportedDates reports which of the given dates already have an export.
func (a *Archive) ExportedDates(ctx context.Context, dates []string) (map[string]bool, error) {
	result := make(map[string]bool)
	if len(dates) == 0 {
		return result, nil
	}

	sel := a.builder.Select("DISTINCT report_date").From(exportsTable)
	if a.driver == DriverPostgres {
		sel = sel.Where("report_date = ANY(?)", pq.StringArray(dates))
	} else {
		sel = sel.Where(sq.Eq{"report_date": dates})
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, goerr.Wrap(err, "build exported dates query")
	}

	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "query exported dates")
	}
	defer rows.Close()

	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, goerr.Wrap(err, "scan exported date")
		}
		result[date] = true
	}
	if err := rows.Err(); err != nil {
		return nil, goerr.Wrap(err, "iterate exported dates")
	}
	return result, nil
}
