package intake

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql" // Register mysql driver (common external feed host)
	_ "github.com/lib/pq"              // Register postgres driver
	"github.com/turnio-lab/project-turnio/internal/core/ticket"
)

const feedPingTimeout = 5 * time.Second

// Feed is the read-only view of the external intake store: today's records
// for the relevant category, oldest first. The feed is owned by an external
// system and assumed append-only for the current day.
type Feed interface {
	RecordsToday(ctx context.Context) ([]*ticket.IntakeRecord, error)
}

// identifierPattern restricts the configured feed table/view name; it is
// interpolated into query text, not bound as a parameter.
var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9_.]+$`)

// SQLFeed reads the external intake store over database/sql. The external
// system typically lives on a separate MySQL server, but a postgres feed is
// supported for co-located deployments.
type SQLFeed struct {
	db             *sql.DB
	query          string
	categoryFilter string
	fetchLimit     int
}

// NewSQLFeed opens a connection to the external intake store.
// driver must be "mysql" or "postgres"; table is the feed view to read.
func NewSQLFeed(driver, dsn, table, categoryFilter string, fetchLimit int) (*SQLFeed, error) {
	if !identifierPattern.MatchString(table) {
		return nil, fmt.Errorf("invalid external feed table name %q", table)
	}
	if fetchLimit <= 0 {
		fetchLimit = 100
	}

	var query string
	switch driver {
	case "mysql":
		query = fmt.Sprintf(`
			SELECT first_name, middle_name, first_surname, second_surname,
			       document, category_label, arrived_at
			FROM %s
			WHERE DATE(arrived_at) = CURDATE()
			  AND category_label = ?
			ORDER BY arrived_at ASC
			LIMIT ?`, table)
	case "postgres":
		query = fmt.Sprintf(`
			SELECT first_name, middle_name, first_surname, second_surname,
			       document, category_label, arrived_at
			FROM %s
			WHERE arrived_at::date = CURRENT_DATE
			  AND category_label = $1
			ORDER BY arrived_at ASC
			LIMIT $2`, table)
	default:
		return nil, fmt.Errorf("unsupported external feed driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open external feed database: %w", err)
	}

	// The feed is polled, not hammered; a small pool is plenty.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(context.Background(), feedPingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping external feed database: %w", err)
	}

	slog.Info("[IntakeFeed] Connected to external feed",
		"driver", driver,
		"table", table,
		"category_filter", categoryFilter)

	return &SQLFeed{
		db:             db,
		query:          query,
		categoryFilter: categoryFilter,
		fetchLimit:     fetchLimit,
	}, nil
}

// RecordsToday fetches today's intake records matching the category filter,
// ordered by arrival.
func (f *SQLFeed) RecordsToday(ctx context.Context) ([]*ticket.IntakeRecord, error) {
	rows, err := f.db.QueryContext(ctx, f.query, f.categoryFilter, f.fetchLimit)
	if err != nil {
		return nil, fmt.Errorf("query external feed: %w", err)
	}
	defer rows.Close()

	var records []*ticket.IntakeRecord
	for rows.Next() {
		var (
			rec           ticket.IntakeRecord
			firstName     sql.NullString
			middleName    sql.NullString
			firstSurname  sql.NullString
			secondSurname sql.NullString
			document      sql.NullString
			categoryLabel sql.NullString
		)
		if err := rows.Scan(
			&firstName,
			&middleName,
			&firstSurname,
			&secondSurname,
			&document,
			&categoryLabel,
			&rec.ArrivedAt,
		); err != nil {
			return nil, fmt.Errorf("scan external feed row: %w", err)
		}

		rec.FirstName = firstName.String
		rec.MiddleName = middleName.String
		rec.FirstSurname = firstSurname.String
		rec.SecondSurname = secondSurname.String
		rec.Document = document.String
		rec.CategoryLabel = categoryLabel.String

		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate external feed rows: %w", err)
	}

	return records, nil
}

// Close closes the feed connection.
func (f *SQLFeed) Close() error {
	if err := f.db.Close(); err != nil {
		return fmt.Errorf("failed to close external feed database: %w", err)
	}
	return nil
}
