// Package history tracks reported variants across reanalysis runs in DuckDB,
// so repeat findings can be distinguished from ones new to the latest run.
package history

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	goduckdb "github.com/marcboeker/go-duckdb"

	"github.com/populationgenomics/automated-interpretation-pipeline/internal/variant"
)

const dateLayout = "2006-01-02"

// Store manages a DuckDB connection holding the first-seen record per
// reported (sample, variant, gene).
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates a DuckDB database at the given path.
// Use an empty string for an in-memory database.
func Open(path string) (*Store, error) {
	if path != "" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for direct access.
func (s *Store) DB() *sql.DB {
	return s.db
}

// ensureSchema creates tables if they don't exist.
func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS reported_variants (
		sample VARCHAR,
		chrom VARCHAR,
		pos BIGINT,
		ref VARCHAR,
		alt VARCHAR,
		gene VARCHAR,
		reasons VARCHAR,
		support_vars VARCHAR,
		first_seen DATE,
		PRIMARY KEY (sample, chrom, pos, ref, alt, gene)
	)`)
	return err
}

// recordKey identifies one reported finding for history purposes.
type recordKey struct {
	sample, chrom, ref, alt, gene string
	pos                           int64
}

func keyFor(r *variant.ReportedVariant) recordKey {
	c := r.Var.Coordinates
	return recordKey{
		sample: r.Sample,
		chrom:  c.Chrom,
		ref:    c.Ref,
		alt:    c.Alt,
		gene:   r.Gene,
		pos:    c.Pos,
	}
}

// Annotate stamps each record with the date it was first reported, querying
// the store for prior sightings and writing the rest as first seen today.
// Records already in the store keep their original date.
func (s *Store) Annotate(results map[string]map[string]*variant.ReportedVariant) error {
	firstSeen, err := s.loadFirstSeen()
	if err != nil {
		return err
	}

	today := time.Now().Format(dateLayout)
	var fresh []*variant.ReportedVariant

	for _, perSample := range results {
		for _, record := range perSample {
			if seen, ok := firstSeen[keyFor(record)]; ok {
				record.FirstSeen = seen
				continue
			}
			record.FirstSeen = today
			fresh = append(fresh, record)
		}
	}

	return s.appendRecords(fresh, today)
}

// loadFirstSeen reads all prior sightings into a lookup map. Cohort result
// sets are small post-filtering, so a full scan stays cheap.
func (s *Store) loadFirstSeen() (map[recordKey]string, error) {
	rows, err := s.db.Query(
		`SELECT sample, chrom, pos, ref, alt, gene, first_seen FROM reported_variants`,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	seen := make(map[recordKey]string)
	for rows.Next() {
		var k recordKey
		var date time.Time
		if err := rows.Scan(&k.sample, &k.chrom, &k.pos, &k.ref, &k.alt, &k.gene, &date); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		seen[k] = date.Format(dateLayout)
	}
	return seen, rows.Err()
}

// appendRecords batch-inserts newly seen findings using the Appender API.
func (s *Store) appendRecords(records []*variant.ReportedVariant, date string) error {
	if len(records) == 0 {
		return nil
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return fmt.Errorf("parse history date: %w", err)
	}

	// deduplicate by primary key (same finding from multiple MOI branches)
	seen := make(map[recordKey]bool, len(records))
	deduped := make([]*variant.ReportedVariant, 0, len(records))
	for _, r := range records {
		k := keyFor(r)
		if !seen[k] {
			seen[k] = true
			deduped = append(deduped, r)
		}
	}

	conn, err := s.db.Conn(context.Background())
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	var appender *goduckdb.Appender
	if err := conn.Raw(func(driverConn any) error {
		var err error
		appender, err = goduckdb.NewAppenderFromConn(driverConn.(driver.Conn), "", "reported_variants")
		return err
	}); err != nil {
		return fmt.Errorf("create appender: %w", err)
	}
	defer appender.Close()

	for _, r := range deduped {
		c := r.Var.Coordinates
		if err := appender.AppendRow(
			r.Sample, c.Chrom, c.Pos, c.Ref, c.Alt, r.Gene,
			joinSet(r.Reasons), joinSet(r.SupportVars), day,
		); err != nil {
			return fmt.Errorf("append history record: %w", err)
		}
	}

	return appender.Flush()
}

// Count returns the number of stored history records.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM reported_variants`).Scan(&n)
	return n, err
}

// Clear removes all stored history records.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM reported_variants`)
	return err
}

func joinSet(s variant.StringSet) string {
	return strings.Join(s.Sorted(), ",")
}
