// Package cities loads the pipe-delimited city gazetteer (CidMundo.txt
// format) into an in-memory SQLite index and serves diacritic- and
// case-insensitive substring searches over it.
//
// File format, one city per line, '#' comments ignored:
//
//	id|country|state|city|lat|lon|...|...|utc_offset
//
// Only fields 1-5 and 8 are read; malformed rows are skipped, matching
// the tolerant parsing of the original loader.
package cities

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// MaxResults caps a single search, as the original endpoint did.
const MaxResults = 20

// City is one gazetteer row.
type City struct {
	Name      string  `json:"city"`
	State     string  `json:"state"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	UTCOffset float64 `json:"tz"`
}

// Index is a read-only city search index.
type Index struct {
	db *sql.DB
}

// OpenFile builds an index from a gazetteer file on disk.
func OpenFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gazetteer: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load builds an index from gazetteer data.
func Load(r io.Reader) (*Index, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open city index: %w", err)
	}
	// The index lives in a single in-memory connection; a second
	// connection would see an empty database.
	db.SetMaxOpenConns(1)

	const schema = `
		CREATE TABLE cities (
			name        TEXT NOT NULL,
			name_folded TEXT NOT NULL,
			state       TEXT NOT NULL,
			country     TEXT NOT NULL,
			lat         REAL NOT NULL,
			lon         REAL NOT NULL,
			utc_offset  REAL NOT NULL
		);
		CREATE INDEX idx_cities_folded ON cities(name_folded);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create city schema: %w", err)
	}

	if err := load(db, r); err != nil {
		db.Close()
		return nil, err
	}
	return &Index{db: db}, nil
}

// load streams the file into the table inside one transaction.
func load(db *sql.DB, r io.Reader) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin city load: %w", err)
	}
	defer tx.Rollback()

	ins, err := tx.Prepare(`INSERT INTO cities
		(name, name_folded, state, country, lat, lon, utc_offset)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare city insert: %w", err)
	}
	defer ins.Close()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, "|")
		if len(parts) < 9 {
			continue
		}

		lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[4]), 64)
		lon, err2 := strconv.ParseFloat(strings.TrimSpace(parts[5]), 64)
		tz, err3 := strconv.ParseFloat(strings.TrimSpace(parts[8]), 64)
		if err1 != nil || err2 != nil || err3 != nil {
			continue // tolerant: skip malformed rows
		}

		name := strings.TrimSpace(parts[3])
		if name == "" {
			continue
		}
		if _, err := ins.Exec(name, Fold(name), strings.TrimSpace(parts[2]),
			strings.TrimSpace(parts[1]), lat, lon, tz); err != nil {
			return fmt.Errorf("insert city %q: %w", name, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read gazetteer: %w", err)
	}
	return tx.Commit()
}

// Search returns up to MaxResults cities whose folded name contains the
// folded query as a substring, ordered by name then country for a
// stable result set.
func (ix *Index) Search(ctx context.Context, query string) ([]City, error) {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return []City{}, nil
	}

	rows, err := ix.db.QueryContext(ctx, `
		SELECT name, state, country, lat, lon, utc_offset
		FROM cities
		WHERE name_folded LIKE '%' || ? || '%'
		ORDER BY name, country
		LIMIT ?`, q, MaxResults)
	if err != nil {
		return nil, fmt.Errorf("city search: %w", err)
	}
	defer rows.Close()

	out := []City{}
	for rows.Next() {
		var c City
		if err := rows.Scan(&c.Name, &c.State, &c.Country, &c.Lat, &c.Lon, &c.UTCOffset); err != nil {
			return nil, fmt.Errorf("scan city row: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Count returns the number of indexed cities.
func (ix *Index) Count(ctx context.Context) (int, error) {
	var n int
	err := ix.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cities`).Scan(&n)
	return n, err
}

// Close releases the in-memory database.
func (ix *Index) Close() error { return ix.db.Close() }
