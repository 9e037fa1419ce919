// Package results stores the scalar outputs of a driver run
package results

import (
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/notargets/gomate/driver"
)

// SQLiteRecorder writes one row per step, point and scalar property. Every
// recorder opened on a file starts a new run in it.
type SQLiteRecorder struct {
	db    *sql.DB
	mu    sync.Mutex
	RunID int64
}

func NewSQLiteRecorder(dbPath string) (rec *SQLiteRecorder, err error) {
	var db *sql.DB
	if db, err = sql.Open("sqlite", dbPath); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
			rec = nil
		}
	}()
	if err = db.Ping(); err != nil {
		return
	}
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return
	}
	if _, err = db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return
	}
	rec = &SQLiteRecorder{db: db}
	if err = rec.initSchema(); err != nil {
		return
	}
	var result sql.Result
	if result, err = db.Exec("INSERT INTO runs (created_at) VALUES (?)", time.Now().UTC()); err != nil {
		return
	}
	rec.RunID, err = result.LastInsertId()
	return
}

func (s *SQLiteRecorder) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT DEFAULT '',
		model TEXT DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS properties (
		run_id INTEGER NOT NULL,
		step INTEGER NOT NULL,
		time REAL NOT NULL,
		point INTEGER NOT NULL,
		name TEXT NOT NULL,
		value REAL NOT NULL,
		PRIMARY KEY (run_id, step, point, name)
	);

	CREATE INDEX IF NOT EXISTS idx_properties_name ON properties(run_id, name, point);
	`
	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Describe labels the current run
func (s *SQLiteRecorder) Describe(title, model string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec("UPDATE runs SET title = ?, model = ? WHERE id = ?", title, model, s.RunID)
	return err
}

func (s *SQLiteRecorder) Record(r driver.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare("INSERT INTO properties (run_id, step, time, point, name, value) VALUES (?, ?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	names := make([]string, 0, len(r.Scalars))
	for name := range r.Scalars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err = stmt.Exec(s.RunID, r.Step, r.Time, r.Point, name, r.Scalars[name]); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording %s at step %d, point %d: %w", name, r.Step, r.Point, err)
		}
	}
	return tx.Commit()
}

// Series returns the values of a property at a point in step order
func (s *SQLiteRecorder) Series(point int, name string) (vals []float64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.db.Query("SELECT value FROM properties WHERE run_id = ? AND point = ? AND name = ? ORDER BY step",
		s.RunID, point, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var val float64
		if err = rows.Scan(&val); err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	return vals, rows.Err()
}

// Count returns the number of rows of the current run
func (s *SQLiteRecorder) Count() (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.db.QueryRow("SELECT COUNT(*) FROM properties WHERE run_id = ?", s.RunID).Scan(&n)
	return
}

func (s *SQLiteRecorder) Close() error {
	return s.db.Close()
}
