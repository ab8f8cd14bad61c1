package report

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"compilebench/internal/benchmark"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// RunRecord summarizes one persisted harness invocation.
type RunRecord struct {
	ID         int64     `json:"id"`
	Profile    string    `json:"profile"`
	Benchmarks int       `json:"benchmarks"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryStore keeps a local record of past runs so regressions can be
// tracked across invocations. Single writer; the harness owns the file for
// the duration of a run.
type HistoryStore struct {
	db *sql.DB
}

// OpenHistory opens (and if needed creates) the history database at path.
func OpenHistory(path string) (*HistoryStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &HistoryStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

func (s *HistoryStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		profile TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		candidate_built INTEGER NOT NULL,
		reference_built INTEGER NOT NULL,
		candidate_min_ms REAL NOT NULL,
		reference_min_ms REAL NOT NULL,
		ratio REAL NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// SaveRun appends one invocation's results to the history.
func (s *HistoryStore) SaveRun(profile string, results []benchmark.Result) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO runs (profile) VALUES (?)`, profile)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read run id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO results
		(run_id, name, category, candidate_built, reference_built, candidate_min_ms, reference_min_ms, ratio)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.Exec(runID, r.Name, r.Category,
			boolToInt(r.CandidateBuilt), boolToInt(r.ReferenceBuilt),
			r.CandidateMin(), r.ReferenceMin(), r.Ratio()); err != nil {
			return 0, fmt.Errorf("failed to insert result %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *HistoryStore) ListRuns(limit int) ([]RunRecord, error) {
	rows, err := s.db.Query(`
		SELECT r.id, r.profile, r.created_at, COUNT(res.id)
		FROM runs r
		LEFT JOIN results res ON res.run_id = r.id
		GROUP BY r.id
		ORDER BY r.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var rec RunRecord
		if err := rows.Scan(&rec.ID, &rec.Profile, &rec.CreatedAt, &rec.Benchmarks); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close releases the underlying database handle.
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
