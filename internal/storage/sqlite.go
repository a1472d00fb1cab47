// Package storage provides SQLite-based persistence for finished puzzle runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wirelight/internal/engine"
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one recorded puzzle attempt. It holds outcome statistics only;
// the board itself is not stored and a run cannot be resumed.
type Run struct {
	ID        string // uuid
	Topology  string
	Width     int
	Height    int
	Seed      int64
	Bias      string
	Source    string // script name, or "generate"
	Moves     int
	Ticks     int
	Lit       int
	Cells     int
	Solved    bool
	CreatedAt time.Time
}

// NewRun builds a run record from a puzzle snapshot.
func NewRun(snap engine.Snapshot, bias, source string) Run {
	return Run{
		Topology: snap.Topology,
		Width:    snap.Width,
		Height:   snap.Height,
		Seed:     snap.Seed,
		Bias:     bias,
		Source:   source,
		Moves:    snap.Moves,
		Ticks:    snap.Ticks,
		Lit:      snap.Lit,
		Cells:    snap.Cells,
		Solved:   snap.State == engine.StateSolved,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			topology TEXT NOT NULL,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			bias TEXT NOT NULL DEFAULT 'none',
			source TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			lit INTEGER NOT NULL DEFAULT 0,
			cells INTEGER NOT NULL,
			solved INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_topology ON runs(topology);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(topology, solved DESC, moves ASC, ticks ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a run and returns its generated ID.
func (s *Store) SaveRun(r Run) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, topology, width, height, seed, bias, source, moves, ticks, lit, cells, solved)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.Topology, r.Width, r.Height, r.Seed, r.Bias, r.Source,
		r.Moves, r.Ticks, r.Lit, r.Cells, r.Solved,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return id, nil
}

const runColumns = `id, topology, width, height, seed, bias, source, moves, ticks, lit, cells, solved, created_at`

// TopRuns retrieves the best N runs for a topology: solved first, then
// fewest moves, then fewest ticks. An empty topology means all of them.
func (s *Store) TopRuns(topology string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR topology = ?
		 ORDER BY solved DESC, moves ASC, ticks ASC, created_at ASC
		 LIMIT ?`,
		topology, topology, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RecentRuns retrieves the latest N runs across every topology.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	return scanRuns(rows)
}

// RunByID looks up a single run. Returns nil, nil when there is none.
func (s *Store) RunByID(id string) (*Run, error) {
	rows, err := s.db.Query(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

// BestRun returns the best solved run for a topology, or nil if none exist.
func (s *Store) BestRun(topology string) (*Run, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE topology = ? AND solved = 1
		 ORDER BY moves ASC, ticks ASC, created_at ASC
		 LIMIT 1`,
		topology,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	runs, err := scanRuns(rows)
	if err != nil || len(runs) == 0 {
		return nil, err
	}
	return &runs[0], nil
}

// ClearRuns deletes all runs for a topology, or every run when topology is empty.
func (s *Store) ClearRuns(topology string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR topology = ?", topology, topology)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Topology, &r.Width, &r.Height, &r.Seed, &r.Bias, &r.Source,
			&r.Moves, &r.Ticks, &r.Lit, &r.Cells, &r.Solved, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and the string form sqlite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// TopologyStats contains aggregated statistics for one topology.
type TopologyStats struct {
	Topology   string
	Runs       int
	Solved     int
	BestMoves  int // 0 when nothing was solved
	AvgMoves   float64
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for every topology that has runs.
func (s *Store) Stats() (map[string]*TopologyStats, error) {
	rows, err := s.db.Query(
		`SELECT topology, COUNT(*), SUM(solved),
		        COALESCE(MIN(CASE WHEN solved = 1 THEN moves END), 0),
		        AVG(moves), MAX(created_at)
		 FROM runs
		 GROUP BY topology`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*TopologyStats)
	for rows.Next() {
		var st TopologyStats
		var lastPlayed any
		if err := rows.Scan(&st.Topology, &st.Runs, &st.Solved, &st.BestMoves, &st.AvgMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Topology] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
