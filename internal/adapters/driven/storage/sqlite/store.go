package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Prasaanth02/AWS-Game-Challenge/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/domain"
	"github.com/Prasaanth02/AWS-Game-Challenge/internal/core/ports/driven"
)

// Store is an SQLite-backed storage for finished rounds.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.twentyfour/data/sessions.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".twentyfour", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "sessions.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SessionStore returns a SessionStore interface backed by this store.
func (s *Store) SessionStore() driven.SessionStore {
	return &sessionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Session Store ====================

// sessionStore implements driven.SessionStore.
type sessionStore struct {
	store *Store
}

var _ driven.SessionStore = (*sessionStore)(nil)

// Save stores or updates a finished round.
func (s *sessionStore) Save(ctx context.Context, record domain.GameRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}

	operandsJSON, err := json.Marshal(record.Operands)
	if err != nil {
		return fmt.Errorf("marshalling operands: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO game_records (id, operands, difficulty, solved, duration_ms, played_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			operands = excluded.operands,
			difficulty = excluded.difficulty,
			solved = excluded.solved,
			duration_ms = excluded.duration_ms,
			played_at = excluded.played_at
	`, record.ID, string(operandsJSON), string(record.Difficulty), record.Solved,
		record.Duration.Milliseconds(), record.PlayedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving game record: %w", err)
	}
	return nil
}

// List returns all stored records, most recent first.
func (s *sessionStore) List(ctx context.Context) ([]domain.GameRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, operands, difficulty, solved, duration_ms, played_at
		FROM game_records
		ORDER BY played_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying game records: %w", err)
	}
	defer rows.Close()

	var records []domain.GameRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanGameRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating game records: %w", err)
	}

	return records, nil
}

// Stats returns all-time aggregates across every stored record.
func (s *sessionStore) Stats(ctx context.Context) (domain.SessionStats, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(solved), 0),
			COALESCE(SUM(CASE WHEN solved = 1 THEN duration_ms ELSE 0 END), 0),
			COALESCE(MIN(CASE WHEN solved = 1 THEN duration_ms END), 0)
		FROM game_records
	`)

	stats, err := scanStats(row)
	if err != nil {
		return domain.SessionStats{}, fmt.Errorf("scanning session stats: %w", err)
	}
	return stats, nil
}

// StatsByDifficulty returns aggregates grouped by difficulty.
func (s *sessionStore) StatsByDifficulty(ctx context.Context) (map[domain.Difficulty]domain.SessionStats, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT
			difficulty,
			COUNT(*),
			COALESCE(SUM(solved), 0),
			COALESCE(SUM(CASE WHEN solved = 1 THEN duration_ms ELSE 0 END), 0),
			COALESCE(MIN(CASE WHEN solved = 1 THEN duration_ms END), 0)
		FROM game_records
		GROUP BY difficulty
	`)
	if err != nil {
		return nil, fmt.Errorf("querying session stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[domain.Difficulty]domain.SessionStats)
	for rows.Next() {
		var difficulty string
		var entry domain.SessionStats
		var solveTimeMS, bestTimeMS int64
		if err := rows.Scan(&difficulty, &entry.GamesPlayed, &entry.GamesSolved,
			&solveTimeMS, &bestTimeMS); err != nil {
			return nil, fmt.Errorf("scanning session stats: %w", err)
		}
		entry.TotalSolveTime = time.Duration(solveTimeMS) * time.Millisecond
		entry.BestTime = time.Duration(bestTimeMS) * time.Millisecond
		stats[domain.Difficulty(difficulty)] = entry
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating session stats: %w", err)
	}

	return stats, nil
}

// ==================== Helper Functions ====================

// scanGameRecord scans a game record from *sql.Rows.
func scanGameRecord(rows *sql.Rows) (*domain.GameRecord, error) {
	var record domain.GameRecord
	var operandsJSON, difficulty string
	var durationMS int64
	var playedAt sql.NullTime

	if err := rows.Scan(&record.ID, &operandsJSON, &difficulty, &record.Solved,
		&durationMS, &playedAt); err != nil {
		return nil, fmt.Errorf("scanning game record: %w", err)
	}

	if err := json.Unmarshal([]byte(operandsJSON), &record.Operands); err != nil {
		return nil, fmt.Errorf("unmarshaling operands: %w", err)
	}

	record.Difficulty = domain.Difficulty(difficulty)
	record.Duration = time.Duration(durationMS) * time.Millisecond
	if playedAt.Valid {
		record.PlayedAt = playedAt.Time
	}

	return &record, nil
}

// scanStats scans aggregate columns from a single row.
func scanStats(row *sql.Row) (domain.SessionStats, error) {
	var stats domain.SessionStats
	var solveTimeMS, bestTimeMS int64
	if err := row.Scan(&stats.GamesPlayed, &stats.GamesSolved, &solveTimeMS, &bestTimeMS); err != nil {
		return domain.SessionStats{}, err
	}
	stats.TotalSolveTime = time.Duration(solveTimeMS) * time.Millisecond
	stats.BestTime = time.Duration(bestTimeMS) * time.Millisecond
	return stats, nil
}
