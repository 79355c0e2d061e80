// internal/results/results.go
//
// SQLite persistence for benchmark runs and finished games.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout,
//     foreign keys), creating parent directories for relative DSNs.
//   - Applying the embedded schema (idempotent).
//   - Recording benchmark reports (run summary + per-secret episodes) and
//     finished games, and listing recent runs for comparison.
//
// Note: this package assumes SQLite but can be adapted for other backends.

package results

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/robalobadob/wordle-solver/internal/game"
	"github.com/robalobadob/wordle-solver/internal/solver"
)

// schema is applied on Open; every statement is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS benchmark_runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    strategy    TEXT NOT NULL,
    pool        TEXT NOT NULL,
    vocab_size  INTEGER NOT NULL,
    first_guess TEXT NOT NULL,
    average     REAL NOT NULL,
    failures    INTEGER NOT NULL,
    not_won     INTEGER NOT NULL,
    worst_secret TEXT NOT NULL,
    worst_rounds INTEGER NOT NULL,
    created_at  TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS benchmark_episodes (
    run_id  INTEGER NOT NULL REFERENCES benchmark_runs(id) ON DELETE CASCADE,
    secret  TEXT NOT NULL,
    rounds  INTEGER NOT NULL,
    status  TEXT NOT NULL,
    PRIMARY KEY (run_id, secret)
);
CREATE TABLE IF NOT EXISTS games (
    id          TEXT PRIMARY KEY,
    mode        TEXT NOT NULL,
    secret      TEXT NOT NULL,
    rounds      INTEGER NOT NULL,
    status      TEXT NOT NULL,
    finished_at TEXT NOT NULL
);
`

// Open opens (and creates if missing) the SQLite database at dsn and
// applies the schema.
//
//   - Ensures the parent directory exists for relative DSNs (e.g. ./data/results.db).
//   - Configures busy timeout and WAL journaling mode.
//   - Enforces foreign keys.
func Open(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return db, nil
}

// SaveBenchmark records a finished benchmark run and its episodes in one
// transaction. Returns the new run ID.
func SaveBenchmark(ctx context.Context, db *sql.DB, r *solver.BenchmarkReport) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
        INSERT INTO benchmark_runs
            (strategy, pool, vocab_size, first_guess, average, failures, not_won,
             worst_secret, worst_rounds, created_at)
        VALUES (?,?,?,?,?,?,?,?,?,?)`,
		r.Strategy, string(r.Pool), r.VocabSize, r.FirstGuess, r.Average,
		r.Failures, r.NotWon, r.WorstSecret, r.WorstRounds,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, `
        INSERT INTO benchmark_episodes (run_id, secret, rounds, status)
        VALUES (?,?,?,?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for _, ep := range r.Episodes {
		if _, err := stmt.ExecContext(ctx, runID, ep.Secret, ep.Rounds, string(ep.Status)); err != nil {
			return 0, fmt.Errorf("insert episode %s: %w", ep.Secret, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// RecordGame stores a finished game (play or serve mode).
// Unfinished games are skipped: session state is not persisted.
func RecordGame(ctx context.Context, db *sql.DB, g *game.Game, mode string) error {
	if !g.Finished {
		return nil
	}
	_, err := db.ExecContext(ctx, `
        INSERT OR REPLACE INTO games (id, mode, secret, rounds, status, finished_at)
        VALUES (?,?,?,?,?,?)`,
		g.ID, mode, g.Secret, len(g.History), g.State(),
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// RunSummary is one row of the benchmark_runs table.
type RunSummary struct {
	ID          int64   `json:"id"`
	Strategy    string  `json:"strategy"`
	Pool        string  `json:"pool"`
	VocabSize   int     `json:"vocabSize"`
	FirstGuess  string  `json:"firstGuess"`
	Average     float64 `json:"average"`
	Failures    int     `json:"failures"`
	NotWon      int     `json:"notWon"`
	WorstSecret string  `json:"worstSecret"`
	WorstRounds int     `json:"worstRounds"`
	CreatedAt   string  `json:"createdAt"`
}

// RecentRuns lists the newest benchmark runs, most recent first.
func RecentRuns(ctx context.Context, db *sql.DB, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.QueryContext(ctx, `
        SELECT id, strategy, pool, vocab_size, first_guess, average, failures,
               not_won, worst_secret, worst_rounds, created_at
        FROM benchmark_runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		if err := rows.Scan(&r.ID, &r.Strategy, &r.Pool, &r.VocabSize, &r.FirstGuess,
			&r.Average, &r.Failures, &r.NotWon, &r.WorstSecret, &r.WorstRounds, &r.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
