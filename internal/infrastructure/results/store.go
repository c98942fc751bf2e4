// Package results хранит итоги завершенных прогонов в SQLite,
// чтобы сравнивать стратегии между собой и следить за регрессиями уровней.
package results

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store - обертка над базой результатов.
type Store struct {
	db *sql.DB
}

// Run - итог одного завершенного прогона (batch, интерактив или реплей).
type Run struct {
	ID           string    `json:"id"`
	ScenarioID   int       `json:"scenarioId"`
	ScenarioName string    `json:"scenarioName"`
	Strategy     string    `json:"strategy"`
	Mode         string    `json:"mode"` // "batch", "interactive", "replay"
	Won          bool      `json:"won"`
	Outcome      string    `json:"outcome"`
	Turns        int       `json:"turns"`
	Score        int       `json:"score"`
	Fault        string    `json:"fault,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// New открывает (и при необходимости создает) базу по указанному пути.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return store, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		scenario_id INTEGER NOT NULL,
		scenario_name TEXT NOT NULL,
		strategy TEXT NOT NULL,
		mode TEXT NOT NULL,
		won INTEGER NOT NULL DEFAULT 0,
		outcome TEXT NOT NULL,
		turns INTEGER NOT NULL DEFAULT 0,
		score INTEGER NOT NULL DEFAULT 0,
		fault TEXT,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_runs_scenario ON runs(scenario_id);
	CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs(strategy);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close закрывает соединение с базой.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveRun записывает итог прогона и возвращает назначенный ID.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO runs (id, scenario_id, scenario_name, strategy, mode, won, outcome, turns, score, fault, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.ScenarioID, run.ScenarioName, run.Strategy, run.Mode,
		boolToInt(run.Won), run.Outcome, run.Turns, run.Score, run.Fault, run.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns возвращает последние прогоны, свежие первыми.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
		SELECT id, scenario_id, scenario_name, strategy, mode, won, outcome, turns, score, COALESCE(fault, ''), created_at
		FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var won int
		if err := rows.Scan(&r.ID, &r.ScenarioID, &r.ScenarioName, &r.Strategy, &r.Mode,
			&won, &r.Outcome, &r.Turns, &r.Score, &r.Fault, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Won = won != 0
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
