// Package history provides SQLite-based run recording. Finished runs, their
// per-year metrics, and final actor outcomes land here for later inspection;
// nothing is ever loaded back into a simulation.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/greenhouse/internal/actors"
	"github.com/talgya/greenhouse/internal/school"
)

// Recorder wraps a SQLite connection for run history.
type Recorder struct {
	conn *sqlx.DB
}

// Open opens or creates the history database at the given path.
func Open(path string) (*Recorder, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	r := &Recorder{conn: conn}
	if err := r.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate history db: %w", err)
	}

	return r, nil
}

// Close closes the database connection.
func (r *Recorder) Close() error {
	return r.conn.Close()
}

func (r *Recorder) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		scenario    TEXT NOT NULL,
		school      TEXT NOT NULL,
		seed        INTEGER NOT NULL,
		years       INTEGER NOT NULL,
		started_at  TIMESTAMP NOT NULL,
		finished_at TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS metrics (
		run_id TEXT NOT NULL REFERENCES runs(id),
		year   INTEGER NOT NULL,
		name   TEXT NOT NULL,
		value  REAL NOT NULL,
		PRIMARY KEY (run_id, year, name)
	);

	CREATE TABLE IF NOT EXISTS actor_outcomes (
		run_id                  TEXT NOT NULL REFERENCES runs(id),
		name                    TEXT NOT NULL,
		role                    TEXT NOT NULL,
		os_version              TEXT NOT NULL,
		adaptability            REAL NOT NULL,
		burned_out              INTEGER NOT NULL,
		left_system             INTEGER NOT NULL,
		rebooted_outside        INTEGER NOT NULL,
		casualty_of_system      INTEGER NOT NULL,
		opportunity_choice      TEXT NOT NULL,
		opportunity_cost        REAL NOT NULL,
		future_hope_probability REAL NOT NULL,
		is_future_hope          INTEGER NOT NULL,
		PRIMARY KEY (run_id, name)
	);

	CREATE INDEX IF NOT EXISTS idx_metrics_run ON metrics(run_id);
	CREATE INDEX IF NOT EXISTS idx_outcomes_run ON actor_outcomes(run_id);
	`
	_, err := r.conn.Exec(schema)
	return err
}

// BeginRun registers a run and returns its generated ID.
func (r *Recorder) BeginRun(scenario, schoolName string, seed int64, years int) (string, error) {
	id := uuid.NewString()
	_, err := r.conn.Exec(
		"INSERT INTO runs (id, scenario, school, seed, years, started_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, scenario, schoolName, seed, years, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// RecordYear writes every registry metric for one simulated year.
func (r *Recorder) RecordYear(runID string, e *school.Ecosystem) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(
		"INSERT INTO metrics (run_id, year, name, value) VALUES (?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, name := range school.MetricNames() {
		fn, _ := school.Metric(name)
		if _, err := stmt.Exec(runID, e.YearsSimulated, name, fn(e)); err != nil {
			return fmt.Errorf("insert metric %s: %w", name, err)
		}
	}

	return tx.Commit()
}

// RecordOutcomes writes the final per-actor outcome rows.
func (r *Recorder) RecordOutcomes(runID string, roster []*actors.Actor) error {
	tx, err := r.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Preparex(`INSERT INTO actor_outcomes
		(run_id, name, role, os_version, adaptability,
		 burned_out, left_system, rebooted_outside, casualty_of_system,
		 opportunity_choice, opportunity_cost, future_hope_probability, is_future_hope)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range roster {
		choice := a.OpportunityChoice
		if choice == "" {
			choice = actors.ChoiceNone
		}
		_, err := stmt.Exec(
			runID, a.Name, string(a.Role), a.OSVersion, a.Adaptability,
			boolInt(a.BurnedOut), boolInt(a.HasLeftSystem),
			boolInt(a.RebootedOutside), boolInt(a.CasualtyOfSystem),
			string(choice), a.OpportunityCost,
			a.FutureHopeProbability, boolInt(a.IsFutureHope),
		)
		if err != nil {
			return fmt.Errorf("insert outcome %s: %w", a.Name, err)
		}
	}

	return tx.Commit()
}

// FinishRun stamps the run's completion time.
func (r *Recorder) FinishRun(runID string) error {
	_, err := r.conn.Exec(
		"UPDATE runs SET finished_at = ? WHERE id = ?",
		time.Now().UTC(), runID,
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// RunRow is one row of the runs table.
type RunRow struct {
	ID         string     `db:"id"`
	Scenario   string     `db:"scenario"`
	School     string     `db:"school"`
	Seed       int64      `db:"seed"`
	Years      int        `db:"years"`
	StartedAt  time.Time  `db:"started_at"`
	FinishedAt *time.Time `db:"finished_at"`
}

// RecentRuns returns the most recently started N runs.
func (r *Recorder) RecentRuns(limit int) ([]RunRow, error) {
	var rows []RunRow
	err := r.conn.Select(&rows,
		"SELECT id, scenario, school, seed, years, started_at, finished_at FROM runs ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	return rows, err
}

// MetricCount returns how many metric rows a run has recorded.
func (r *Recorder) MetricCount(runID string) (int, error) {
	var n int
	err := r.conn.Get(&n, "SELECT COUNT(*) FROM metrics WHERE run_id = ?", runID)
	return n, err
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
