package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"gtp/internal/domain"
)

// HistorySink appends one row per finished run to a MySQL table, so runs
// can be compared over time. It is optional: an empty DSN disables it, and
// a failing append is a warning for the caller, never a run failure.
type HistorySink struct {
	dsn string
}

// NewHistorySink creates a sink writing to the database behind dsn.
// Returns nil when dsn is empty (history disabled).
func NewHistorySink(dsn string) *HistorySink {
	if dsn == "" {
		return nil
	}
	return &HistorySink{dsn: dsn}
}

// Append records one finished run
func (h *HistorySink) Append(output *domain.RunOutput) error {
	db, err := sql.Open("mysql", h.dsn)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("ping history database: %w", err)
	}
	if err := h.ensureSchema(db); err != nil {
		return err
	}

	report, err := json.Marshal(output)
	if err != nil {
		return fmt.Errorf("marshal run output: %w", err)
	}

	_, err = db.Exec(`INSERT INTO run_history
		(ran_at, total_tests, passed_tests, failed_tests, skipped_tests, unknown_requested, duration_seconds, workers, report)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		output.Meta.Timestamp,
		output.Meta.TotalTests,
		output.Meta.PassedTests,
		output.Meta.FailedTests,
		output.Meta.SkippedTests,
		output.Meta.UnknownRequested,
		output.Meta.DurationSeconds,
		output.Meta.Workers,
		string(report),
	)
	if err != nil {
		return fmt.Errorf("insert run history: %w", err)
	}
	return nil
}

// ensureSchema creates the history table if it does not exist yet
func (h *HistorySink) ensureSchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS run_history (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		ran_at VARCHAR(64) NOT NULL,
		total_tests INT NOT NULL,
		passed_tests INT NOT NULL,
		failed_tests INT NOT NULL,
		skipped_tests INT NOT NULL,
		unknown_requested INT NOT NULL,
		duration_seconds DOUBLE NOT NULL,
		workers INT NOT NULL,
		report MEDIUMTEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("create run_history table: %w", err)
	}
	return nil
}
