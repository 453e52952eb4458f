package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS profile (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			level INTEGER DEFAULT 1,
			xp INTEGER DEFAULT 0,
			xp_to_next_level INTEGER DEFAULT 100,
			completed_quests TEXT DEFAULT '[]',
			badges TEXT DEFAULT '[]'
		);`,
		`CREATE TABLE IF NOT EXISTS quests (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			xp INTEGER NOT NULL,

			is_completed INTEGER DEFAULT 0,
			requires_input INTEGER DEFAULT 0,
			is_weekend INTEGER DEFAULT 0,
			is_daily_focus INTEGER DEFAULT 0,

			user_input TEXT,
			feedback TEXT,
			is_evaluating INTEGER DEFAULT 0,

			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			completed_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS daily_progress (
			date TEXT PRIMARY KEY,
			completed INTEGER DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quests_is_completed ON quests(is_completed);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	return seed(ctx, db)
}

// seed inserts the starter daily-focus quests and the weekly ledger rows.
// INSERT OR IGNORE keeps reruns harmless.
func seed(ctx context.Context, db *sql.DB) error {
	type seedQuest struct {
		id, title, description string
		xp                     int
	}
	quests := []seedQuest{
		{"quest-1", "Morning Gear Check", "Before leaving for school, check your bag for all your books, your lunch, and your water bottle.", 25},
		{"quest-2", "The Unforgettable Belt", "After physical activities, make sure you put your belt back on before leaving the changing room.", 30},
		{"quest-3", "End-of-Day Sweep", "At the end of the school day, do a quick scan of your desk and chair to make sure you haven't left anything behind.", 25},
	}
	for _, q := range quests {
		_, err := db.ExecContext(ctx, `
			INSERT OR IGNORE INTO quests (id, title, description, xp, is_daily_focus)
			VALUES (?, ?, ?, ?, 1)
		`, q.id, q.title, q.description, q.xp)
		if err != nil {
			return fmt.Errorf("seed quests: %w", err)
		}
	}

	for _, day := range WeekDays {
		if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO daily_progress (date, completed) VALUES (?, 0)`, day); err != nil {
			return fmt.Errorf("seed daily progress: %w", err)
		}
	}
	return nil
}

// WeekDays lists the ledger day keys in display order.
var WeekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
