package storage

import (
	"context"
	"database/sql"
	"fmt"
)

type ProgressRepo struct {
	db *sql.DB
}

func NewProgressRepo(db *sql.DB) *ProgressRepo {
	return &ProgressRepo{db: db}
}

// ListWeek returns the per-day tally in Mon..Sun order.
func (r *ProgressRepo) ListWeek(ctx context.Context) ([]DailyProgress, error) {
	byDay := map[string]int{}
	rows, err := r.db.QueryContext(ctx, `SELECT date, completed FROM daily_progress`)
	if err != nil {
		return nil, fmt.Errorf("progress list: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d DailyProgress
		if err := rows.Scan(&d.Date, &d.Completed); err != nil {
			return nil, fmt.Errorf("progress scan: %w", err)
		}
		byDay[d.Date] = d.Completed
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("progress rows: %w", err)
	}

	out := make([]DailyProgress, 0, len(WeekDays))
	for _, day := range WeekDays {
		out = append(out, DailyProgress{Date: day, Completed: byDay[day]})
	}
	return out, nil
}

// IncrementDay bumps the counter for the given day key. An untracked key is a
// silent no-op: the data point is dropped, not an error.
func (r *ProgressRepo) IncrementDay(ctx context.Context, dayKey string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE daily_progress SET completed = completed + 1 WHERE date = ?
	`, dayKey)
	if err != nil {
		return fmt.Errorf("progress increment: %w", err)
	}
	return nil
}
