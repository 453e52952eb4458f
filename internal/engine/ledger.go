package engine

import (
	"context"
	"time"

	"mindquest/internal/storage"
)

// WeeklyProgress returns the per-day completion tally, Mon..Sun. This is the
// parent dashboard's data source.
func (s *Service) WeeklyProgress(ctx context.Context) ([]storage.DailyProgress, error) {
	return s.progress.ListWeek(ctx)
}

// dayKey maps a time to the ledger's day-of-week key.
func dayKey(t time.Time) string {
	return t.Format("Mon")
}
