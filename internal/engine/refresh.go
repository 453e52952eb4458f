package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mindquest/internal/storage"
)

// RefreshQuests asks the generator for a fresh batch and swaps out the pending
// quests. Completed quests are never removed. A failed or empty generation
// leaves the registry untouched; the error is user-visible but not fatal to
// any state.
func (s *Service) RefreshQuests(ctx context.Context) ([]storage.Quest, error) {
	if s.generator == nil {
		return nil, ErrAINotConfigured
	}

	pending, err := s.quests.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(pending))
	for _, q := range pending {
		titles = append(titles, q.Title)
	}

	weekend := isWeekend(s.now())
	drafts, err := s.generator.Generate(ctx, titles, weekend)
	if err != nil {
		return nil, fmt.Errorf("generate quests: %w", err)
	}
	if len(drafts) == 0 {
		return nil, nil
	}

	inserts := make([]storage.QuestInsert, 0, len(drafts))
	for _, d := range drafts {
		inserts = append(inserts, storage.QuestInsert{
			ID:          "gen-" + uuid.NewString(),
			Title:       d.Title,
			Description: d.Description,
			XP:          d.XP,
			// Generated quests always require a report and carry the weekend
			// flag they were generated under.
			RequiresInput: true,
			IsWeekend:     weekend,
		})
	}
	if err := s.quests.ReplacePending(ctx, inserts); err != nil {
		return nil, err
	}
	return s.quests.ListPending(ctx)
}

func isWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return true
	}
	return false
}
