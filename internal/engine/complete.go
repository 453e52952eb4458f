package engine

import (
	"context"
	"fmt"

	"mindquest/internal/storage"
)

// CompleteQuest is the direct completion path for quests that do not require a
// report. The conditional MarkCompleted is the single guard against double
// awards: it runs synchronously, before anything else, so a second call (or a
// double-click upstream) finds the quest already done and awards nothing.
func (s *Service) CompleteQuest(ctx context.Context, id string) (*CompleteResult, error) {
	q, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("complete %q: %w", id, ErrQuestNotFound)
	}
	if q.RequiresInput {
		return nil, fmt.Errorf("quest %q needs a report; submit one instead", id)
	}

	ok, err := s.quests.MarkCompleted(ctx, id, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("complete %q: %w", id, ErrAlreadyCompleted)
	}

	q.IsCompleted = true
	return s.award(ctx, *q, q.XP)
}

// award updates the profile for a quest that has already been marked completed
// in the registry, records the ledger, and reports newly unlocked badges.
func (s *Service) award(ctx context.Context, completed storage.Quest, xp int) (*CompleteResult, error) {
	if xp < 0 {
		xp = 0
	}
	p, err := s.getProfile(ctx)
	if err != nil {
		return nil, err
	}
	levelBefore := p.Level

	// Focus tally is read after the registry update so perfect-day sees the
	// quest that was just completed.
	focus, err := s.quests.FocusProgress(ctx)
	if err != nil {
		return nil, err
	}

	res := AwardXP(*p, xp, completed, focus)
	if err := s.profiles.Update(ctx, &res.Profile); err != nil {
		return nil, err
	}
	if err := s.progress.IncrementDay(ctx, dayKey(s.now())); err != nil {
		return nil, err
	}

	out := &CompleteResult{
		QuestID:     completed.ID,
		XPAwarded:   xp,
		LevelBefore: levelBefore,
		LevelAfter:  res.Profile.Level,
		LevelUp:     res.Profile.Level > levelBefore,
		NewBadges:   res.NewBadges,
	}
	if len(res.NewBadges) > 0 {
		b := res.NewBadges[0]
		out.Notify = &b
	}
	return out, nil
}
