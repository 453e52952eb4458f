package engine

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"mindquest/internal/storage"
)

const defaultQuestXP = 25

type AddQuestInput struct {
	Title         string
	Description   string
	XP            int
	RequiresInput bool
	IsWeekend     bool
	IsDailyFocus  bool
}

// AddQuest inserts a parent-authored quest into the registry.
func (s *Service) AddQuest(ctx context.Context, in AddQuestInput) (*storage.Quest, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	xp := in.XP
	if xp <= 0 {
		xp = defaultQuestXP
	}

	id := "quest-" + uuid.NewString()
	err = s.quests.Insert(ctx, storage.QuestInsert{
		ID:            id,
		Title:         title,
		Description:   strings.TrimSpace(in.Description),
		XP:            xp,
		RequiresInput: in.RequiresInput,
		IsWeekend:     in.IsWeekend,
		IsDailyFocus:  in.IsDailyFocus,
	})
	if err != nil {
		return nil, err
	}
	return s.quests.Get(ctx, id)
}
