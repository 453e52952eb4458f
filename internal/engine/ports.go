package engine

import (
	"context"

	"mindquest/internal/storage"
)

// Verdict is an evaluator's judgement of a quest report. XPAwarded may be
// partial credit, up to the quest's declared maximum.
type Verdict struct {
	Completed bool
	Feedback  string
	XPAwarded int
}

// QuestDraft is a generated quest before it gets an id and enters the registry.
type QuestDraft struct {
	Title       string
	Description string
	XP          int
}

// Evaluator judges a free-text quest report. Implementations may suspend for an
// unbounded but finite duration; a failure must be an error, never a panic.
type Evaluator interface {
	Evaluate(ctx context.Context, quest storage.Quest, report string) (Verdict, error)
}

// Generator produces fresh quest drafts, avoiding the given titles.
type Generator interface {
	Generate(ctx context.Context, existingTitles []string, weekend bool) ([]QuestDraft, error)
}
