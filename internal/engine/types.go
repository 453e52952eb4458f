package engine

// CompleteResult reports the outcome of a single XP award.
type CompleteResult struct {
	QuestID     string
	XPAwarded   int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	// NewBadges are the badges unlocked by this completion, in catalog order.
	NewBadges []Badge
	// Notify is the single badge surfaced as a notification (first of NewBadges).
	Notify *Badge
}

// SubmitResult reports the outcome of an AI-evaluated submission.
type SubmitResult struct {
	QuestID   string
	Completed bool
	Feedback  string
	XPAwarded int
	// Stale is set when the quest was completed through another path while the
	// evaluation was in flight; the verdict was discarded without an award.
	Stale bool
	// Award is non-nil only when XP was actually granted.
	Award *CompleteResult
}
