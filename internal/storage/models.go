package storage

import "time"

type Profile struct {
	Key           string
	Name          string
	Level         int
	XP            int
	XPToNextLevel int
	// CompletedQuests is append-only; its length is the authoritative
	// "total quests completed" counter.
	CompletedQuests []string
	Badges          []string
}

// HasBadge reports whether the profile already owns the badge id.
func (p *Profile) HasBadge(id string) bool {
	for _, b := range p.Badges {
		if b == id {
			return true
		}
	}
	return false
}

type Quest struct {
	ID            string
	Title         string
	Description   string
	XP            int
	IsCompleted   bool
	RequiresInput bool
	IsWeekend     bool
	IsDailyFocus  bool
	UserInput     *string
	Feedback      *string
	IsEvaluating  bool
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

type DailyProgress struct {
	Date      string // short weekday key: Mon..Sun
	Completed int
}

// FocusProgress is a snapshot of the daily-focus quest tally.
type FocusProgress struct {
	Done  int
	Total int
}
