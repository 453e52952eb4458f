package engine

import "mindquest/internal/storage"

// Badge ids. Catalog order is a contract: when several badges unlock in the
// same award, the first in catalog order is the one surfaced as the single
// notification.
const (
	BadgeFirstQuest     = "first-quest"
	BadgeQuestNovice    = "quest-novice"
	BadgeQuestAdept     = "quest-adept"
	BadgePerfectDay     = "perfect-day"
	BadgeWeekendWarrior = "weekend-warrior"
)

// Badge is a one-way achievement flag unlocked by a predicate over cumulative
// profile state.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// BadgeContext is what eligibility predicates see: the profile after the
// XP/level update, the quest just completed, and the daily-focus tally.
type BadgeContext struct {
	Profile storage.Profile
	Quest   storage.Quest
	Focus   storage.FocusProgress
}

var catalog = []Badge{
	{ID: BadgeFirstQuest, Name: "First Quest!", Description: "You completed your very first quest. The journey begins!", Icon: "🌅"},
	{ID: BadgeQuestNovice, Name: "Quest Novice", Description: "Completed 5 quests. You're getting the hang of this!", Icon: "🎖️"},
	{ID: BadgeQuestAdept, Name: "Quest Adept", Description: "Completed 15 quests. A true adventurer!", Icon: "🏅"},
	{ID: BadgePerfectDay, Name: "Perfect Day", Description: "Completed all 3 daily focus quests. Amazing focus!", Icon: "⚡"},
	{ID: BadgeWeekendWarrior, Name: "Weekend Warrior", Description: "Completed a special weekend quest.", Icon: "📅"},
}

// Catalog returns the badge definitions in their fixed order.
func Catalog() []Badge {
	return append([]Badge(nil), catalog...)
}

// BadgeByID looks a badge up in the catalog.
func BadgeByID(id string) *Badge {
	for i := range catalog {
		if catalog[i].ID == id {
			b := catalog[i]
			return &b
		}
	}
	return nil
}

// EvaluateBadges walks the catalog in order, skips badges the profile already
// owns, and returns the ones that newly qualify, preserving catalog order.
// Predicates are pure; they never touch the registry or profile.
func EvaluateBadges(bctx BadgeContext) []Badge {
	var earned []Badge
	for _, b := range catalog {
		if bctx.Profile.HasBadge(b.ID) {
			continue
		}
		if badgeEarned(b.ID, bctx) {
			earned = append(earned, b)
		}
	}
	return earned
}

func badgeEarned(id string, bctx BadgeContext) bool {
	completed := len(bctx.Profile.CompletedQuests)
	switch id {
	case BadgeFirstQuest:
		return completed == 1
	case BadgeQuestNovice:
		return completed == 5
	case BadgeQuestAdept:
		return completed == 15
	case BadgePerfectDay:
		return bctx.Focus.Total > 0 && bctx.Focus.Done == bctx.Focus.Total
	case BadgeWeekendWarrior:
		return bctx.Quest.IsWeekend
	}
	return false
}
