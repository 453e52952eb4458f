package engine

import (
	"math"

	"mindquest/internal/storage"
)

const (
	// InitialXPToNextLevel is the first level threshold.
	InitialXPToNextLevel = 100

	// levelGrowthFactor scales the threshold on every level-up, floored to an
	// integer: next = floor(threshold * 1.5).
	levelGrowthFactor = 1.5
)

// AwardResult is the outcome of a pure progression update.
type AwardResult struct {
	Profile   storage.Profile
	NewBadges []Badge
}

// AwardXP applies an XP award for a completed quest to a profile and evaluates
// badge eligibility against the post-update state. It is pure: the input
// profile is not mutated.
//
// The level-up runs as a loop, not a single branch: one large award (the
// evaluator can grant well above a threshold) may cross several levels in a
// single call. A negative award is clamped to zero rather than rejected; the
// evaluator is not trusted to emit well-formed numbers.
func AwardXP(profile storage.Profile, xpAwarded int, completed storage.Quest, focus storage.FocusProgress) AwardResult {
	if xpAwarded < 0 {
		xpAwarded = 0
	}

	p := cloneProfile(profile)
	p.CompletedQuests = append(p.CompletedQuests, completed.ID)
	p.XP += xpAwarded

	if p.XPToNextLevel <= 0 {
		p.XPToNextLevel = InitialXPToNextLevel
	}
	for p.XP >= p.XPToNextLevel {
		p.Level++
		p.XP -= p.XPToNextLevel
		p.XPToNextLevel = int(math.Floor(float64(p.XPToNextLevel) * levelGrowthFactor))
	}

	newBadges := EvaluateBadges(BadgeContext{
		Profile: p,
		Quest:   completed,
		Focus:   focus,
	})
	for _, b := range newBadges {
		p.Badges = append(p.Badges, b.ID)
	}

	return AwardResult{Profile: p, NewBadges: newBadges}
}

// TotalXPEstimate approximates lifetime XP as xp + (level-1)*100. The real
// per-level threshold grows, so this is a display figure, not an invariant.
func TotalXPEstimate(p storage.Profile) int {
	return p.XP + (p.Level-1)*InitialXPToNextLevel
}

func cloneProfile(p storage.Profile) storage.Profile {
	out := p
	out.CompletedQuests = append([]string(nil), p.CompletedQuests...)
	out.Badges = append([]string(nil), p.Badges...)
	return out
}
