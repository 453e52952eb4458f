package engine

import (
	"testing"

	"mindquest/internal/storage"
)

func freshProfile() storage.Profile {
	return storage.Profile{
		Key:           "test",
		Name:          "Tester",
		Level:         1,
		XP:            0,
		XPToNextLevel: InitialXPToNextLevel,
	}
}

func TestAwardXP_ExactThresholdLevelsUp(t *testing.T) {
	res := AwardXP(freshProfile(), 100, storage.Quest{ID: "q"}, storage.FocusProgress{})

	p := res.Profile
	if p.Level != 2 || p.XP != 0 || p.XPToNextLevel != 150 {
		t.Fatalf("profile=%d/%d/%d, want 2/0/150", p.Level, p.XP, p.XPToNextLevel)
	}
}

func TestAwardXP_BelowThresholdNoLevelUp(t *testing.T) {
	res := AwardXP(freshProfile(), 99, storage.Quest{ID: "q"}, storage.FocusProgress{})

	p := res.Profile
	if p.Level != 1 || p.XP != 99 || p.XPToNextLevel != 100 {
		t.Fatalf("profile=%d/%d/%d, want 1/99/100", p.Level, p.XP, p.XPToNextLevel)
	}
}

func TestAwardXP_ThresholdGrowthIsFloored(t *testing.T) {
	// 100 → 150 → 225 → 337 (floor of 337.5).
	p := freshProfile()
	for i, want := range []int{150, 225, 337} {
		res := AwardXP(p, p.XPToNextLevel, storage.Quest{ID: "q"}, storage.FocusProgress{})
		p = res.Profile
		if p.XPToNextLevel != want {
			t.Fatalf("step %d: threshold=%d, want %d", i, p.XPToNextLevel, want)
		}
	}
}

func TestAwardXP_NegativeAwardClampedToZero(t *testing.T) {
	res := AwardXP(freshProfile(), -50, storage.Quest{ID: "q"}, storage.FocusProgress{})

	p := res.Profile
	if p.XP != 0 || p.Level != 1 {
		t.Fatalf("profile=%d/%d, want level 1 with 0 XP", p.Level, p.XP)
	}
	if len(p.CompletedQuests) != 1 {
		t.Fatalf("completion not recorded for zero award")
	}
}

func TestAwardXP_DoesNotMutateInput(t *testing.T) {
	in := freshProfile()
	in.CompletedQuests = []string{"old"}
	in.Badges = []string{BadgeFirstQuest}

	_ = AwardXP(in, 500, storage.Quest{ID: "q"}, storage.FocusProgress{})

	if in.XP != 0 || in.Level != 1 || len(in.CompletedQuests) != 1 || len(in.Badges) != 1 {
		t.Fatalf("input profile mutated: %+v", in)
	}
}

func TestEvaluateBadges_CountMilestonesAreExact(t *testing.T) {
	p := freshProfile()
	p.CompletedQuests = []string{"a", "b", "c", "d", "e", "f"} // 6, past the novice milestone

	earned := EvaluateBadges(BadgeContext{Profile: p})
	if len(earned) != 0 {
		t.Fatalf("earned=%v, want none at count 6", earned)
	}

	p.CompletedQuests = p.CompletedQuests[:5]
	earned = EvaluateBadges(BadgeContext{Profile: p})
	if len(earned) != 1 || earned[0].ID != BadgeQuestNovice {
		t.Fatalf("earned=%v, want quest-novice at count 5", earned)
	}
}

func TestEvaluateBadges_OwnedBadgesSkipped(t *testing.T) {
	p := freshProfile()
	p.CompletedQuests = []string{"a"}
	p.Badges = []string{BadgeFirstQuest}

	earned := EvaluateBadges(BadgeContext{Profile: p})
	if len(earned) != 0 {
		t.Fatalf("earned=%v, want none when already owned", earned)
	}
}

func TestEvaluateBadges_CatalogOrderPreserved(t *testing.T) {
	p := freshProfile()
	p.CompletedQuests = []string{"a"}

	earned := EvaluateBadges(BadgeContext{
		Profile: p,
		Quest:   storage.Quest{ID: "a", IsWeekend: true},
		Focus:   storage.FocusProgress{Done: 3, Total: 3},
	})
	want := []string{BadgeFirstQuest, BadgePerfectDay, BadgeWeekendWarrior}
	if len(earned) != len(want) {
		t.Fatalf("earned=%v, want %v", earned, want)
	}
	for i, id := range want {
		if earned[i].ID != id {
			t.Fatalf("earned[%d]=%s, want %s", i, earned[i].ID, id)
		}
	}
}

func TestEvaluateBadges_PerfectDayNeedsFocusQuests(t *testing.T) {
	p := freshProfile()
	p.CompletedQuests = []string{"a", "b"}

	earned := EvaluateBadges(BadgeContext{
		Profile: p,
		Focus:   storage.FocusProgress{Done: 0, Total: 0},
	})
	for _, b := range earned {
		if b.ID == BadgePerfectDay {
			t.Fatalf("perfect-day earned with no focus quests")
		}
	}
}

func TestTotalXPEstimate(t *testing.T) {
	p := freshProfile()
	if got := TotalXPEstimate(p); got != 0 {
		t.Fatalf("fresh estimate=%d, want 0", got)
	}
	p.Level = 3
	p.XP = 40
	if got := TotalXPEstimate(p); got != 240 {
		t.Fatalf("estimate=%d, want 240", got)
	}
}

func TestClampXP(t *testing.T) {
	cases := []struct {
		xp, max, want int
	}{
		{-5, 30, 0},
		{0, 30, 0},
		{15, 30, 15},
		{30, 30, 30},
		{45, 30, 30},
		{45, 0, 45}, // no declared max
	}
	for _, tc := range cases {
		if got := clampXP(tc.xp, tc.max); got != tc.want {
			t.Fatalf("clampXP(%d,%d)=%d, want %d", tc.xp, tc.max, got, tc.want)
		}
	}
}
