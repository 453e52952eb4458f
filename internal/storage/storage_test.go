package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

// testRepos bundles the repos over one temp database.
type testRepos struct {
	Profiles  *ProfileRepo
	Quests    *QuestRepo
	Progress  *ProgressRepo
	Documents *DocumentRepo
}

func newTestDB(t *testing.T) *testRepos {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return &testRepos{
		Profiles:  NewProfileRepo(db),
		Quests:    NewQuestRepo(db),
		Progress:  NewProgressRepo(db),
		Documents: NewDocumentRepo(db),
	}
}

func TestMigrate_SeedsStarterQuestsOnce(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	pending, err := h.Quests.ListPending(ctx)
	if err != nil {
		t.Fatalf("ListPending: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("pending=%d, want 3 seed quests", len(pending))
	}
	for _, q := range pending {
		if !q.IsDailyFocus {
			t.Fatalf("seed quest %s not flagged as daily focus", q.ID)
		}
	}
	if pending[0].ID != "quest-1" || pending[1].ID != "quest-2" || pending[2].ID != "quest-3" {
		t.Fatalf("seed order=%s,%s,%s", pending[0].ID, pending[1].ID, pending[2].ID)
	}
}

func TestProfileRepo_RoundTrip(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	p, err := h.Profiles.GetOrCreateMain(ctx, "")
	if err != nil {
		t.Fatalf("GetOrCreateMain: %v", err)
	}
	if p.Level != 1 || p.XP != 0 || p.XPToNextLevel != InitialXPToNextLevel {
		t.Fatalf("defaults=%d/%d/%d", p.Level, p.XP, p.XPToNextLevel)
	}

	p.Level = 4
	p.XP = 37
	p.CompletedQuests = []string{"quest-1", "quest-2"}
	p.Badges = []string{"first-quest"}
	if err := h.Profiles.Update(ctx, p); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := h.Profiles.Get(ctx, MainProfileKey)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Level != 4 || got.XP != 37 {
		t.Fatalf("got %d/%d, want 4/37", got.Level, got.XP)
	}
	if len(got.CompletedQuests) != 2 || len(got.Badges) != 1 {
		t.Fatalf("lists not round-tripped: %v %v", got.CompletedQuests, got.Badges)
	}
	if !got.HasBadge("first-quest") || got.HasBadge("quest-novice") {
		t.Fatalf("HasBadge wrong: %v", got.Badges)
	}
}

func TestQuestRepo_MarkCompletedIsConditional(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	ok, err := h.Quests.MarkCompleted(ctx, "quest-1", now)
	if err != nil || !ok {
		t.Fatalf("first MarkCompleted: ok=%v err=%v", ok, err)
	}
	ok, err = h.Quests.MarkCompleted(ctx, "quest-1", now)
	if err != nil {
		t.Fatalf("second MarkCompleted: %v", err)
	}
	if ok {
		t.Fatalf("second MarkCompleted reported success")
	}

	q, _ := h.Quests.Get(ctx, "quest-1")
	if !q.IsCompleted || q.CompletedAt == nil {
		t.Fatalf("quest not persisted as completed: %+v", q)
	}
}

func TestQuestRepo_EvaluationLockLifecycle(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	ok, err := h.Quests.BeginEvaluation(ctx, "quest-2", "my report")
	if err != nil || !ok {
		t.Fatalf("BeginEvaluation: ok=%v err=%v", ok, err)
	}

	// Second begin is rejected while the lock is held.
	ok, err = h.Quests.BeginEvaluation(ctx, "quest-2", "another report")
	if err != nil {
		t.Fatalf("second BeginEvaluation: %v", err)
	}
	if ok {
		t.Fatalf("evaluation lock not exclusive")
	}

	applied, err := h.Quests.ApplyEvaluationResult(ctx, "quest-2", false, "try again", time.Now().UTC())
	if err != nil || !applied {
		t.Fatalf("ApplyEvaluationResult: applied=%v err=%v", applied, err)
	}

	q, _ := h.Quests.Get(ctx, "quest-2")
	if q.IsCompleted || q.IsEvaluating {
		t.Fatalf("failed verdict state: completed=%v evaluating=%v", q.IsCompleted, q.IsEvaluating)
	}
	if q.Feedback == nil || *q.Feedback != "try again" {
		t.Fatalf("feedback not stored: %v", q.Feedback)
	}

	// Lock is free again.
	ok, err = h.Quests.BeginEvaluation(ctx, "quest-2", "third report")
	if err != nil || !ok {
		t.Fatalf("BeginEvaluation after release: ok=%v err=%v", ok, err)
	}
}

func TestQuestRepo_ReplacePendingKeepsCompleted(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	if _, err := h.Quests.MarkCompleted(ctx, "quest-3", time.Now().UTC()); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}

	err := h.Quests.ReplacePending(ctx, []QuestInsert{
		{ID: "gen-1", Title: "New One", XP: 20, RequiresInput: true},
	})
	if err != nil {
		t.Fatalf("ReplacePending: %v", err)
	}

	pending, _ := h.Quests.ListPending(ctx)
	if len(pending) != 1 || pending[0].ID != "gen-1" {
		t.Fatalf("pending=%v, want only gen-1", pending)
	}
	done, _ := h.Quests.ListCompleted(ctx)
	if len(done) != 1 || done[0].ID != "quest-3" {
		t.Fatalf("completed=%v, want quest-3 kept", done)
	}
}

func TestQuestRepo_FocusProgress(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	focus, err := h.Quests.FocusProgress(ctx)
	if err != nil {
		t.Fatalf("FocusProgress: %v", err)
	}
	if focus.Done != 0 || focus.Total != 3 {
		t.Fatalf("focus=%d/%d, want 0/3", focus.Done, focus.Total)
	}

	if _, err := h.Quests.MarkCompleted(ctx, "quest-1", time.Now().UTC()); err != nil {
		t.Fatalf("MarkCompleted: %v", err)
	}
	focus, _ = h.Quests.FocusProgress(ctx)
	if focus.Done != 1 || focus.Total != 3 {
		t.Fatalf("focus=%d/%d, want 1/3", focus.Done, focus.Total)
	}
}

func TestProgressRepo_WeekOrderAndUnknownDay(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	if err := h.Progress.IncrementDay(ctx, "Tue"); err != nil {
		t.Fatalf("IncrementDay: %v", err)
	}
	// Untracked keys are a silent no-op, not an error.
	if err := h.Progress.IncrementDay(ctx, "Someday"); err != nil {
		t.Fatalf("IncrementDay unknown: %v", err)
	}

	week, err := h.Progress.ListWeek(ctx)
	if err != nil {
		t.Fatalf("ListWeek: %v", err)
	}
	if len(week) != 7 {
		t.Fatalf("days=%d, want 7", len(week))
	}
	for i, day := range WeekDays {
		if week[i].Date != day {
			t.Fatalf("week[%d]=%s, want %s", i, week[i].Date, day)
		}
	}
	if week[1].Completed != 1 {
		t.Fatalf("Tue=%d, want 1", week[1].Completed)
	}
}

func TestDocumentRepo_UpsertAndDelete(t *testing.T) {
	h := newTestDB(t)
	ctx := context.Background()

	if _, ok, err := h.Documents.Get(ctx, DocCurriculumContent); err != nil || ok {
		t.Fatalf("fresh get: ok=%v err=%v", ok, err)
	}

	if err := h.Documents.Put(ctx, DocCurriculumContent, "v1"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := h.Documents.Put(ctx, DocCurriculumContent, "v2"); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}

	v, ok, err := h.Documents.Get(ctx, DocCurriculumContent)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if v != "v2" {
		t.Fatalf("value=%q, want v2 (last write wins)", v)
	}

	if err := h.Documents.Delete(ctx, DocCurriculumContent); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := h.Documents.Get(ctx, DocCurriculumContent); ok {
		t.Fatalf("value present after delete")
	}
}
