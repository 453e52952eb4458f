package engine

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"time"

	"mindquest/internal/storage"
)

// Service owns all profile and registry mutation. Presentation layers read
// snapshots through it and never write state themselves.
type Service struct {
	db        *sql.DB
	profiles  *storage.ProfileRepo
	quests    *storage.QuestRepo
	progress  *storage.ProgressRepo
	documents *storage.DocumentRepo

	evaluator Evaluator
	generator Generator

	now func() time.Time
}

func NewService(db *sql.DB) *Service {
	return &Service{
		db:        db,
		profiles:  storage.NewProfileRepo(db),
		quests:    storage.NewQuestRepo(db),
		progress:  storage.NewProgressRepo(db),
		documents: storage.NewDocumentRepo(db),
		now:       time.Now,
	}
}

func (s *Service) ProfileRepo() *storage.ProfileRepo   { return s.profiles }
func (s *Service) QuestRepo() *storage.QuestRepo       { return s.quests }
func (s *Service) ProgressRepo() *storage.ProgressRepo { return s.progress }

// SetEvaluator wires the AI evaluator used by SubmitReport.
func (s *Service) SetEvaluator(ev Evaluator) { s.evaluator = ev }

// SetGenerator wires the AI quest generator used by RefreshQuests.
func (s *Service) SetGenerator(gen Generator) { s.generator = gen }

// SetClock overrides the time source. Tests use this to pin day keys.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

func (s *Service) getProfile(ctx context.Context) (*storage.Profile, error) {
	return s.profiles.GetOrCreateMain(ctx, os.Getenv("MINDQUEST_PLAYER_NAME"))
}

// Profile returns a read-only snapshot of the user profile.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	return s.getProfile(ctx)
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// Curriculum returns the stored curriculum text and filename, if any.
func (s *Service) Curriculum(ctx context.Context) (content, fileName string, ok bool, err error) {
	content, haveContent, err := s.documents.Get(ctx, storage.DocCurriculumContent)
	if err != nil {
		return "", "", false, err
	}
	fileName, haveName, err := s.documents.Get(ctx, storage.DocCurriculumFileName)
	if err != nil {
		return "", "", false, err
	}
	return content, fileName, haveContent && haveName, nil
}

// SetCurriculum stores extracted curriculum text. Last write wins.
func (s *Service) SetCurriculum(ctx context.Context, content, fileName string) error {
	if err := s.documents.Put(ctx, storage.DocCurriculumContent, content); err != nil {
		return err
	}
	return s.documents.Put(ctx, storage.DocCurriculumFileName, fileName)
}

// ClearCurriculum removes the stored curriculum.
func (s *Service) ClearCurriculum(ctx context.Context) error {
	if err := s.documents.Delete(ctx, storage.DocCurriculumContent); err != nil {
		return err
	}
	return s.documents.Delete(ctx, storage.DocCurriculumFileName)
}
