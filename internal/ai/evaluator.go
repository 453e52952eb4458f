package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mindquest/internal/engine"
	"mindquest/internal/storage"
)

// verdictPayload is the JSON shape the model is asked to produce for an
// evaluation call.
type verdictPayload struct {
	Completed *bool  `json:"completed"`
	Feedback  string `json:"feedback"`
	XPAwarded *int   `json:"xpAwarded"`
}

func validateVerdict(v verdictPayload) error {
	if v.Completed == nil {
		return errors.New("missing completed field")
	}
	if strings.TrimSpace(v.Feedback) == "" {
		return errors.New("missing feedback field")
	}
	if v.XPAwarded == nil {
		return errors.New("missing xpAwarded field")
	}
	return nil
}

// QuestEvaluator asks the model to judge a submitted quest report. It
// implements engine.Evaluator.
type QuestEvaluator struct {
	client Client
}

func NewQuestEvaluator(client Client) *QuestEvaluator {
	return &QuestEvaluator{client: client}
}

func (e *QuestEvaluator) Evaluate(ctx context.Context, quest storage.Quest, report string) (engine.Verdict, error) {
	resp, err := e.client.Generate(ctx, GenerateRequest{
		Task:         TaskEvaluate,
		Messages:     []Message{{Role: "user", Text: evaluationPrompt(quest, report)}},
		JSONResponse: true,
	})
	if err != nil {
		return engine.Verdict{}, fmt.Errorf("evaluating quest %s: %w", quest.ID, err)
	}

	payload, err := ExtractJSON(resp.Text, validateVerdict)
	if err != nil {
		return engine.Verdict{}, fmt.Errorf("evaluating quest %s: %w", quest.ID, err)
	}

	xp := *payload.XPAwarded
	if xp < 0 {
		xp = 0
	}
	if xp > quest.XP {
		xp = quest.XP
	}
	return engine.Verdict{
		Completed: *payload.Completed,
		Feedback:  strings.TrimSpace(payload.Feedback),
		XPAwarded: xp,
	}, nil
}
