package engine

import (
	"context"
	"fmt"
)

// RetryFeedback replaces the verdict when the evaluator itself fails. The quest
// stays pending and can be resubmitted.
const RetryFeedback = "I had a little trouble reviewing that. Could you try submitting again?"

// SubmitReport is the AI-evaluated completion path. The is_evaluating flag is
// taken synchronously before the external call begins, so a concurrent second
// submission against the same quest id is rejected instead of double-registering.
func (s *Service) SubmitReport(ctx context.Context, id string, report string) (*SubmitResult, error) {
	q, err := s.quests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("submit %q: %w", id, ErrQuestNotFound)
	}
	if !q.RequiresInput {
		return nil, fmt.Errorf("quest %q completes directly; no report needed", id)
	}
	if s.evaluator == nil {
		return nil, ErrAINotConfigured
	}

	ok, err := s.quests.BeginEvaluation(ctx, id, report)
	if err != nil {
		return nil, err
	}
	if !ok {
		if q.IsCompleted {
			return nil, fmt.Errorf("submit %q: %w", id, ErrAlreadyCompleted)
		}
		return nil, fmt.Errorf("submit %q: %w", id, ErrEvaluationInFlight)
	}

	// The only suspension point: everything before this ran synchronously.
	verdict, evalErr := s.evaluator.Evaluate(ctx, *q, report)
	if evalErr != nil {
		verdict = Verdict{Completed: false, Feedback: RetryFeedback, XPAwarded: 0}
	}
	verdict.XPAwarded = clampXP(verdict.XPAwarded, q.XP)

	applied, err := s.quests.ApplyEvaluationResult(ctx, id, verdict.Completed, verdict.Feedback, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !applied {
		// The quest was completed elsewhere while the evaluator was running.
		// Reapplying the verdict would double-award XP; discard it.
		if err := s.quests.ClearEvaluation(ctx, id); err != nil {
			return nil, err
		}
		return &SubmitResult{QuestID: id, Stale: true, Feedback: verdict.Feedback}, nil
	}

	out := &SubmitResult{
		QuestID:   id,
		Completed: verdict.Completed,
		Feedback:  verdict.Feedback,
		XPAwarded: verdict.XPAwarded,
	}
	if verdict.Completed && verdict.XPAwarded > 0 {
		q.IsCompleted = true
		q.UserInput = &report
		q.Feedback = &verdict.Feedback
		award, err := s.award(ctx, *q, verdict.XPAwarded)
		if err != nil {
			return nil, err
		}
		out.Award = award
	}
	return out, nil
}

// clampXP bounds an evaluator-supplied award to [0, max]. The evaluator may
// grant partial credit but never more than the quest's declared reward.
func clampXP(xp, max int) int {
	if xp < 0 {
		return 0
	}
	if max > 0 && xp > max {
		return max
	}
	return xp
}
