package engine

import "errors"

var (
	// ErrQuestNotFound indicates an operation referenced an unknown quest id.
	ErrQuestNotFound = errors.New("quest not found")

	// ErrAlreadyCompleted is the guard rejection on a quest already marked done.
	// Callers treat it as an idempotent no-op, never a double award.
	ErrAlreadyCompleted = errors.New("quest already completed")

	// ErrEvaluationInFlight rejects a second submission while an evaluation for
	// the same quest is still pending.
	ErrEvaluationInFlight = errors.New("quest evaluation already in progress")

	// ErrAINotConfigured indicates no evaluator/generator was wired (missing API key).
	ErrAINotConfigured = errors.New("ai features are not configured (set MINDQUEST_AI_API_KEY)")
)
