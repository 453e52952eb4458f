package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type QuestRepo struct {
	db *sql.DB
}

func NewQuestRepo(db *sql.DB) *QuestRepo {
	return &QuestRepo{db: db}
}

type QuestInsert struct {
	ID            string
	Title         string
	Description   string
	XP            int
	RequiresInput bool
	IsWeekend     bool
	IsDailyFocus  bool
}

const questColumns = `id, title, description, xp,
	is_completed, requires_input, is_weekend, is_daily_focus,
	user_input, feedback, is_evaluating, created_at, completed_at`

func (r *QuestRepo) Insert(ctx context.Context, in QuestInsert) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO quests (id, title, description, xp, requires_input, is_weekend, is_daily_focus)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, in.ID, in.Title, in.Description, in.XP, boolToInt(in.RequiresInput), boolToInt(in.IsWeekend), boolToInt(in.IsDailyFocus))
	if err != nil {
		return fmt.Errorf("quest insert: %w", err)
	}
	return nil
}

func (r *QuestRepo) Get(ctx context.Context, id string) (*Quest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+questColumns+` FROM quests WHERE id = ?`, id)
	return scanQuestRow(row)
}

// ListPending returns not-yet-completed quests in catalog (insertion) order.
func (r *QuestRepo) ListPending(ctx context.Context) ([]Quest, error) {
	return r.list(ctx, `SELECT `+questColumns+` FROM quests WHERE is_completed = 0 ORDER BY rowid ASC`)
}

func (r *QuestRepo) ListCompleted(ctx context.Context) ([]Quest, error) {
	return r.list(ctx, `SELECT `+questColumns+` FROM quests WHERE is_completed = 1 ORDER BY rowid ASC`)
}

func (r *QuestRepo) ListAll(ctx context.Context) ([]Quest, error) {
	return r.list(ctx, `SELECT `+questColumns+` FROM quests ORDER BY rowid ASC`)
}

func (r *QuestRepo) list(ctx context.Context, query string) ([]Quest, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("quest list: %w", err)
	}
	defer rows.Close()

	var out []Quest
	for rows.Next() {
		q, err := scanQuestRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest list rows: %w", err)
	}
	return out, nil
}

// MarkCompleted flips is_completed false→true. The conditional WHERE makes the
// transition at-most-once: the second caller sees zero rows affected.
func (r *QuestRepo) MarkCompleted(ctx context.Context, id string, completedAt time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE quests SET is_completed = 1, completed_at = ?
		WHERE id = ? AND is_completed = 0
	`, completedAt, id)
	if err != nil {
		return false, fmt.Errorf("quest mark completed: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("quest mark completed rows: %w", err)
	}
	return n > 0, nil
}

// BeginEvaluation records the report and sets is_evaluating, which doubles as
// the in-flight lock: a second submission against the same quest finds the flag
// already set and is rejected.
func (r *QuestRepo) BeginEvaluation(ctx context.Context, id string, input string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE quests SET is_evaluating = 1, user_input = ?
		WHERE id = ? AND is_completed = 0 AND is_evaluating = 0
	`, input, id)
	if err != nil {
		return false, fmt.Errorf("quest begin evaluation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("quest begin evaluation rows: %w", err)
	}
	return n > 0, nil
}

// ApplyEvaluationResult clears the lock and records the verdict. It refuses to
// touch a quest that was completed while the evaluation was in flight; the
// caller detects that through the false return and discards the verdict.
func (r *QuestRepo) ApplyEvaluationResult(ctx context.Context, id string, completed bool, feedback string, completedAt time.Time) (bool, error) {
	var res sql.Result
	var err error
	if completed {
		res, err = r.db.ExecContext(ctx, `
			UPDATE quests SET is_evaluating = 0, feedback = ?, is_completed = 1, completed_at = ?
			WHERE id = ? AND is_completed = 0
		`, feedback, completedAt, id)
	} else {
		res, err = r.db.ExecContext(ctx, `
			UPDATE quests SET is_evaluating = 0, feedback = ?
			WHERE id = ? AND is_completed = 0
		`, feedback, id)
	}
	if err != nil {
		return false, fmt.Errorf("quest apply evaluation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("quest apply evaluation rows: %w", err)
	}
	return n > 0, nil
}

// ClearEvaluation drops the in-flight flag without recording anything. Used when
// a stale verdict arrives for a quest completed through another path.
func (r *QuestRepo) ClearEvaluation(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE quests SET is_evaluating = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("quest clear evaluation: %w", err)
	}
	return nil
}

// ReplacePending discards all pending quests and appends the new batch inside a
// single transaction. Completed quests are never removed.
func (r *QuestRepo) ReplacePending(ctx context.Context, quests []QuestInsert) error {
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM quests WHERE is_completed = 0`); err != nil {
			return fmt.Errorf("quest delete pending: %w", err)
		}
		for _, in := range quests {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO quests (id, title, description, xp, requires_input, is_weekend, is_daily_focus)
				VALUES (?, ?, ?, ?, ?, ?, ?)
			`, in.ID, in.Title, in.Description, in.XP, boolToInt(in.RequiresInput), boolToInt(in.IsWeekend), boolToInt(in.IsDailyFocus))
			if err != nil {
				return fmt.Errorf("quest insert pending: %w", err)
			}
		}
		return nil
	})
}

// FocusProgress tallies the daily-focus quests and how many are done.
func (r *QuestRepo) FocusProgress(ctx context.Context) (FocusProgress, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(is_completed), 0)
		FROM quests WHERE is_daily_focus = 1
	`)
	var fp FocusProgress
	if err := row.Scan(&fp.Total, &fp.Done); err != nil {
		return FocusProgress{}, fmt.Errorf("quest focus progress: %w", err)
	}
	return fp, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestRow(row scanner) (*Quest, error) {
	var (
		q             Quest
		isCompleted   int
		requiresInput int
		isWeekend     int
		isDailyFocus  int
		userInput     sql.NullString
		feedback      sql.NullString
		isEvaluating  int
		completedAt   sql.NullTime
	)

	if err := row.Scan(
		&q.ID, &q.Title, &q.Description, &q.XP,
		&isCompleted, &requiresInput, &isWeekend, &isDailyFocus,
		&userInput, &feedback, &isEvaluating, &q.CreatedAt, &completedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("quest scan: %w", err)
	}

	q.IsCompleted = isCompleted != 0
	q.RequiresInput = requiresInput != 0
	q.IsWeekend = isWeekend != 0
	q.IsDailyFocus = isDailyFocus != 0
	q.IsEvaluating = isEvaluating != 0
	if userInput.Valid {
		v := userInput.String
		q.UserInput = &v
	}
	if feedback.Valid {
		v := feedback.String
		q.Feedback = &v
	}
	if completedAt.Valid {
		v := completedAt.Time
		q.CompletedAt = &v
	}
	return &q, nil
}
