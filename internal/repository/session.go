package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/interview"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

// SessionRepository implements interview.Store on Postgres. The question,
// answer, and feedback sequences live in text[] columns.
type SessionRepository struct {
	db *pgxpool.Pool
}

func (r *SessionRepository) CreateSession(ctx context.Context, sess *model.InterviewSession) error {
	now := time.Now()
	sess.CreatedAt = now
	sess.UpdatedAt = now

	const q = `
INSERT INTO interview_sessions (
	session_id, user_id, job_role, questions, answers, feedback,
	turn_index, uses_ai, completed_at, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`
	_, err := r.db.Exec(ctx, q,
		sess.SessionID, sess.UserID, sess.JobRole, sess.Questions, sess.Answers, sess.FeedbackLog,
		sess.TurnIndex, sess.UsesAI, sess.CompletedAt, sess.CreatedAt, sess.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetSession(ctx context.Context, sessionID, userID uuid.UUID) (*model.InterviewSession, error) {
	const q = `
SELECT session_id, user_id, job_role, questions, answers, feedback,
	turn_index, uses_ai, completed_at, created_at, updated_at
FROM interview_sessions
WHERE session_id = $1 AND user_id = $2
`
	var sess model.InterviewSession
	row := r.db.QueryRow(ctx, q, sessionID, userID)
	err := row.Scan(
		&sess.SessionID, &sess.UserID, &sess.JobRole, &sess.Questions, &sess.Answers, &sess.FeedbackLog,
		&sess.TurnIndex, &sess.UsesAI, &sess.CompletedAt, &sess.CreatedAt, &sess.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, interview.ErrSessionNotFound
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return &sess, nil
}

func (r *SessionRepository) UpdateSession(ctx context.Context, sess *model.InterviewSession) error {
	sess.UpdatedAt = time.Now()

	const q = `
UPDATE interview_sessions
SET questions = $1, answers = $2, feedback = $3, turn_index = $4,
	completed_at = $5, updated_at = $6
WHERE session_id = $7 AND user_id = $8
`
	tag, err := r.db.Exec(ctx, q,
		sess.Questions, sess.Answers, sess.FeedbackLog, sess.TurnIndex,
		sess.CompletedAt, sess.UpdatedAt, sess.SessionID, sess.UserID,
	)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interview.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepository) ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]model.InterviewSession, error) {
	const q = `
SELECT session_id, user_id, job_role, questions, answers, feedback,
	turn_index, uses_ai, completed_at, created_at, updated_at
FROM interview_sessions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	out := make([]model.InterviewSession, 0, limit)
	for rows.Next() {
		var sess model.InterviewSession
		if err := rows.Scan(
			&sess.SessionID, &sess.UserID, &sess.JobRole, &sess.Questions, &sess.Answers, &sess.FeedbackLog,
			&sess.TurnIndex, &sess.UsesAI, &sess.CompletedAt, &sess.CreatedAt, &sess.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan session row: %w", err)
		}
		out = append(out, sess)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID, userID uuid.UUID) error {
	const q = `DELETE FROM interview_sessions WHERE session_id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, q, sessionID, userID)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return interview.ErrSessionNotFound
	}
	return nil
}
