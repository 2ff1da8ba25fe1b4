package model

import (
	"time"

	"github.com/google/uuid"
)

// InterviewSession is one mock-interview attempt. Questions grows by one per
// turn (the last entry is the question awaiting an answer); Answers and
// FeedbackLog grow in lockstep with TurnIndex. The owning user id is never
// serialized in API responses.
type InterviewSession struct {
	SessionID   uuid.UUID  `json:"session_id" db:"session_id"`
	UserID      uuid.UUID  `json:"-" db:"user_id"`
	JobRole     string     `json:"job_role" db:"job_role"`
	Questions   []string   `json:"questions" db:"questions"`
	Answers     []string   `json:"answers" db:"answers"`
	FeedbackLog []string   `json:"feedback" db:"feedback"`
	TurnIndex   int        `json:"turn_index" db:"turn_index"`
	UsesAI      bool       `json:"uses_ai" db:"uses_ai"`
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

type StartInterviewRequest struct {
	JobRole string `json:"job_role"`
}

type StartInterviewResponse struct {
	Question   string    `json:"question"`
	SessionID  uuid.UUID `json:"session_id"`
	JobRole    string    `json:"job_role"`
	TurnNumber int       `json:"turn_number"`
	TotalTurns int       `json:"total_turns"`
	UsesAI     bool      `json:"uses_ai"`
}

type SubmitAnswerRequest struct {
	SessionID uuid.UUID `json:"session_id" binding:"required"`
	Answer    string    `json:"answer" binding:"required"`
	IsVoice   bool      `json:"is_voice"`
}

type SubmitAnswerResponse struct {
	Feedback     string  `json:"feedback"`
	NextQuestion *string `json:"next_question,omitempty"`
	TurnNumber   int     `json:"turn_number"`
	TotalTurns   int     `json:"total_turns"`
	IsComplete   bool    `json:"is_complete"`
	Progress     int     `json:"progress"`
}
