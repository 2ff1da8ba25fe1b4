package interview

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/metrics"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

// maxListedSessions caps ListSessions results to the most recent entries.
const maxListedSessions = 50

const (
	aiClosingRemark   = "\n\nThank you for completing the interview! Overall, you provided thoughtful responses. Continue practicing to build confidence and clarity in your answers."
	mockClosingRemark = "\n\nInterview completed! You've answered all questions. Review the feedback to improve your interview skills."
)

var (
	// ErrSessionNotFound covers both "no such session" and "owned by someone
	// else"; the two are deliberately indistinguishable.
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrEmptyAnswer      = errors.New("answer must not be empty")
	ErrSessionCompleted = errors.New("interview already completed")
)

// Store persists interview sessions. Every lookup is scoped by
// (sessionID, userID).
type Store interface {
	CreateSession(ctx context.Context, sess *model.InterviewSession) error
	GetSession(ctx context.Context, sessionID, userID uuid.UUID) (*model.InterviewSession, error)
	UpdateSession(ctx context.Context, sess *model.InterviewSession) error
	ListSessions(ctx context.Context, userID uuid.UUID, limit int) ([]model.InterviewSession, error)
	DeleteSession(ctx context.Context, sessionID, userID uuid.UUID) error
}

// Completer is the AI collaborator. It may fail on any call; failures are
// absorbed into the fallback path and never surfaced to API callers.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Service drives the interview state machine: NotStarted -> InProgress
// (turn 0..4) -> Completed.
type Service struct {
	store    Store
	bank     *Bank
	ai       Completer // nil when no completion API is configured
	feedback *FeedbackGenerator
	logger   *zap.Logger
	metrics  *metrics.Collector
}

func NewService(store Store, bank *Bank, ai Completer, fg *FeedbackGenerator, logger *zap.Logger, collector *metrics.Collector) *Service {
	return &Service{
		store:    store,
		bank:     bank,
		ai:       ai,
		feedback: fg,
		logger:   logger,
		metrics:  collector,
	}
}

// Start creates a session at turn 0 with exactly one pending question. The
// AI branch is attempted only when a completer is configured; any failure
// (or an empty reply) drops to the question bank.
func (s *Service) Start(ctx context.Context, userID uuid.UUID, jobRole string) (*model.StartInterviewResponse, error) {
	role := strings.TrimSpace(jobRole)
	if role == "" {
		role = GeneralRole
	}

	var firstQuestion string
	usesAI := false
	if s.ai != nil {
		started := time.Now()
		reply, err := s.ai.Complete(ctx, firstQuestionPrompt(role), 200)
		s.metrics.ObserveAILatency(time.Since(started))
		if err != nil {
			s.logger.Warn("ai question generation failed, using question bank",
				zap.String("job_role", role), zap.Error(err))
			s.metrics.RecordAIFallback()
		} else if q := strings.TrimSpace(reply); q != "" {
			firstQuestion = q
			usesAI = true
		}
	}
	if firstQuestion == "" {
		firstQuestion = s.bank.QuestionsFor(role)[0]
	}

	sess := &model.InterviewSession{
		SessionID:   uuid.New(),
		UserID:      userID,
		JobRole:     role,
		Questions:   []string{firstQuestion},
		Answers:     []string{},
		FeedbackLog: []string{},
		TurnIndex:   0,
		UsesAI:      usesAI,
	}
	if err := s.store.CreateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	s.metrics.RecordInterviewStarted(usesAI)

	return &model.StartInterviewResponse{
		Question:   firstQuestion,
		SessionID:  sess.SessionID,
		JobRole:    role,
		TurnNumber: 1,
		TotalTurns: TotalTurns,
		UsesAI:     usesAI,
	}, nil
}

// SubmitAnswer records one answer and advances the session by exactly one
// turn. AI collaborator errors never bubble up: the turn still succeeds with
// templated feedback and the next bank question. The session is written back
// once, after all content for the turn is known.
func (s *Service) SubmitAnswer(ctx context.Context, userID, sessionID uuid.UUID, answer string, isVoice bool) (*model.SubmitAnswerResponse, error) {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, ErrEmptyAnswer
	}

	sess, err := s.store.GetSession(ctx, sessionID, userID)
	if err != nil {
		return nil, err
	}
	if sess.CompletedAt != nil {
		return nil, ErrSessionCompleted
	}

	currentQuestion := sess.Questions[len(sess.Questions)-1]
	sess.Answers = append(sess.Answers, answer)
	sess.TurnIndex++

	var feedback, nextQuestion string
	var complete bool
	if sess.UsesAI && s.ai != nil {
		feedback, nextQuestion, complete = s.aiTurn(ctx, sess, currentQuestion, answer, isVoice)
	} else {
		feedback, nextQuestion, complete = s.fallbackTurn(sess, answer, isVoice, mockClosingRemark)
	}

	if nextQuestion != "" {
		sess.Questions = append(sess.Questions, nextQuestion)
	}
	sess.FeedbackLog = append(sess.FeedbackLog, feedback)
	if complete {
		now := time.Now()
		sess.CompletedAt = &now
		s.metrics.RecordInterviewCompleted()
	}

	if err := s.store.UpdateSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	resp := &model.SubmitAnswerResponse{
		Feedback:   feedback,
		TurnNumber: sess.TurnIndex + 1,
		TotalTurns: TotalTurns,
		IsComplete: complete,
		Progress:   progressPercent(sess.TurnIndex),
	}
	if nextQuestion != "" {
		resp.NextQuestion = &nextQuestion
	}
	return resp, nil
}

// aiTurn runs the AI path for an answered turn. On the final turn the whole
// reply is the feedback and the session completes; otherwise the two-section
// reply is parsed. Errors hand the whole turn over to the fallback path.
func (s *Service) aiTurn(ctx context.Context, sess *model.InterviewSession, question, answer string, isVoice bool) (feedback, nextQuestion string, complete bool) {
	final := sess.TurnIndex >= TotalTurns
	prompt := turnPrompt(sess.JobRole, question, answer, isVoice)
	if final {
		prompt = finalTurnPrompt(sess.JobRole, question, answer, isVoice)
	}

	started := time.Now()
	reply, err := s.ai.Complete(ctx, prompt, 300)
	s.metrics.ObserveAILatency(time.Since(started))
	if err != nil {
		s.logger.Warn("ai feedback failed, falling back",
			zap.String("session_id", sess.SessionID.String()),
			zap.Int("turn_index", sess.TurnIndex),
			zap.Error(err))
		s.metrics.RecordAIFallback()
		return s.fallbackTurn(sess, answer, isVoice, aiClosingRemark)
	}

	if final {
		return reply, "", true
	}
	parsed := ParseReply(reply)
	return parsed.Feedback, parsed.NextQuestion, false
}

// fallbackTurn is the deterministic non-AI path: templated feedback plus the
// bank question at the current turn index, or a closing remark once the last
// turn has been answered.
func (s *Service) fallbackTurn(sess *model.InterviewSession, answer string, isVoice bool, closingRemark string) (feedback, nextQuestion string, complete bool) {
	feedback = s.feedback.Feedback(answer, isVoice)
	if sess.TurnIndex < TotalTurns {
		questions := s.bank.QuestionsFor(sess.JobRole)
		if sess.TurnIndex < len(questions) {
			return feedback, questions[sess.TurnIndex], false
		}
		return feedback, "", false
	}
	return feedback + closingRemark, "", true
}

// ListSessions returns the owner's sessions newest-first, at most
// maxListedSessions of them.
func (s *Service) ListSessions(ctx context.Context, userID uuid.UUID) ([]model.InterviewSession, error) {
	return s.store.ListSessions(ctx, userID, maxListedSessions)
}

func (s *Service) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*model.InterviewSession, error) {
	return s.store.GetSession(ctx, sessionID, userID)
}

func (s *Service) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	return s.store.DeleteSession(ctx, sessionID, userID)
}

func progressPercent(turnIndex int) int {
	return int(math.Round(float64(turnIndex) / float64(TotalTurns) * 100))
}
