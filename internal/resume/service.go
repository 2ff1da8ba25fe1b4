package resume

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/metrics"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

const (
	// DefaultJobRole is used when the caller does not target a role.
	DefaultJobRole = "General"

	maxListedResumes = 50
)

var (
	ErrNotFound        = errors.New("resume not found")
	ErrEmptyResume     = errors.New("no text could be extracted from the resume")
	ErrMissingFullName = errors.New("personal information with full name is required")
	ErrEmptyBuildInput = errors.New("provide at least personal info, experience, skills, or education information")
)

// Store persists resume records, always scoped by the owning user.
type Store interface {
	CreateResume(ctx context.Context, r *model.Resume) error
	GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*model.Resume, error)
	ListResumes(ctx context.Context, userID uuid.UUID, limit int) ([]model.Resume, error)
}

// Completer is the AI collaborator used for analysis and generation.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Service scores uploaded resumes and generates resumes from builder data.
// Like the interview flow, AI failures degrade to deterministic output
// rather than erroring.
type Service struct {
	store   Store
	ai      Completer // nil when no completion API is configured
	logger  *zap.Logger
	metrics *metrics.Collector

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(store Store, ai Completer, rng *rand.Rand, logger *zap.Logger, collector *metrics.Collector) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		store:   store,
		ai:      ai,
		logger:  logger,
		metrics: collector,
		rng:     rng,
	}
}

// mockScore picks the 60-89 range used whenever no AI score is available.
func (s *Service) mockScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(30) + 60
}

func (s *Service) SaveBuilderData(ctx context.Context, userID uuid.UUID, req *model.SaveResumeRequest) (*model.Resume, error) {
	if req.PersonalInfo == nil || req.PersonalInfo.FullName == "" {
		return nil, ErrMissingFullName
	}

	r := &model.Resume{
		ResumeID:       uuid.New(),
		UserID:         userID,
		JobRole:        DefaultJobRole,
		Feedback:       "Resume data saved from builder",
		IsBuilderData:  true,
		PersonalInfo:   req.PersonalInfo,
		Experience:     req.Experience,
		Education:      req.Education,
		Skills:         req.Skills,
		Projects:       req.Projects,
		Certifications: req.Certifications,
	}
	if err := s.store.CreateResume(ctx, r); err != nil {
		return nil, fmt.Errorf("save resume: %w", err)
	}
	return r, nil
}

func (s *Service) ListResumes(ctx context.Context, userID uuid.UUID) ([]model.Resume, error) {
	return s.store.ListResumes(ctx, userID, maxListedResumes)
}

func (s *Service) GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*model.Resume, error) {
	return s.store.GetResume(ctx, resumeID, userID)
}
