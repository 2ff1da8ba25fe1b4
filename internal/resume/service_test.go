package resume

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/metrics"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

type memStore struct {
	resumes map[uuid.UUID]*model.Resume
	order   []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{resumes: make(map[uuid.UUID]*model.Resume)}
}

func (m *memStore) CreateResume(_ context.Context, r *model.Resume) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	cp := *r
	m.resumes[r.ResumeID] = &cp
	m.order = append(m.order, r.ResumeID)
	return nil
}

func (m *memStore) GetResume(_ context.Context, resumeID, userID uuid.UUID) (*model.Resume, error) {
	r, ok := m.resumes[resumeID]
	if !ok || r.UserID != userID {
		return nil, ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memStore) ListResumes(_ context.Context, userID uuid.UUID, limit int) ([]model.Resume, error) {
	var out []model.Resume
	for i := len(m.order) - 1; i >= 0 && len(out) < limit; i-- {
		r := m.resumes[m.order[i]]
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, nil
}

type completerFunc func(ctx context.Context, prompt string, maxTokens int) (string, error)

func (f completerFunc) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	return f(ctx, prompt, maxTokens)
}

func newTestService(store Store, ai Completer) *Service {
	return NewService(store, ai, rand.New(rand.NewSource(11)), zap.NewNop(), metrics.NewCollector())
}

func TestMockScoreRange(t *testing.T) {
	svc := newTestService(newMemStore(), nil)
	for i := 0; i < 200; i++ {
		if score := svc.mockScore(); score < 60 || score > 89 {
			t.Fatalf("mockScore() = %d, want 60-89", score)
		}
	}
}

func TestSaveBuilderData(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, nil)
	userID := uuid.New()

	req := &model.SaveResumeRequest{
		PersonalInfo: &model.PersonalInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		Skills:       model.SkillList{{Name: "Go"}},
	}
	r, err := svc.SaveBuilderData(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("SaveBuilderData: %v", err)
	}
	if !r.IsBuilderData {
		t.Error("IsBuilderData = false")
	}
	if r.JobRole != DefaultJobRole {
		t.Errorf("JobRole = %q, want %q", r.JobRole, DefaultJobRole)
	}
	if _, ok := store.resumes[r.ResumeID]; !ok {
		t.Error("resume not persisted")
	}
}

func TestSaveBuilderDataRequiresFullName(t *testing.T) {
	svc := newTestService(newMemStore(), nil)

	reqs := []*model.SaveResumeRequest{
		{},
		{PersonalInfo: &model.PersonalInfo{Email: "no-name@example.com"}},
	}
	for _, req := range reqs {
		if _, err := svc.SaveBuilderData(context.Background(), uuid.New(), req); !errors.Is(err, ErrMissingFullName) {
			t.Errorf("error = %v, want ErrMissingFullName", err)
		}
	}
}

func TestGetResumeScopedToOwner(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, nil)
	owner := uuid.New()

	r, err := svc.SaveBuilderData(context.Background(), owner, &model.SaveResumeRequest{
		PersonalInfo: &model.PersonalInfo{FullName: "Ada Lovelace"},
	})
	if err != nil {
		t.Fatalf("SaveBuilderData: %v", err)
	}

	if _, err := svc.GetResume(context.Background(), owner, r.ResumeID); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err := svc.GetResume(context.Background(), uuid.New(), r.ResumeID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-user lookup error = %v, want ErrNotFound", err)
	}
}

func TestSuggestions(t *testing.T) {
	known := Suggestions("Backend Developer")
	if len(known) != 5 {
		t.Errorf("got %d suggestions for a known role, want 5", len(known))
	}
	if known[0] != "Emphasize database design and management skills" {
		t.Errorf("unexpected first suggestion %q", known[0])
	}

	unknown := Suggestions("Astronaut")
	if len(unknown) != len(genericSuggestions) {
		t.Errorf("got %d suggestions for an unknown role, want %d", len(unknown), len(genericSuggestions))
	}
	if unknown[0] != genericSuggestions[0] {
		t.Error("unknown role should fall back to the generic list")
	}
}
