package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/auth"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/interview"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/metrics"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/repository"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/resume"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/response"
)

type fakeUserStore struct {
	byEmail map[string]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, email, passwordHash string) (uuid.UUID, error) {
	if _, ok := s.byEmail[email]; ok {
		return uuid.Nil, repository.ErrEmailTaken
	}
	u := model.User{UserID: uuid.New(), Email: email, PasswordHash: passwordHash, CreatedAt: time.Now()}
	s.byEmail[email] = u
	return u.UserID, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	for _, u := range s.byEmail {
		if u.UserID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrUserNotFound
}

type memSessionStore struct {
	sessions map[uuid.UUID]*model.InterviewSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[uuid.UUID]*model.InterviewSession)}
}

func (m *memSessionStore) CreateSession(_ context.Context, sess *model.InterviewSession) error {
	cp := *sess
	m.sessions[sess.SessionID] = &cp
	return nil
}

func (m *memSessionStore) GetSession(_ context.Context, sessionID, userID uuid.UUID) (*model.InterviewSession, error) {
	sess, ok := m.sessions[sessionID]
	if !ok || sess.UserID != userID {
		return nil, interview.ErrSessionNotFound
	}
	cp := *sess
	return &cp, nil
}

func (m *memSessionStore) UpdateSession(_ context.Context, sess *model.InterviewSession) error {
	cp := *sess
	m.sessions[sess.SessionID] = &cp
	return nil
}

func (m *memSessionStore) ListSessions(_ context.Context, userID uuid.UUID, limit int) ([]model.InterviewSession, error) {
	var out []model.InterviewSession
	for _, sess := range m.sessions {
		if sess.UserID == userID && len(out) < limit {
			out = append(out, *sess)
		}
	}
	return out, nil
}

func (m *memSessionStore) DeleteSession(_ context.Context, sessionID, userID uuid.UUID) error {
	sess, ok := m.sessions[sessionID]
	if !ok || sess.UserID != userID {
		return interview.ErrSessionNotFound
	}
	delete(m.sessions, sessionID)
	return nil
}

type memResumeStore struct {
	resumes map[uuid.UUID]*model.Resume
}

func newMemResumeStore() *memResumeStore {
	return &memResumeStore{resumes: make(map[uuid.UUID]*model.Resume)}
}

func (m *memResumeStore) CreateResume(_ context.Context, r *model.Resume) error {
	cp := *r
	m.resumes[r.ResumeID] = &cp
	return nil
}

func (m *memResumeStore) GetResume(_ context.Context, resumeID, userID uuid.UUID) (*model.Resume, error) {
	r, ok := m.resumes[resumeID]
	if !ok || r.UserID != userID {
		return nil, resume.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *memResumeStore) ListResumes(_ context.Context, userID uuid.UUID, limit int) ([]model.Resume, error) {
	var out []model.Resume
	for _, r := range m.resumes {
		if r.UserID == userID && len(out) < limit {
			out = append(out, *r)
		}
	}
	return out, nil
}

// newTestHandler wires the handler onto in-memory stores with no AI
// collaborator configured.
func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	logger := zap.NewNop()
	bank, err := interview.LoadBank()
	if err != nil {
		t.Fatalf("LoadBank: %v", err)
	}
	collector := metrics.NewCollector()
	fg := interview.NewFeedbackGenerator(rand.New(rand.NewSource(3)))

	return &Handler{
		Logger:         logger,
		Users:          newFakeUserStore(),
		Interviews:     interview.NewService(newMemSessionStore(), bank, nil, fg, logger, collector),
		Resumes:        resume.NewService(newMemResumeStore(), nil, rand.New(rand.NewSource(4)), logger, collector),
		TokenMaker:     auth.NewJWTMaker("0123456789abcdef0123456789abcdef"),
		AccessTokenTTL: time.Hour,
		UploadDir:      t.TempDir(),
		MaxUploadBytes: 1 << 20,
	}
}

// newTestRouter registers the handler routes. When userID is non-nil every
// request carries verified claims for that user, mimicking the auth
// middleware.
func newTestRouter(h *Handler, userID *uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != nil {
		claims := auth.NewUserClaims(*userID, "user@example.com", time.Hour)
		r.Use(func(c *gin.Context) {
			c.Set("claims", claims)
			c.Next()
		})
	}

	r.POST("/signup", h.SignUp)
	r.POST("/login", h.Login)
	r.GET("/me", h.Me)
	r.POST("/interviews/start", h.StartInterview)
	r.POST("/interviews/answer", h.SubmitAnswer)
	r.GET("/interviews", h.ListInterviews)
	r.GET("/interviews/:id", h.GetInterview)
	r.DELETE("/interviews/:id", h.DeleteInterview)
	r.POST("/resumes/build", h.BuildResume)
	r.POST("/resumes/suggestions", h.ResumeSuggestions)
	r.POST("/resumes", h.SaveResume)
	r.GET("/resumes", h.ListResumes)
	r.GET("/resumes/:id", h.GetResume)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder, data interface{}) response.Envelope {
	t.Helper()
	var env response.Envelope
	if data != nil {
		env.Data = data
	}
	raw := struct {
		Success bool                `json:"success"`
		Data    json.RawMessage     `json:"data"`
		Error   *response.ErrorInfo `json:"error"`
	}{}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode envelope: %v\nbody: %s", err, w.Body.String())
	}
	env.Success = raw.Success
	env.Error = raw.Error
	if data != nil && len(raw.Data) > 0 {
		if err := json.Unmarshal(raw.Data, data); err != nil {
			t.Fatalf("decode envelope data: %v\nbody: %s", err, w.Body.String())
		}
	}
	return env
}
