package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/auth"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/interview"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/resume"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

// UserStore is the subset of the user repository the handlers need.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

type Handler struct {
	Logger         *zap.Logger
	Users          UserStore
	Interviews     *interview.Service
	Resumes        *resume.Service
	TokenMaker     *auth.JWTMaker
	AccessTokenTTL time.Duration
	UploadDir      string
	MaxUploadBytes int64
}

// claimsFrom retrieves the verified claims placed on the context by the auth
// middleware; nil means the request is unauthenticated.
func (h *Handler) claimsFrom(c *gin.Context) *auth.UserClaims {
	v, ok := c.Get("claims")
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.UserClaims)
	if !ok {
		return nil
	}
	return claims
}
