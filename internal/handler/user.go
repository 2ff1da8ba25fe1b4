package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/repository"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/response"
)

// SignUp creates a new user account
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	userID, err := h.Users.Create(c.Request.Context(), req.Email, pwHash)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			response.Conflict(c, "email already registered")
			return
		}
		h.Logger.Sugar().Errorw("user create failed", "email", req.Email, "err", err)
		response.InternalError(c, "")
		return
	}

	response.Created(c, model.UserResponse{UserID: userID, Email: req.Email})
}

// Login verifies credentials and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		response.Unauthorized(c, "invalid credentials")
		return
	}

	accessToken, claims, err := h.TokenMaker.GenerateToken(user.UserID, user.Email, h.AccessTokenTTL)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "could not generate token")
		return
	}

	response.OK(c, model.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   claims.ExpiresAt.Time,
		User:        model.UserResponse{UserID: user.UserID, Email: user.Email},
	})
}

// Me returns the current user profile
func (h *Handler) Me(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := h.Users.GetByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}

	response.OK(c, model.UserResponse{UserID: user.UserID, Email: user.Email})
}
