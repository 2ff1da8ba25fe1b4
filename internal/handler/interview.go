package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/interview"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/response"
)

// StartInterview opens a new mock-interview session and returns the first
// question.
func (h *Handler) StartInterview(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.StartInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.Interviews.Start(c.Request.Context(), claims.UserID, req.JobRole)
	if err != nil {
		h.Logger.Sugar().Errorw("start interview failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "error starting interview")
		return
	}

	response.OK(c, res)
}

// SubmitAnswer records one answer and returns feedback plus the next
// question while the interview is in progress.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.Interviews.SubmitAnswer(c.Request.Context(), claims.UserID, req.SessionID, req.Answer, req.IsVoice)
	if err != nil {
		switch {
		case errors.Is(err, interview.ErrEmptyAnswer):
			response.BadRequest(c, err.Error())
		case errors.Is(err, interview.ErrSessionCompleted):
			response.BadRequest(c, err.Error())
		case errors.Is(err, interview.ErrSessionNotFound):
			response.NotFound(c, "interview session not found")
		default:
			h.Logger.Sugar().Errorw("submit answer failed", "session_id", req.SessionID, "err", err)
			response.InternalError(c, "error processing answer")
		}
		return
	}

	response.OK(c, res)
}

// ListInterviews returns the caller's sessions, newest first.
func (h *Handler) ListInterviews(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	sessions, err := h.Interviews.ListSessions(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("list interviews failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, sessions)
}

func (h *Handler) GetInterview(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session id")
		return
	}

	sess, err := h.Interviews.GetSession(c.Request.Context(), claims.UserID, sessionID)
	if err != nil {
		if errors.Is(err, interview.ErrSessionNotFound) {
			response.NotFound(c, "interview session not found")
			return
		}
		h.Logger.Sugar().Errorw("get interview failed", "session_id", sessionID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, sess)
}

func (h *Handler) DeleteInterview(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid session id")
		return
	}

	if err := h.Interviews.DeleteSession(c.Request.Context(), claims.UserID, sessionID); err != nil {
		if errors.Is(err, interview.ErrSessionNotFound) {
			response.NotFound(c, "interview session not found")
			return
		}
		h.Logger.Sugar().Errorw("delete interview failed", "session_id", sessionID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.Message(c, "interview session deleted successfully")
}
