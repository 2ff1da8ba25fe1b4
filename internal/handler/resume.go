package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/resume"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/response"
)

var allowedUploadExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".html": true, ".htm": true, ".txt": true,
}

// UploadResume accepts a multipart resume file, stores it, and returns the
// analysis score and feedback.
func (h *Handler) UploadResume(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	file, err := c.FormFile("resume")
	if err != nil {
		response.BadRequest(c, "no file uploaded")
		return
	}
	if file.Size > h.MaxUploadBytes {
		response.BadRequest(c, fmt.Sprintf("file too large, maximum size is %d bytes", h.MaxUploadBytes))
		return
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		response.BadRequest(c, fmt.Sprintf("file type %s not allowed, upload PDF, DOC, DOCX, HTML, or TXT", ext))
		return
	}

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		h.Logger.Sugar().Errorw("failed to create upload dir", "dir", h.UploadDir, "err", err)
		response.InternalError(c, "")
		return
	}
	dst := filepath.Join(h.UploadDir, fmt.Sprintf("resume-%s%s", uuid.NewString(), ext))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		h.Logger.Sugar().Errorw("failed to save upload", "err", err)
		response.InternalError(c, "")
		return
	}

	jobRole := c.PostForm("job_role")

	res, err := h.Resumes.Analyze(c.Request.Context(), claims.UserID, jobRole, dst)
	if err != nil {
		// keep nothing around for inputs we could not process
		_ = os.Remove(dst)
		switch {
		case errors.Is(err, resume.ErrUnsupportedFile), errors.Is(err, resume.ErrEmptyResume):
			response.BadRequest(c, err.Error())
		default:
			h.Logger.Sugar().Errorw("resume analysis failed", "user_id", claims.UserID, "err", err)
			response.InternalError(c, "error analyzing resume")
		}
		return
	}

	response.OK(c, res)
}

// BuildResume generates resume text from structured builder data.
func (h *Handler) BuildResume(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.BuildResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.Resumes.Build(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, resume.ErrEmptyBuildInput) {
			response.BadRequest(c, err.Error())
			return
		}
		h.Logger.Sugar().Errorw("build resume failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "error building resume")
		return
	}

	response.OK(c, res)
}

// SaveResume persists builder data without generating content.
func (h *Handler) SaveResume(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	var req model.SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	res, err := h.Resumes.SaveBuilderData(c.Request.Context(), claims.UserID, &req)
	if err != nil {
		if errors.Is(err, resume.ErrMissingFullName) {
			response.BadRequest(c, err.Error())
			return
		}
		h.Logger.Sugar().Errorw("save resume failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "error saving resume data")
		return
	}

	response.Created(c, res)
}

func (h *Handler) ListResumes(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	resumes, err := h.Resumes.ListResumes(c.Request.Context(), claims.UserID)
	if err != nil {
		h.Logger.Sugar().Errorw("list resumes failed", "user_id", claims.UserID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, resumes)
}

func (h *Handler) GetResume(c *gin.Context) {
	claims := h.claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid resume id")
		return
	}

	res, err := h.Resumes.GetResume(c.Request.Context(), claims.UserID, resumeID)
	if err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			response.NotFound(c, "resume not found")
			return
		}
		h.Logger.Sugar().Errorw("get resume failed", "resume_id", resumeID, "err", err)
		response.InternalError(c, "")
		return
	}

	response.OK(c, res)
}

// ResumeSuggestions returns role-specific resume advice.
func (h *Handler) ResumeSuggestions(c *gin.Context) {
	var req model.SuggestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "job role is required")
		return
	}

	response.OK(c, model.SuggestionsResponse{
		JobRole:     req.JobRole,
		Suggestions: resume.Suggestions(req.JobRole),
	})
}
