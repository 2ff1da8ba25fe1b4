package resume

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

const notProvided = "Not provided"

// Build generates resume text from structured builder data. With AI the
// score is 85; the template used when AI is unconfigured scores 75 and the
// one used after an AI failure scores 70, matching how much confidence each
// path deserves.
func (s *Service) Build(ctx context.Context, userID uuid.UUID, req *model.BuildResumeRequest) (*model.BuildResumeResponse, error) {
	if req.PersonalInfo == nil && len(req.Experience) == 0 && len(req.Education) == 0 && len(req.Skills) == 0 {
		return nil, ErrEmptyBuildInput
	}

	var content, feedback string
	var score int
	switch {
	case s.ai == nil:
		content = templateResume(req)
		score = defaultScore
		feedback = "Template resume generated. Configure an API key for personalized content."
	default:
		started := time.Now()
		reply, aiErr := s.ai.Complete(ctx, buildPrompt(req), 2000)
		s.metrics.ObserveAILatency(time.Since(started))
		if aiErr != nil {
			s.logger.Warn("ai resume generation failed, using template", zap.Error(aiErr))
			s.metrics.RecordAIFallback()
			content = templateResume(req)
			score = 70
			feedback = "Fallback template generated due to AI service unavailability"
		} else {
			content = reply
			score = 85
			feedback = "AI-generated resume based on provided information"
		}
	}

	r := &model.Resume{
		ResumeID:         uuid.New(),
		UserID:           userID,
		Score:            score,
		Feedback:         feedback,
		JobRole:          DefaultJobRole,
		GeneratedContent: content,
		IsGenerated:      true,
		PersonalInfo:     req.PersonalInfo,
		Experience:       req.Experience,
		Education:        req.Education,
		Skills:           req.Skills,
		Certifications:   req.Certifications,
	}
	if err := s.store.CreateResume(ctx, r); err != nil {
		return nil, fmt.Errorf("save generated resume: %w", err)
	}
	s.metrics.RecordResumeBuilt()

	return &model.BuildResumeResponse{GeneratedResume: content, Resume: r}, nil
}

func buildPrompt(req *model.BuildResumeRequest) string {
	var sb strings.Builder
	sb.WriteString(`You are a professional resume writer. Create a well-formatted, ATS-friendly resume based on the following information:

PERSONAL INFORMATION:
`)
	sb.WriteString(formatPersonalInfo(req.PersonalInfo))
	sb.WriteString("\n\nWORK EXPERIENCE:\n")
	sb.WriteString(formatExperience(req.Experience))
	sb.WriteString("\n\nEDUCATION:\n")
	sb.WriteString(formatEducation(req.Education))
	sb.WriteString("\n\nSKILLS:\n")
	sb.WriteString(formatSkills(req.Skills))
	sb.WriteString("\n\nCERTIFICATIONS:\n")
	sb.WriteString(formatCertifications(req.Certifications))
	if req.JobDescription != "" {
		sb.WriteString("\n\nTARGET JOB DESCRIPTION: ")
		sb.WriteString(req.JobDescription)
	}
	sb.WriteString(`

Please format the resume with:
1. Clear section headers
2. Bullet points for achievements
3. Action verbs
4. Quantifiable results where possible
5. Professional formatting
6. ATS-friendly structure

Format as plain text with clear sections and proper spacing.`)
	return sb.String()
}

func templateResume(req *model.BuildResumeRequest) string {
	name := "PROFESSIONAL"
	contact := "Your Name\nyour.email@example.com"
	summary := "Experienced professional with strong background in the specified field. Proven track record of delivering results and contributing to team success."
	if pi := req.PersonalInfo; pi != nil {
		if pi.FullName != "" {
			name = strings.ToUpper(pi.FullName)
		}
		contact = strings.Join(nonEmpty(pi.FullName, pi.Email, pi.Phone, pi.Location), "\n")
		if pi.Summary != "" {
			summary = pi.Summary
		}
	}

	experience := formatExperience(req.Experience)
	if experience == notProvided {
		experience = "- Previous Role - Company Name\n  Achieved measurable results through dedicated work and collaboration with cross-functional teams."
	}
	skills := formatSkills(req.Skills)
	if skills == notProvided {
		skills = "Technical Skills, Communication, Leadership, Problem-solving"
	}
	education := formatEducation(req.Education)
	if education == notProvided {
		education = "- Degree - Institution Name"
	}

	sections := []string{
		name + " RESUME",
		"CONTACT INFORMATION\n" + contact,
		"PROFESSIONAL SUMMARY\n" + summary,
		"WORK EXPERIENCE\n" + experience,
		"SKILLS\n" + skills,
		"EDUCATION\n" + education,
	}
	if certs := formatCertifications(req.Certifications); certs != notProvided {
		sections = append(sections, "CERTIFICATIONS\n"+certs)
	}
	sections = append(sections, "Note: This is a template resume. Customize it with your specific information.")
	return strings.Join(sections, "\n\n")
}

func formatPersonalInfo(pi *model.PersonalInfo) string {
	if pi == nil {
		return notProvided
	}
	return fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nLocation: %s\nSummary: %s",
		orNotProvided(pi.FullName), orNotProvided(pi.Email), orNotProvided(pi.Phone),
		orNotProvided(pi.Location), orNotProvided(pi.Summary))
}

func formatExperience(exps []model.Experience) string {
	if len(exps) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(exps))
	for _, exp := range exps {
		end := exp.EndDate
		if end == "" || exp.Current {
			end = "Present"
		}
		line := fmt.Sprintf("- %s at %s (%s - %s)", exp.Position, exp.Company, exp.StartDate, end)
		if exp.Description != "" {
			line += "\n  " + exp.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func formatEducation(edus []model.Education) string {
	if len(edus) == 0 {
		return notProvided
	}
	lines := make([]string, 0, len(edus))
	for _, edu := range edus {
		end := edu.EndDate
		if end == "" {
			end = "In progress"
		}
		lines = append(lines, fmt.Sprintf("- %s - %s (%s)", edu.Degree, edu.Institution, end))
	}
	return strings.Join(lines, "\n")
}

func formatSkills(skills []model.Skill) string {
	if len(skills) == 0 {
		return notProvided
	}
	names := make([]string, 0, len(skills))
	for _, sk := range skills {
		names = append(names, sk.Name)
	}
	return strings.Join(names, ", ")
}

func formatCertifications(certs []model.Certification) string {
	if len(certs) == 0 {
		return notProvided
	}
	names := make([]string, 0, len(certs))
	for _, cert := range certs {
		names = append(names, cert.Name)
	}
	return strings.Join(names, ", ")
}

func orNotProvided(v string) string {
	if v == "" {
		return notProvided
	}
	return v
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
