package resume

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

// defaultScore is used when the AI reply carries no parsable Score line.
const defaultScore = 75

const maxPromptChars = 4000

var scorePattern = regexp.MustCompile(`(?i)Score:\s*(\d+)`)

// Analyze extracts text from an uploaded resume file, scores it (via AI when
// available, otherwise a templated mock analysis), and persists the result.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID, jobRole, filePath string) (*model.AnalyzeResumeResponse, error) {
	role := strings.TrimSpace(jobRole)
	if role == "" {
		role = DefaultJobRole
	}

	text, err := ExtractText(filePath)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyResume
	}

	var score int
	var feedback string
	switch {
	case s.ai == nil:
		score = s.mockScore()
		feedback = mockAnalysis(role, score)
	default:
		started := time.Now()
		reply, aiErr := s.ai.Complete(ctx, analysisPrompt(role, text), 1500)
		s.metrics.ObserveAILatency(time.Since(started))
		if aiErr != nil {
			s.logger.Warn("ai resume analysis failed, using fallback",
				zap.String("job_role", role), zap.Error(aiErr))
			s.metrics.RecordAIFallback()
			score = s.mockScore()
			feedback = fallbackAnalysis(role, score)
		} else {
			feedback = reply
			score = ParseScore(reply)
		}
	}

	r := &model.Resume{
		ResumeID: uuid.New(),
		UserID:   userID,
		FilePath: &filePath,
		Score:    score,
		Feedback: feedback,
		JobRole:  role,
	}
	if err := s.store.CreateResume(ctx, r); err != nil {
		return nil, fmt.Errorf("save analysis: %w", err)
	}
	s.metrics.RecordResumeAnalyzed()

	return &model.AnalyzeResumeResponse{
		ResumeID: r.ResumeID,
		Score:    score,
		Feedback: feedback,
		JobRole:  role,
	}, nil
}

// ParseScore extracts the "Score: N" value from analysis text, defaulting
// when absent.
func ParseScore(feedback string) int {
	m := scorePattern.FindStringSubmatch(feedback)
	if m == nil {
		return defaultScore
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return defaultScore
	}
	return score
}

func analysisPrompt(jobRole, resumeText string) string {
	truncated := resumeText
	suffix := ""
	if len(truncated) > maxPromptChars {
		truncated = truncated[:maxPromptChars]
		suffix = " ..."
	}
	return fmt.Sprintf(`You are a professional resume analyzer. Analyze the following resume text and provide a comprehensive evaluation:

Job Role Target: %s

Please provide your analysis in the following format:

Score: [NUMBER]/100

STRENGTHS:
[List 3-5 key strengths]

AREAS FOR IMPROVEMENT:
[List 3-5 specific areas to improve]

MISSING KEYWORDS:
[List important keywords missing for %s role]

ATS OPTIMIZATION:
[Specific suggestions for ATS compatibility]

RECOMMENDATIONS:
[3-5 actionable recommendations]

Resume Text:
%s%s`, jobRole, jobRole, truncated, suffix)
}

func mockAnalysis(jobRole string, score int) string {
	return fmt.Sprintf(`Resume Analysis for %s position:

Score: %d/100

Strengths:
- Clear contact information
- Relevant work experience
- Good formatting structure

Areas for Improvement:
- Add more industry-specific keywords
- Include quantifiable achievements
- Consider adding a professional summary
- Optimize for ATS compatibility

Missing Keywords (based on %s):
- Industry-specific technical skills
- Action verbs for accomplishments
- Relevant certifications

Recommendations:
- Use bullet points for better readability
- Include metrics and numbers where possible
- Tailor content to job requirements

Note: This is a sample analysis. Configure an API key for detailed AI-powered analysis.`, jobRole, score, jobRole)
}

func fallbackAnalysis(jobRole string, score int) string {
	return fmt.Sprintf(`Resume Analysis (Fallback Mode):

Score: %d/100

Your resume has been processed, but detailed AI analysis is currently unavailable.

General Recommendations:
- Ensure clear contact information
- Use action verbs to describe achievements
- Include relevant keywords for %s
- Quantify accomplishments with numbers
- Maintain consistent formatting
- Optimize for ATS systems

Please try again later for detailed AI-powered analysis.`, score, jobRole)
}
