package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "Beginner"
	SkillIntermediate SkillLevel = "Intermediate"
	SkillAdvanced     SkillLevel = "Advanced"
	SkillExpert       SkillLevel = "Expert"
)

type Resume struct {
	ResumeID         uuid.UUID       `json:"resume_id" db:"resume_id"`
	UserID           uuid.UUID       `json:"-" db:"user_id"`
	FilePath         *string         `json:"-" db:"file_path"`
	Score            int             `json:"score" db:"score"`
	Feedback         string          `json:"feedback" db:"feedback"`
	JobRole          string          `json:"job_role" db:"job_role"`
	GeneratedContent string          `json:"generated_content,omitempty" db:"generated_content"`
	IsGenerated      bool            `json:"is_generated" db:"is_generated"`
	IsBuilderData    bool            `json:"is_builder_data" db:"is_builder_data"`
	PersonalInfo     *PersonalInfo   `json:"personal_info,omitempty" db:"personal_info"`
	Experience       []Experience    `json:"experience,omitempty" db:"experience"`
	Education        []Education     `json:"education,omitempty" db:"education"`
	Skills           []Skill         `json:"skills,omitempty" db:"skills"`
	Projects         []Project       `json:"projects,omitempty" db:"projects"`
	Certifications   []Certification `json:"certifications,omitempty" db:"certifications"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

type PersonalInfo struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type Experience struct {
	ID           string   `json:"id,omitempty"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Current      bool     `json:"current,omitempty"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type Education struct {
	ID           string   `json:"id,omitempty"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field,omitempty"`
	StartDate    string   `json:"start_date,omitempty"`
	EndDate      string   `json:"end_date,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

type Skill struct {
	ID       string     `json:"id,omitempty"`
	Name     string     `json:"name"`
	Level    SkillLevel `json:"level,omitempty"`
	Category string     `json:"category,omitempty"`
}

type Project struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	Link         string `json:"link,omitempty"`
	GitHub       string `json:"github,omitempty"`
}

type Certification struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	ExpiryDate   string `json:"expiry_date,omitempty"`
	CredentialID string `json:"credential_id,omitempty"`
}

// SkillList accepts either plain strings or structured skill objects on the
// wire and normalizes both into []Skill at the JSON boundary.
type SkillList []Skill

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]Skill, 0, len(raw))
	for i, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			out = append(out, Skill{ID: strconv.Itoa(i), Name: name, Level: SkillIntermediate})
			continue
		}
		var sk Skill
		if err := json.Unmarshal(item, &sk); err != nil {
			return fmt.Errorf("skill %d: expected string or object: %w", i, err)
		}
		out = append(out, sk)
	}
	*s = out
	return nil
}

// CertificationList mirrors SkillList for the certifications field.
type CertificationList []Certification

func (c *CertificationList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make([]Certification, 0, len(raw))
	for i, item := range raw {
		var name string
		if err := json.Unmarshal(item, &name); err == nil {
			out = append(out, Certification{ID: strconv.Itoa(i), Name: name})
			continue
		}
		var cert Certification
		if err := json.Unmarshal(item, &cert); err != nil {
			return fmt.Errorf("certification %d: expected string or object: %w", i, err)
		}
		out = append(out, cert)
	}
	*c = out
	return nil
}

type BuildResumeRequest struct {
	PersonalInfo   *PersonalInfo     `json:"personal_info"`
	Experience     []Experience      `json:"experience"`
	Education      []Education       `json:"education"`
	Skills         SkillList         `json:"skills"`
	Certifications CertificationList `json:"certifications"`
	JobDescription string            `json:"job_description"`
}

type BuildResumeResponse struct {
	GeneratedResume string  `json:"generated_resume"`
	Resume          *Resume `json:"resume"`
}

type SaveResumeRequest struct {
	PersonalInfo   *PersonalInfo     `json:"personal_info" binding:"required"`
	Experience     []Experience      `json:"experience"`
	Education      []Education       `json:"education"`
	Skills         SkillList         `json:"skills"`
	Projects       []Project         `json:"projects"`
	Certifications CertificationList `json:"certifications"`
}

type AnalyzeResumeResponse struct {
	ResumeID uuid.UUID `json:"resume_id"`
	Score    int       `json:"score"`
	Feedback string    `json:"feedback"`
	JobRole  string    `json:"job_role"`
}

type SuggestionsRequest struct {
	JobRole string `json:"job_role" binding:"required"`
}

type SuggestionsResponse struct {
	JobRole     string   `json:"job_role"`
	Suggestions []string `json:"suggestions"`
}
