package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/internal/resume"
	"github.com/pinidurasanjana/AI-Resume-Interview-Coach-Project/pkg/model"
)

// ResumeRepository implements resume.Store on Postgres. Structured builder
// sections are stored as JSONB.
type ResumeRepository struct {
	db *pgxpool.Pool
}

func (r *ResumeRepository) CreateResume(ctx context.Context, res *model.Resume) error {
	now := time.Now()
	res.CreatedAt = now
	res.UpdatedAt = now

	const q = `
INSERT INTO resumes (
	resume_id, user_id, file_path, score, feedback, job_role,
	generated_content, is_generated, is_builder_data,
	personal_info, experience, education, skills, projects, certifications,
	created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`
	_, err := r.db.Exec(ctx, q,
		res.ResumeID, res.UserID, res.FilePath, res.Score, res.Feedback, res.JobRole,
		res.GeneratedContent, res.IsGenerated, res.IsBuilderData,
		res.PersonalInfo, res.Experience, res.Education, res.Skills, res.Projects, res.Certifications,
		res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert resume: %w", err)
	}
	return nil
}

func (r *ResumeRepository) GetResume(ctx context.Context, resumeID, userID uuid.UUID) (*model.Resume, error) {
	const q = `
SELECT resume_id, user_id, file_path, score, feedback, job_role,
	generated_content, is_generated, is_builder_data,
	personal_info, experience, education, skills, projects, certifications,
	created_at, updated_at
FROM resumes
WHERE resume_id = $1 AND user_id = $2
`
	var res model.Resume
	row := r.db.QueryRow(ctx, q, resumeID, userID)
	err := row.Scan(
		&res.ResumeID, &res.UserID, &res.FilePath, &res.Score, &res.Feedback, &res.JobRole,
		&res.GeneratedContent, &res.IsGenerated, &res.IsBuilderData,
		&res.PersonalInfo, &res.Experience, &res.Education, &res.Skills, &res.Projects, &res.Certifications,
		&res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resume.ErrNotFound
		}
		return nil, fmt.Errorf("scan resume: %w", err)
	}
	return &res, nil
}

func (r *ResumeRepository) ListResumes(ctx context.Context, userID uuid.UUID, limit int) ([]model.Resume, error) {
	const q = `
SELECT resume_id, user_id, file_path, score, feedback, job_role,
	generated_content, is_generated, is_builder_data,
	personal_info, experience, education, skills, projects, certifications,
	created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`
	rows, err := r.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query resumes: %w", err)
	}
	defer rows.Close()

	out := make([]model.Resume, 0, limit)
	for rows.Next() {
		var res model.Resume
		if err := rows.Scan(
			&res.ResumeID, &res.UserID, &res.FilePath, &res.Score, &res.Feedback, &res.JobRole,
			&res.GeneratedContent, &res.IsGenerated, &res.IsBuilderData,
			&res.PersonalInfo, &res.Experience, &res.Education, &res.Skills, &res.Projects, &res.Certifications,
			&res.CreatedAt, &res.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan resume row: %w", err)
		}
		out = append(out, res)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}
