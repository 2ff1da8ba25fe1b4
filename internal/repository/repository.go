package repository

import "github.com/jackc/pgx/v5/pgxpool"

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Resume  ResumeRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:    UserRepository{db: db},
		Session: SessionRepository{db: db},
		Resume:  ResumeRepository{db: db},
	}
}
