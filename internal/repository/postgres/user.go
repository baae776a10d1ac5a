package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.LocalUser) error {
	query := `INSERT INTO local_users (id, email, password_hash, name, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $5) RETURNING created_at, updated_at`
	return r.db.QueryRowContext(ctx, query, u.ID, u.Email, u.PasswordHash, u.Name, time.Now()).
		Scan(&u.CreatedAt, &u.UpdatedAt)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.LocalUser, error) {
	u := &domain.LocalUser{}
	query := `SELECT id, email, password_hash, name, created_at, updated_at FROM local_users WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByEmail matches case-insensitively; emails are stored lowercased but
// older rows may predate that convention.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.LocalUser, error) {
	u := &domain.LocalUser{}
	query := `SELECT id, email, password_hash, name, created_at, updated_at FROM local_users WHERE lower(email) = lower($1)`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
