package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/repository"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `INSERT INTO user_sessions (id, user_id, email, name, auth_type, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING created_at`
	return r.db.QueryRowContext(ctx, query, s.ID, s.UserID, s.Email, s.Name, s.AuthType, s.ExpiresAt, time.Now()).
		Scan(&s.CreatedAt)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s := &domain.Session{}
	query := `SELECT id, user_id, email, name, auth_type, expires_at, created_at FROM user_sessions WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&s.ID, &s.UserID, &s.Email, &s.Name, &s.AuthType, &s.ExpiresAt, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_sessions WHERE id = $1`, id)
	return err
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM user_sessions WHERE expires_at < $1`, time.Now())
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
