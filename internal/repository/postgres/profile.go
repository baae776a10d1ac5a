package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/repository"
)

type profileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, p *domain.UserProfile) error {
	query := `INSERT INTO user_profiles (user_id, email, name, phone, user_type, club_name, org_number, municipality, postal_code, auth_type, is_verified, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $12) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		p.UserID, p.Email, p.Name, p.Phone, p.UserType, p.ClubName, p.OrgNumber,
		p.Municipality, p.PostalCode, p.AuthType, p.IsVerified, time.Now(),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	p := &domain.UserProfile{}
	query := `SELECT id, user_id, email, name, phone, user_type, club_name, org_number, municipality, postal_code, auth_type, is_verified, created_at, updated_at
	          FROM user_profiles WHERE user_id = $1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Email, &p.Name, &p.Phone, &p.UserType, &p.ClubName,
		&p.OrgNumber, &p.Municipality, &p.PostalCode, &p.AuthType, &p.IsVerified,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update rewrites the editable profile fields. email, auth_type and
// is_verified are not client-editable and stay untouched here; is_verified
// is flipped manually in the database when a club is vetted.
func (r *profileRepository) Update(ctx context.Context, p *domain.UserProfile) error {
	query := `UPDATE user_profiles SET name=$1, phone=$2, user_type=$3, club_name=$4, org_number=$5, municipality=$6, postal_code=$7, updated_at=$8 WHERE user_id=$9`
	result, err := r.db.ExecContext(ctx, query,
		p.Name, p.Phone, p.UserType, p.ClubName, p.OrgNumber, p.Municipality,
		p.PostalCode, time.Now(), p.UserID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
