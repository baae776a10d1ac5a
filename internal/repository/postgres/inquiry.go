package postgres

import (
	"context"
	"database/sql"
	"time"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/repository"
)

type inquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inq *domain.PoleInquiry) error {
	query := `INSERT INTO pole_inquiries (pole_id, owner_email, inquirer_email, inquirer_name, message, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		inq.PoleID, inq.OwnerEmail, inq.InquirerEmail, inq.InquirerName, inq.Message, time.Now(),
	).Scan(&inq.ID, &inq.CreatedAt)
}

func (r *inquiryRepository) ListUnnotified(ctx context.Context, limit int) ([]domain.PoleInquiry, error) {
	query := `SELECT id, pole_id, owner_email, inquirer_email, inquirer_name, message, notified_at, created_at
	          FROM pole_inquiries WHERE notified_at IS NULL ORDER BY created_at ASC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.PoleInquiry
	for rows.Next() {
		var inq domain.PoleInquiry
		if err := rows.Scan(&inq.ID, &inq.PoleID, &inq.OwnerEmail, &inq.InquirerEmail,
			&inq.InquirerName, &inq.Message, &inq.NotifiedAt, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

func (r *inquiryRepository) MarkNotified(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `UPDATE pole_inquiries SET notified_at = $1 WHERE id = $2`, time.Now(), id)
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
