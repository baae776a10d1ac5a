package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/repository"
)

const requestColumns = `id, pole_id, requester_id, owner_id, request_type, status, message, rental_start_date, rental_end_date, agreed_price, created_at, updated_at`

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.PoleRequest) error {
	query := `INSERT INTO pole_requests (pole_id, requester_id, owner_id, request_type, status, message, rental_start_date, rental_end_date, agreed_price, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		req.PoleID, req.RequesterID, req.OwnerID, req.RequestType, req.Status,
		req.Message, req.RentalStartDate, req.RentalEndDate, req.AgreedPrice, time.Now(),
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.PoleRequest, error) {
	req := &domain.PoleRequest{}
	query := `SELECT ` + requestColumns + ` FROM pole_requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.PoleID, &req.RequesterID, &req.OwnerID, &req.RequestType,
		&req.Status, &req.Message, &req.RentalStartDate, &req.RentalEndDate,
		&req.AgreedPrice, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.PoleRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM pole_requests WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.PoleRequest
	for rows.Next() {
		var req domain.PoleRequest
		if err := rows.Scan(
			&req.ID, &req.PoleID, &req.RequesterID, &req.OwnerID, &req.RequestType,
			&req.Status, &req.Message, &req.RentalStartDate, &req.RentalEndDate,
			&req.AgreedPrice, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
