package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pvmarket-backend/internal/domain"
	"pvmarket-backend/internal/repository"

	"github.com/lib/pq"
)

const poleColumns = `id, owner_id, length_cm, weight_lbs, brand, condition_rating, status, municipality, postal_code, flex_rating, production_year, serial_number, internal_notes, price_weekly, price_sale, created_at, updated_at`

type poleRepository struct {
	db *sql.DB
}

func NewPoleRepository(db *sql.DB) repository.PoleRepository {
	return &poleRepository{db: db}
}

func (r *poleRepository) Create(ctx context.Context, p *domain.Pole) error {
	query := `INSERT INTO poles (owner_id, length_cm, weight_lbs, brand, condition_rating, status, municipality, postal_code, flex_rating, production_year, serial_number, internal_notes, price_weekly, price_sale, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15) RETURNING id, created_at, updated_at`
	return r.db.QueryRowContext(ctx, query,
		p.OwnerID, p.LengthCM, p.WeightLbs, p.Brand, p.ConditionRating, p.Status,
		p.Municipality, p.PostalCode, p.FlexRating, p.ProductionYear, p.SerialNumber,
		p.InternalNotes, p.PriceWeekly, p.PriceSale, time.Now(),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *poleRepository) GetByID(ctx context.Context, id int64) (*domain.Pole, error) {
	p := &domain.Pole{}
	query := `SELECT ` + poleColumns + ` FROM poles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.LengthCM, &p.WeightLbs, &p.Brand, &p.ConditionRating,
		&p.Status, &p.Municipality, &p.PostalCode, &p.FlexRating, &p.ProductionYear,
		&p.SerialNumber, &p.InternalNotes, &p.PriceWeekly, &p.PriceSale,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByIDWithOwner joins the owner's public profile fields for display to
// non-owner viewers. A pole whose owner has no profile row still resolves;
// Owner stays nil.
func (r *poleRepository) GetByIDWithOwner(ctx context.Context, id int64) (*domain.Pole, error) {
	p := &domain.Pole{}
	query := `SELECT p.id, p.owner_id, p.length_cm, p.weight_lbs, p.brand, p.condition_rating, p.status, p.municipality, p.postal_code, p.flex_rating, p.production_year, p.serial_number, p.internal_notes, p.price_weekly, p.price_sale, p.created_at, p.updated_at,
	                 up.name, up.email, up.club_name
	          FROM poles p
	          LEFT JOIN user_profiles up ON up.user_id = p.owner_id
	          WHERE p.id = $1`
	var ownerName, ownerClub sql.NullString
	var ownerEmail sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.OwnerID, &p.LengthCM, &p.WeightLbs, &p.Brand, &p.ConditionRating,
		&p.Status, &p.Municipality, &p.PostalCode, &p.FlexRating, &p.ProductionYear,
		&p.SerialNumber, &p.InternalNotes, &p.PriceWeekly, &p.PriceSale,
		&p.CreatedAt, &p.UpdatedAt, &ownerName, &ownerEmail, &ownerClub)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if ownerEmail.Valid {
		owner := &domain.OwnerInfo{Email: ownerEmail.String}
		if ownerName.Valid {
			owner.Name = &ownerName.String
		}
		if ownerClub.Valid {
			owner.ClubName = &ownerClub.String
		}
		p.Owner = owner
	}
	return p, nil
}

// Update applies a full-field update. owner_id is never written; it is
// immutable after creation.
func (r *poleRepository) Update(ctx context.Context, p *domain.Pole) error {
	query := `UPDATE poles SET length_cm=$1, weight_lbs=$2, brand=$3, condition_rating=$4, status=$5, municipality=$6, postal_code=$7, flex_rating=$8, production_year=$9, serial_number=$10, internal_notes=$11, price_weekly=$12, price_sale=$13, updated_at=$14 WHERE id=$15`
	result, err := r.db.ExecContext(ctx, query,
		p.LengthCM, p.WeightLbs, p.Brand, p.ConditionRating, p.Status,
		p.Municipality, p.PostalCode, p.FlexRating, p.ProductionYear, p.SerialNumber,
		p.InternalNotes, p.PriceWeekly, p.PriceSale, time.Now(), p.ID)
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

func (r *poleRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM poles WHERE id = $1`, id)
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

func (r *poleRepository) ListByOwner(ctx context.Context, ownerID string, order domain.SortOrder) ([]domain.Pole, error) {
	query := `SELECT ` + poleColumns + ` FROM poles WHERE owner_id = $1 ` + orderClause(order)
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPoles(rows)
}

// filterPredicates is the fixed-order mapping from filter field to SQL
// predicate. Each present field contributes exactly one conjunctive clause;
// ranges are inclusive at both ends. RadiusKM is deliberately absent: the
// field is accepted on the wire but consumed by no query path.
var filterPredicates = []struct {
	applies func(f domain.SearchFilters) bool
	build   func(f domain.SearchFilters, idx int) (string, interface{})
}{
	{
		applies: func(f domain.SearchFilters) bool { return f.LengthMin != nil },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			return fmt.Sprintf("length_cm >= $%d", idx), *f.LengthMin
		},
	},
	{
		applies: func(f domain.SearchFilters) bool { return f.LengthMax != nil },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			return fmt.Sprintf("length_cm <= $%d", idx), *f.LengthMax
		},
	},
	{
		applies: func(f domain.SearchFilters) bool { return f.WeightMin != nil },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			return fmt.Sprintf("weight_lbs >= $%d", idx), *f.WeightMin
		},
	},
	{
		applies: func(f domain.SearchFilters) bool { return f.WeightMax != nil },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			return fmt.Sprintf("weight_lbs <= $%d", idx), *f.WeightMax
		},
	},
	{
		applies: func(f domain.SearchFilters) bool { return f.Municipality != "" },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			return fmt.Sprintf("municipality = $%d", idx), f.Municipality
		},
	},
	{
		applies: func(f domain.SearchFilters) bool { return f.Brand != "" },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			return fmt.Sprintf("brand = $%d", idx), f.Brand
		},
	},
	{
		applies: func(f domain.SearchFilters) bool { return f.ConditionMin != nil },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			return fmt.Sprintf("condition_rating >= $%d", idx), *f.ConditionMin
		},
	},
	{
		applies: func(f domain.SearchFilters) bool { return len(f.Statuses) > 0 },
		build: func(f domain.SearchFilters, idx int) (string, interface{}) {
			statuses := make([]string, len(f.Statuses))
			for i, s := range f.Statuses {
				statuses[i] = string(s)
			}
			return fmt.Sprintf("status = ANY($%d)", idx), pq.Array(statuses)
		},
	},
}

// Search translates the sparse filter set into a single query. All execution
// is delegated to the database; any error propagates whole to the caller.
func (r *poleRepository) Search(ctx context.Context, filters domain.SearchFilters, order domain.SortOrder) ([]domain.Pole, error) {
	query := `SELECT ` + poleColumns + ` FROM poles`

	var args []interface{}
	argIdx := 1
	for _, pred := range filterPredicates {
		if !pred.applies(filters) {
			continue
		}
		clause, arg := pred.build(filters, argIdx)
		if argIdx == 1 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
		args = append(args, arg)
		argIdx++
	}

	query += " " + orderClause(order)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPoles(rows)
}

func orderClause(order domain.SortOrder) string {
	if order == domain.SortByNewest {
		return "ORDER BY created_at DESC"
	}
	return "ORDER BY length_cm ASC"
}

func scanPoles(rows *sql.Rows) ([]domain.Pole, error) {
	var poles []domain.Pole
	for rows.Next() {
		var p domain.Pole
		if err := rows.Scan(
			&p.ID, &p.OwnerID, &p.LengthCM, &p.WeightLbs, &p.Brand, &p.ConditionRating,
			&p.Status, &p.Municipality, &p.PostalCode, &p.FlexRating, &p.ProductionYear,
			&p.SerialNumber, &p.InternalNotes, &p.PriceWeekly, &p.PriceSale,
			&p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		poles = append(poles, p)
	}
	return poles, rows.Err()
}
