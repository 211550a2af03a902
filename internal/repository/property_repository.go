package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/realestate-service/internal/domain"
)

const propertyColumns = `id, title, description, price,
               location_address, location_city, location_state, location_zip, location_country,
               bedrooms, bathrooms, area, garage, year_built,
               images, property_type, status, featured, agent_id, created_at, updated_at`

// PropertyRepository encapsulates listing persistence.
type PropertyRepository interface {
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	ListWithFilter(ctx context.Context, filter PropertyFilter, page PageRequest) ([]domain.Property, error)
	CountWithFilter(ctx context.Context, filter PropertyFilter) (int64, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Property, error)
	ListAll(ctx context.Context) ([]domain.Property, error)
	CountByStatus(ctx context.Context, status domain.ListingStatus) (int64, error)
	CountAll(ctx context.Context) (int64, error)
}

type propertyRepository struct {
	pool *pgxpool.Pool
}

// NewPropertyRepository instantiates the repository.
func NewPropertyRepository(pool *pgxpool.Pool) PropertyRepository {
	return &propertyRepository{pool: pool}
}

func (r *propertyRepository) Create(ctx context.Context, property *domain.Property) error {
	const query = `
        INSERT INTO properties (title, description, price,
            location_address, location_city, location_state, location_zip, location_country,
            bedrooms, bathrooms, area, garage, year_built,
            images, property_type, status, featured, agent_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		property.Title,
		property.Description,
		property.Price,
		property.Location.Address,
		property.Location.City,
		property.Location.State,
		property.Location.ZipCode,
		property.Location.Country,
		property.Features.Bedrooms,
		property.Features.Bathrooms,
		property.Features.Area,
		property.Features.Garage,
		property.Features.YearBuilt,
		property.Images,
		property.PropertyType,
		property.Status,
		property.Featured,
		property.AgentID,
	).Scan(&property.ID, &property.CreatedAt, &property.UpdatedAt)
}

func (r *propertyRepository) Update(ctx context.Context, property *domain.Property) error {
	const query = `
        UPDATE properties SET title=$1, description=$2, price=$3,
            location_address=$4, location_city=$5, location_state=$6, location_zip=$7, location_country=$8,
            bedrooms=$9, bathrooms=$10, area=$11, garage=$12, year_built=$13,
            images=$14, property_type=$15, status=$16, featured=$17, updated_at=NOW()
        WHERE id=$18`
	cmd, err := r.pool.Exec(ctx, query,
		property.Title,
		property.Description,
		property.Price,
		property.Location.Address,
		property.Location.City,
		property.Location.State,
		property.Location.ZipCode,
		property.Location.Country,
		property.Features.Bedrooms,
		property.Features.Bathrooms,
		property.Features.Area,
		property.Features.Garage,
		property.Features.YearBuilt,
		property.Images,
		property.PropertyType,
		property.Status,
		property.Featured,
		property.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM properties WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *propertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id=$1`
	var property domain.Property
	if err := r.pool.QueryRow(ctx, query, id).Scan(scanTargets(&property)...); err != nil {
		return nil, err
	}
	return &property, nil
}

// ListWithFilter fetches one page, newest first with id as tie-break so
// pagination neither skips nor repeats records on unchanged data.
func (r *propertyRepository) ListWithFilter(ctx context.Context, filter PropertyFilter, page PageRequest) ([]domain.Property, error) {
	where, args := filter.Compile()
	page = page.Normalize()
	query := fmt.Sprintf(`SELECT %s FROM properties WHERE %s ORDER BY created_at DESC, id DESC LIMIT %d OFFSET %d`,
		propertyColumns, where, page.Limit, page.Offset())

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

// CountWithFilter runs the count query over the identical predicate.
func (r *propertyRepository) CountWithFilter(ctx context.Context, filter PropertyFilter) (int64, error) {
	where, args := filter.Compile()
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties WHERE `+where, args...).Scan(&count)
	return count, err
}

func (r *propertyRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Property, error) {
	featured := true
	return r.ListWithFilter(ctx, PropertyFilter{Featured: &featured}, PageRequest{Page: 1, Limit: limit})
}

func (r *propertyRepository) ListAll(ctx context.Context) ([]domain.Property, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+propertyColumns+` FROM properties ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProperties(rows)
}

func (r *propertyRepository) CountByStatus(ctx context.Context, status domain.ListingStatus) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *propertyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count)
	return count, err
}

func scanTargets(p *domain.Property) []any {
	return []any{
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Price,
		&p.Location.Address,
		&p.Location.City,
		&p.Location.State,
		&p.Location.ZipCode,
		&p.Location.Country,
		&p.Features.Bedrooms,
		&p.Features.Bathrooms,
		&p.Features.Area,
		&p.Features.Garage,
		&p.Features.YearBuilt,
		&p.Images,
		&p.PropertyType,
		&p.Status,
		&p.Featured,
		&p.AgentID,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}

func scanProperties(rows pgx.Rows) ([]domain.Property, error) {
	var result []domain.Property
	for rows.Next() {
		var property domain.Property
		if err := rows.Scan(scanTargets(&property)...); err != nil {
			return nil, err
		}
		result = append(result, property)
	}
	return result, rows.Err()
}
