package repository

import (
	"fmt"
	"strings"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// PropertyFilter captures the optional listing search parameters. A nil field
// imposes no constraint; set fields compose conjunctively.
type PropertyFilter struct {
	PropertyType *domain.PropertyType
	Status       *domain.ListingStatus
	Featured     *bool
	City         *string
	Bedrooms     *int
	MinPrice     *int64
	MaxPrice     *int64
}

// Compile renders the WHERE clause and its arguments. The same clause backs
// both the page fetch and the total count so the two can never disagree.
func (f PropertyFilter) Compile() (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if f.PropertyType != nil {
		args = append(args, *f.PropertyType)
		clauses = append(clauses, fmt.Sprintf("property_type=$%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, *f.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		clauses = append(clauses, fmt.Sprintf("featured=$%d", len(args)))
	}
	if f.City != nil && strings.TrimSpace(*f.City) != "" {
		args = append(args, "%"+strings.ToLower(strings.TrimSpace(*f.City))+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(location_city) LIKE $%d", len(args)))
	}
	if f.Bedrooms != nil {
		args = append(args, *f.Bedrooms)
		clauses = append(clauses, fmt.Sprintf("bedrooms=$%d", len(args)))
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		clauses = append(clauses, fmt.Sprintf("price >= $%d", len(args)))
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		clauses = append(clauses, fmt.Sprintf("price <= $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

// DefaultPageSize applies when the caller supplies no limit.
const DefaultPageSize = 10

// PageRequest carries pagination bounds for listing queries.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize coerces both bounds to positive integers with the documented
// defaults (page 1, limit 10).
func (p PageRequest) Normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	return p
}

// Offset computes the number of records to skip for the requested page.
func (p PageRequest) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}
