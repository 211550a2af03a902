package service

import (
	"context"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/repository"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// DashboardStats aggregates the admin dashboard counters.
type DashboardStats struct {
	TotalProperties   int64 `json:"totalProperties"`
	PropertiesForSale int64 `json:"propertiesForSale"`
	PropertiesForRent int64 `json:"propertiesForRent"`
	SoldProperties    int64 `json:"soldProperties"`
	TotalInquiries    int64 `json:"totalInquiries"`
	NewInquiries      int64 `json:"newInquiries"`
	TotalUsers        int64 `json:"totalUsers"`
}

// DashboardService computes aggregate counts for the admin overview.
type DashboardService struct {
	properties repository.PropertyRepository
	inquiries  repository.InquiryRepository
	users      repository.UserRepository
}

// NewDashboardService builds the service.
func NewDashboardService(properties repository.PropertyRepository, inquiries repository.InquiryRepository, users repository.UserRepository) *DashboardService {
	return &DashboardService{properties: properties, inquiries: inquiries, users: users}
}

// Stats gathers the counters in one pass.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalProperties, err = s.properties.CountAll(ctx); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.PropertiesForSale, err = s.properties.CountByStatus(ctx, domain.StatusForSale); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.PropertiesForRent, err = s.properties.CountByStatus(ctx, domain.StatusForRent); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.SoldProperties, err = s.properties.CountByStatus(ctx, domain.StatusSold); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.TotalInquiries, err = s.inquiries.Count(ctx); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.NewInquiries, err = s.inquiries.CountByStatus(ctx, domain.InquiryStatusNew); err != nil {
		return nil, apperrors.MapError(err)
	}
	if stats.TotalUsers, err = s.users.CountByRole(ctx, domain.RoleUser); err != nil {
		return nil, apperrors.MapError(err)
	}
	return stats, nil
}
