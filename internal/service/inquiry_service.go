package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/events"
	"github.com/spec-kit/realestate-service/internal/repository"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// InquiryService handles visitor contact messages.
type InquiryService struct {
	inquiries  repository.InquiryRepository
	properties repository.PropertyRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewInquiryService builds the service.
func NewInquiryService(inquiries repository.InquiryRepository, properties repository.PropertyRepository, dispatcher events.Dispatcher, logger *zap.Logger) *InquiryService {
	return &InquiryService{
		inquiries:  inquiries,
		properties: properties,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// InquiryInput is the public contact payload.
type InquiryInput struct {
	Name       string
	Email      string
	Phone      string
	Message    string
	PropertyID *string
}

// Create records an inquiry from any visitor, no authentication required.
func (s *InquiryService) Create(ctx context.Context, input InquiryInput) (*domain.Inquiry, error) {
	details := map[string]any{}
	if strings.TrimSpace(input.Name) == "" {
		details["name"] = "required"
	}
	if strings.TrimSpace(input.Email) == "" {
		details["email"] = "required"
	}
	if strings.TrimSpace(input.Message) == "" {
		details["message"] = "required"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid contact payload", details)
	}

	if input.PropertyID != nil && *input.PropertyID != "" {
		if _, err := s.properties.GetByID(ctx, *input.PropertyID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewValidationError("unknown property reference", map[string]any{"propertyId": "not found"})
			}
			return nil, apperrors.MapError(err)
		}
	} else {
		input.PropertyID = nil
	}

	inquiry := &domain.Inquiry{
		Name:       strings.TrimSpace(input.Name),
		Email:      repository.NormalizeEmail(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Message:    input.Message,
		PropertyID: input.PropertyID,
		Status:     domain.InquiryStatusNew,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventInquiryReceived,
			Subject:   inquiry.ID,
			Timestamp: time.Now(),
			Payload: events.InquiryReceivedPayload{
				Name:       inquiry.Name,
				Email:      inquiry.Email,
				PropertyID: inquiry.PropertyID,
			},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("inquiry event publish failed", zap.Error(err))
		}
	}
	return inquiry, nil
}

// List returns every inquiry newest-first.
func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	inquiries, err := s.inquiries.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return inquiries, nil
}

// UpdateStatus moves an inquiry through its handling states.
func (s *InquiryService) UpdateStatus(ctx context.Context, id string, status domain.InquiryStatus) (*domain.Inquiry, error) {
	if !domain.ValidInquiryStatus(status) {
		return nil, apperrors.NewValidationError("invalid inquiry status", map[string]any{"status": "invalid value"})
	}
	inquiry, err := s.inquiries.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("inquiry")
		}
		return nil, apperrors.MapError(err)
	}
	return inquiry, nil
}
