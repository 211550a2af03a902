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

// FeaturedPageSize is the fixed size of the featured-listings endpoint.
const FeaturedPageSize = 6

// AgentSummary is the public slice of an agent profile attached to listings.
type AgentSummary struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone,omitempty"`
	ProfileImage string              `json:"profileImage,omitempty"`
	Bio          string              `json:"bio,omitempty"`
	SocialLinks  *domain.SocialLinks `json:"socialLinks,omitempty"`
}

// PropertyWithAgent pairs a listing with its owning agent's public profile.
type PropertyWithAgent struct {
	Property domain.Property `json:"property"`
	Agent    *AgentSummary   `json:"agent,omitempty"`
}

// ListResult is the paginated envelope body for listing queries.
type ListResult struct {
	Items []PropertyWithAgent
	Total int64
	Page  int
	Pages int
}

// PropertyCreateInput carries a new listing payload. The owning agent is never
// taken from the payload; it is forced to the acting user.
type PropertyCreateInput struct {
	Title        string
	Description  string
	Price        int64
	Location     domain.Location
	Features     domain.Features
	Images       []domain.Image
	PropertyType domain.PropertyType
	Status       domain.ListingStatus
	Featured     bool
}

// PropertyUpdateInput is the explicit partial-update payload: nil fields are
// left untouched, set fields are re-validated and replaced.
type PropertyUpdateInput struct {
	Title        *string
	Description  *string
	Price        *int64
	Location     *domain.Location
	Features     *domain.Features
	Images       []domain.Image
	PropertyType *domain.PropertyType
	Status       *domain.ListingStatus
	Featured     *bool
}

// PropertyService orchestrates listing reads and role/ownership-gated writes.
type PropertyService struct {
	properties repository.PropertyRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
	cache      *ListingCache
	logger     *zap.Logger
}

// NewPropertyService builds the service.
func NewPropertyService(properties repository.PropertyRepository, users repository.UserRepository, dispatcher events.Dispatcher, cache *ListingCache, logger *zap.Logger) *PropertyService {
	return &PropertyService{
		properties: properties,
		users:      users,
		dispatcher: dispatcher,
		cache:      cache,
		logger:     logger,
	}
}

// List returns one filtered page plus the total across the whole filter. An
// empty result is not an error.
func (s *PropertyService) List(ctx context.Context, filter repository.PropertyFilter, page repository.PageRequest) (*ListResult, error) {
	page = page.Normalize()

	items, err := s.properties.ListWithFilter(ctx, filter, page)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	total, err := s.properties.CountWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	withAgents, err := s.attachAgents(ctx, items, false)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(page.Limit) - 1) / int64(page.Limit))
	return &ListResult{Items: withAgents, Total: total, Page: page.Page, Pages: pages}, nil
}

// ListFeatured returns up to FeaturedPageSize featured listings, served from
// the cache when fresh.
func (s *PropertyService) ListFeatured(ctx context.Context) ([]PropertyWithAgent, error) {
	if cached, ok := s.cache.GetFeatured(ctx); ok {
		return cached, nil
	}

	items, err := s.properties.ListFeatured(ctx, FeaturedPageSize)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	withAgents, err := s.attachAgents(ctx, items, false)
	if err != nil {
		return nil, err
	}

	s.cache.SetFeatured(ctx, withAgents)
	return withAgents, nil
}

// GetByID returns the full record with the owning agent's public profile.
func (s *PropertyService) GetByID(ctx context.Context, id string) (*PropertyWithAgent, error) {
	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property")
		}
		return nil, apperrors.MapError(err)
	}

	result := &PropertyWithAgent{Property: *property}
	if agent, err := s.users.GetByID(ctx, property.AgentID); err == nil {
		result.Agent = agentSummary(agent, true)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// ListAll returns every listing newest-first, for the admin dashboard.
func (s *PropertyService) ListAll(ctx context.Context) ([]PropertyWithAgent, error) {
	items, err := s.properties.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return s.attachAgents(ctx, items, false)
}

// Create inserts a new listing owned by the acting user.
func (s *PropertyService) Create(ctx context.Context, actor *domain.User, input PropertyCreateInput) (*domain.Property, error) {
	if err := requireListingRole(actor); err != nil {
		return nil, err
	}

	if input.Status == "" {
		input.Status = domain.StatusForSale
	}
	if err := validateListingFields(input.Title, input.Description, input.Price, input.PropertyType, input.Status); err != nil {
		return nil, err
	}

	property := &domain.Property{
		Title:        strings.TrimSpace(input.Title),
		Description:  input.Description,
		Price:        input.Price,
		Location:     input.Location,
		Features:     input.Features,
		Images:       input.Images,
		PropertyType: input.PropertyType,
		Status:       input.Status,
		Featured:     input.Featured,
		AgentID:      actor.ID,
	}
	if property.Images == nil {
		property.Images = []domain.Image{}
	}

	if err := s.properties.Create(ctx, property); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.cache.Invalidate(ctx)
	s.publish(ctx, events.EventPropertyCreated, property.ID, events.PropertyCreatedPayload{
		Title:        property.Title,
		PropertyType: string(property.PropertyType),
		Price:        property.Price,
		AgentID:      property.AgentID,
	})
	return property, nil
}

// Update applies a partial payload. Agents may only modify their own listings;
// admins may modify any.
func (s *PropertyService) Update(ctx context.Context, actor *domain.User, id string, input PropertyUpdateInput) (*domain.Property, error) {
	if err := requireListingRole(actor); err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property")
		}
		return nil, apperrors.MapError(err)
	}
	if err := requireOwnership(actor, property); err != nil {
		return nil, err
	}

	previousStatus := property.Status

	if input.Title != nil {
		property.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		property.Description = *input.Description
	}
	if input.Price != nil {
		property.Price = *input.Price
	}
	if input.Location != nil {
		property.Location = *input.Location
	}
	if input.Features != nil {
		property.Features = *input.Features
	}
	if input.Images != nil {
		property.Images = input.Images
	}
	if input.PropertyType != nil {
		property.PropertyType = *input.PropertyType
	}
	if input.Status != nil {
		property.Status = *input.Status
	}
	if input.Featured != nil {
		property.Featured = *input.Featured
	}

	if err := validateListingFields(property.Title, property.Description, property.Price, property.PropertyType, property.Status); err != nil {
		return nil, err
	}

	if err := s.properties.Update(ctx, property); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("property")
		}
		return nil, apperrors.MapError(err)
	}

	s.cache.Invalidate(ctx)
	if previousStatus != domain.StatusSold && property.Status == domain.StatusSold {
		s.publish(ctx, events.EventPropertySold, property.ID, events.PropertySoldPayload{
			Title:   property.Title,
			Price:   property.Price,
			AgentID: property.AgentID,
		})
	}
	return property, nil
}

// Delete hard-deletes a listing under the same role/ownership gate as Update.
func (s *PropertyService) Delete(ctx context.Context, actor *domain.User, id string) error {
	if err := requireListingRole(actor); err != nil {
		return err
	}

	property, err := s.properties.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("property")
		}
		return apperrors.MapError(err)
	}
	if err := requireOwnership(actor, property); err != nil {
		return err
	}

	if err := s.properties.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("property")
		}
		return apperrors.MapError(err)
	}

	s.cache.Invalidate(ctx)
	return nil
}

func requireListingRole(actor *domain.User) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if actor.Role != domain.RoleAgent && actor.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("agent or admin role required")
	}
	return nil
}

// requireOwnership lets agents touch only their own listings. Admins bypass.
func requireOwnership(actor *domain.User, property *domain.Property) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if property.AgentID != actor.ID {
		return apperrors.NewForbidden("listing belongs to another agent")
	}
	return nil
}

func validateListingFields(title, description string, price int64, propertyType domain.PropertyType, status domain.ListingStatus) error {
	details := map[string]any{}
	if strings.TrimSpace(title) == "" {
		details["title"] = "required"
	}
	if strings.TrimSpace(description) == "" {
		details["description"] = "required"
	}
	if price < 0 {
		details["price"] = "must be non-negative"
	}
	if !domain.ValidPropertyType(propertyType) {
		details["propertyType"] = "invalid value"
	}
	if !domain.ValidListingStatus(status) {
		details["status"] = "invalid value"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid property payload", details)
	}
	return nil
}

func (s *PropertyService) attachAgents(ctx context.Context, items []domain.Property, includeBio bool) ([]PropertyWithAgent, error) {
	result := make([]PropertyWithAgent, 0, len(items))
	agents := make(map[string]*AgentSummary, 2)

	for i := range items {
		entry := PropertyWithAgent{Property: items[i]}
		agentID := items[i].AgentID
		if summary, seen := agents[agentID]; seen {
			entry.Agent = summary
		} else {
			agent, err := s.users.GetByID(ctx, agentID)
			switch {
			case err == nil:
				entry.Agent = agentSummary(agent, includeBio)
			case errors.Is(err, pgx.ErrNoRows):
				// dangling agent reference; listing is still served
			default:
				return nil, apperrors.MapError(err)
			}
			agents[agentID] = entry.Agent
		}
		result = append(result, entry)
	}
	return result, nil
}

func agentSummary(agent *domain.User, full bool) *AgentSummary {
	summary := &AgentSummary{
		ID:           agent.ID,
		Name:         agent.Name,
		Email:        agent.Email,
		Phone:        agent.Phone,
		ProfileImage: agent.ProfileImage,
	}
	if full {
		summary.Bio = agent.Bio
		if agent.AgentInfo != nil {
			links := agent.AgentInfo.SocialLinks
			summary.SocialLinks = &links
		}
	}
	return summary
}

func (s *PropertyService) publish(ctx context.Context, eventType events.EventType, subject string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Subject:   subject,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(eventType)), zap.Error(err))
	}
}
