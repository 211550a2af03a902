package dto

import (
	"time"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/service"
)

// LocationPayload mirrors the nested location block.
type LocationPayload struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
	Country string `json:"country,omitempty"`
}

// FeaturesPayload mirrors the nested features block.
type FeaturesPayload struct {
	Bedrooms  int  `json:"bedrooms,omitempty" validate:"gte=0"`
	Bathrooms int  `json:"bathrooms,omitempty" validate:"gte=0"`
	Area      int  `json:"area,omitempty" validate:"gte=0"`
	Garage    bool `json:"garage"`
	YearBuilt int  `json:"yearBuilt,omitempty" validate:"gte=0"`
}

// ImagePayload is one gallery entry.
type ImagePayload struct {
	URL     string `json:"url" validate:"required"`
	Caption string `json:"caption,omitempty"`
}

// CreatePropertyRequest is the new-listing payload. Any `agent` field a client
// sends is simply not part of this struct and therefore ignored.
type CreatePropertyRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	// Pointer so an absent price is rejected while an explicit 0 stays legal.
	Price        *int64          `json:"price" validate:"required,gte=0"`
	Location     LocationPayload `json:"location"`
	Features     FeaturesPayload `json:"features"`
	Images       []ImagePayload  `json:"images" validate:"omitempty,dive"`
	PropertyType string          `json:"propertyType" validate:"required,oneof=house apartment condo land commercial"`
	Status       string          `json:"status" validate:"omitempty,oneof=for-sale for-rent sold pending"`
	Featured     bool            `json:"featured"`
}

// UpdatePropertyRequest is the explicit optional-field update payload.
type UpdatePropertyRequest struct {
	Title        *string          `json:"title" validate:"omitempty,min=1"`
	Description  *string          `json:"description" validate:"omitempty,min=1"`
	Price        *int64           `json:"price" validate:"omitempty,gte=0"`
	Location     *LocationPayload `json:"location"`
	Features     *FeaturesPayload `json:"features"`
	Images       []ImagePayload   `json:"images" validate:"omitempty,dive"`
	PropertyType *string          `json:"propertyType" validate:"omitempty,oneof=house apartment condo land commercial"`
	Status       *string          `json:"status" validate:"omitempty,oneof=for-sale for-rent sold pending"`
	Featured     *bool            `json:"featured"`
}

// PropertyResponse is the outward listing shape.
type PropertyResponse struct {
	ID           string                `json:"id"`
	Title        string                `json:"title"`
	Description  string                `json:"description"`
	Price        int64                 `json:"price"`
	Location     domain.Location       `json:"location"`
	Features     domain.Features       `json:"features"`
	Images       []domain.Image        `json:"images"`
	PropertyType domain.PropertyType   `json:"propertyType"`
	Status       domain.ListingStatus  `json:"status"`
	Featured     bool                  `json:"featured"`
	AgentID      string                `json:"agentId"`
	Agent        *service.AgentSummary `json:"agent,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

// NewPropertyResponse maps a bare domain listing.
func NewPropertyResponse(p *domain.Property) PropertyResponse {
	images := p.Images
	if images == nil {
		images = []domain.Image{}
	}
	return PropertyResponse{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Price:        p.Price,
		Location:     p.Location,
		Features:     p.Features,
		Images:       images,
		PropertyType: p.PropertyType,
		Status:       p.Status,
		Featured:     p.Featured,
		AgentID:      p.AgentID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewPropertyWithAgentResponse maps a listing with its agent attached.
func NewPropertyWithAgentResponse(p *service.PropertyWithAgent) PropertyResponse {
	resp := NewPropertyResponse(&p.Property)
	resp.Agent = p.Agent
	return resp
}

// Location converts the payload to its domain form.
func (l LocationPayload) Location() domain.Location {
	return domain.Location{
		Address: l.Address,
		City:    l.City,
		State:   l.State,
		ZipCode: l.ZipCode,
		Country: l.Country,
	}
}

// Features converts the payload to its domain form.
func (f FeaturesPayload) Features() domain.Features {
	return domain.Features{
		Bedrooms:  f.Bedrooms,
		Bathrooms: f.Bathrooms,
		Area:      f.Area,
		Garage:    f.Garage,
		YearBuilt: f.YearBuilt,
	}
}

// Images converts the gallery payload to its domain form.
func Images(payload []ImagePayload) []domain.Image {
	if payload == nil {
		return nil
	}
	images := make([]domain.Image, 0, len(payload))
	for _, img := range payload {
		images = append(images, domain.Image{URL: img.URL, Caption: img.Caption})
	}
	return images
}
