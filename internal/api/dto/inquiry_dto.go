package dto

import (
	"time"

	"github.com/spec-kit/realestate-service/internal/domain"
)

// CreateInquiryRequest is the public contact payload.
type CreateInquiryRequest struct {
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone,omitempty"`
	Message    string  `json:"message" validate:"required"`
	PropertyID *string `json:"propertyId,omitempty"`
}

// UpdateInquiryStatusRequest moves an inquiry through handling states.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new read replied closed"`
}

// InquiryResponse is the outward inquiry shape.
type InquiryResponse struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone,omitempty"`
	Message    string               `json:"message"`
	PropertyID *string              `json:"propertyId,omitempty"`
	Status     domain.InquiryStatus `json:"status"`
	CreatedAt  time.Time            `json:"createdAt"`
}

// NewInquiryResponse maps a domain inquiry.
func NewInquiryResponse(inquiry *domain.Inquiry) InquiryResponse {
	return InquiryResponse{
		ID:         inquiry.ID,
		Name:       inquiry.Name,
		Email:      inquiry.Email,
		Phone:      inquiry.Phone,
		Message:    inquiry.Message,
		PropertyID: inquiry.PropertyID,
		Status:     inquiry.Status,
		CreatedAt:  inquiry.CreatedAt,
	}
}
