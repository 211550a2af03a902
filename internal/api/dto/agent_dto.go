package dto

import "github.com/spec-kit/realestate-service/internal/domain"

// UpdateAgentProfileRequest is the admin-side partial profile edit.
type UpdateAgentProfileRequest struct {
	Name         *string           `json:"name" validate:"omitempty,min=1"`
	Phone        *string           `json:"phone"`
	Bio          *string           `json:"bio" validate:"omitempty,max=500"`
	ProfileImage *string           `json:"profileImage"`
	AgentInfo    *domain.AgentInfo `json:"agentInfo"`
}
