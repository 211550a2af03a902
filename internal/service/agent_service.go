package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/repository"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// AgentService exposes agent directory reads and admin-side profile edits.
type AgentService struct {
	users repository.UserRepository
}

// NewAgentService builds the service.
func NewAgentService(users repository.UserRepository) *AgentService {
	return &AgentService{users: users}
}

// AgentProfileUpdate is the partial payload for editing an agent profile.
// Role and active flag are deliberately absent; those change through admin
// user management, not profile edits.
type AgentProfileUpdate struct {
	Name         *string
	Phone        *string
	Bio          *string
	ProfileImage *string
	AgentInfo    *domain.AgentInfo
}

// ListAgents lists every user holding the agent role.
func (s *AgentService) ListAgents(ctx context.Context) ([]domain.User, error) {
	agents, err := s.users.ListByRole(ctx, domain.RoleAgent)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return agents, nil
}

// GetAgent returns a single agent by id; non-agent ids yield NotFound.
func (s *AgentService) GetAgent(ctx context.Context, id string) (*domain.User, error) {
	agent, err := s.users.GetByIDAndRole(ctx, id, domain.RoleAgent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("agent")
		}
		return nil, apperrors.MapError(err)
	}
	return agent, nil
}

// UpdateAgentProfile edits one agent's public profile fields.
func (s *AgentService) UpdateAgentProfile(ctx context.Context, id string, update AgentProfileUpdate) (*domain.User, error) {
	agent, err := s.GetAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, apperrors.NewValidationError("name must not be empty", nil)
		}
		agent.Name = name
	}
	if update.Phone != nil {
		agent.Phone = strings.TrimSpace(*update.Phone)
	}
	if update.Bio != nil {
		if len(*update.Bio) > 500 {
			return nil, apperrors.NewValidationError("bio must be at most 500 characters", nil)
		}
		agent.Bio = *update.Bio
	}
	if update.ProfileImage != nil {
		agent.ProfileImage = *update.ProfileImage
	}
	if update.AgentInfo != nil {
		agent.AgentInfo = update.AgentInfo
	}

	if err := s.users.Update(ctx, agent); err != nil {
		return nil, apperrors.MapError(err)
	}
	return agent, nil
}
