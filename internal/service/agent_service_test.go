package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/realestate-service/internal/domain"
)

func TestListAgentsExcludesOtherRoles(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAgentService(users)
	ctx := context.Background()

	newTestAgent(t, users, "first")
	newTestAgent(t, users, "second")
	newTestAdmin(t, users)
	require.NoError(t, users.Create(ctx, &domain.User{Name: "Visitor", Email: "v@x.com", Role: domain.RoleUser, Active: true}))

	agents, err := svc.ListAgents(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 2)
	for _, agent := range agents {
		assert.Equal(t, domain.RoleAgent, agent.Role)
	}
	// newest first
	assert.Equal(t, "second", agents[0].Name)
}

func TestGetAgentRejectsNonAgentID(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAgentService(users)
	admin := newTestAdmin(t, users)

	_, err := svc.GetAgent(context.Background(), admin.ID)
	requireStatus(t, err, 404)

	_, err = svc.GetAgent(context.Background(), "no-such-id")
	requireStatus(t, err, 404)
}

func TestUpdateAgentProfile(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAgentService(users)
	agent := newTestAgent(t, users, "profiled")
	ctx := context.Background()

	bio := "Twenty years selling ranches."
	phone := "+1 555 0100"
	updated, err := svc.UpdateAgentProfile(ctx, agent.ID, AgentProfileUpdate{
		Bio:   &bio,
		Phone: &phone,
		AgentInfo: &domain.AgentInfo{
			LicenseNumber:   "TX-100",
			ExperienceYears: 20,
			Specializations: []string{"ranches"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, phone, updated.Phone)
	require.NotNil(t, updated.AgentInfo)
	assert.Equal(t, "TX-100", updated.AgentInfo.LicenseNumber)
	// untouched fields survive
	assert.Equal(t, "profiled", updated.Name)

	blank := "   "
	_, err = svc.UpdateAgentProfile(ctx, agent.ID, AgentProfileUpdate{Name: &blank})
	requireStatus(t, err, 400)

	long := strings.Repeat("x", 501)
	_, err = svc.UpdateAgentProfile(ctx, agent.ID, AgentProfileUpdate{Bio: &long})
	requireStatus(t, err, 400)
}
