package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/dto"
	"github.com/spec-kit/realestate-service/internal/service"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// AdminHandler exposes the admin dashboard and management endpoints. Every
// route behind it is gated to role=admin at registration.
type AdminHandler struct {
	dashboard  *service.DashboardService
	properties *service.PropertyService
	agents     *service.AgentService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(dashboard *service.DashboardService, properties *service.PropertyService, agents *service.AgentService) *AdminHandler {
	return &AdminHandler{dashboard: dashboard, properties: properties, agents: agents}
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.dashboard.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": stats})
}

// Properties handles GET /api/admin/properties.
func (h *AdminHandler) Properties(c *fiber.Ctx) error {
	listings, err := h.properties.ListAll(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.PropertyResponse, 0, len(listings))
	for i := range listings {
		items = append(items, dto.NewPropertyWithAgentResponse(&listings[i]))
	}
	return c.JSON(fiber.Map{"success": true, "count": len(items), "data": items})
}

// UpdateAgentProfile handles PUT /api/admin/agents/:id.
func (h *AdminHandler) UpdateAgentProfile(c *fiber.Ctx) error {
	var req dto.UpdateAgentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	agent, err := h.agents.UpdateAgentProfile(c.UserContext(), c.Params("id"), service.AgentProfileUpdate{
		Name:         req.Name,
		Phone:        req.Phone,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
		AgentInfo:    req.AgentInfo,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewUserResponse(agent)})
}
