package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/dto"
	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/service"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// ContactHandler manages visitor inquiries.
type ContactHandler struct {
	service *service.InquiryService
}

// NewContactHandler constructs handler.
func NewContactHandler(inquiryService *service.InquiryService) *ContactHandler {
	return &ContactHandler{service: inquiryService}
}

// Create handles POST /api/contact (public, no auth).
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	inquiry, err := h.service.Create(c.UserContext(), service.InquiryInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Message:    req.Message,
		PropertyID: req.PropertyID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "data": dto.NewInquiryResponse(inquiry)})
}

// List handles GET /api/contact (admin).
func (h *ContactHandler) List(c *fiber.Ctx) error {
	inquiries, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.InquiryResponse, 0, len(inquiries))
	for i := range inquiries {
		items = append(items, dto.NewInquiryResponse(&inquiries[i]))
	}
	return c.JSON(fiber.Map{"success": true, "count": len(items), "data": items})
}

// UpdateStatus handles PATCH /api/contact/:id (admin).
func (h *ContactHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	inquiry, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), domain.InquiryStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewInquiryResponse(inquiry)})
}
