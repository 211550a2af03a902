package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realestate-service/internal/api/dto"
	"github.com/spec-kit/realestate-service/internal/auth"
	"github.com/spec-kit/realestate-service/internal/domain"
	"github.com/spec-kit/realestate-service/internal/repository"
	"github.com/spec-kit/realestate-service/internal/service"
	apperrors "github.com/spec-kit/realestate-service/pkg/util"
)

// PropertiesHandler manages listing endpoints.
type PropertiesHandler struct {
	service *service.PropertyService
}

// NewPropertiesHandler constructs handler.
func NewPropertiesHandler(propertyService *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{service: propertyService}
}

// List handles GET /api/properties.
func (h *PropertiesHandler) List(c *fiber.Ctx) error {
	filter, page, err := parseListingQuery(c)
	if err != nil {
		return err
	}

	result, err := h.service.List(c.UserContext(), filter, page)
	if err != nil {
		return err
	}

	items := make([]dto.PropertyResponse, 0, len(result.Items))
	for i := range result.Items {
		items = append(items, dto.NewPropertyWithAgentResponse(&result.Items[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"count":   len(items),
		"total":   result.Total,
		"page":    result.Page,
		"pages":   result.Pages,
		"data":    items,
	})
}

// Featured handles GET /api/properties/featured.
func (h *PropertiesHandler) Featured(c *fiber.Ctx) error {
	listings, err := h.service.ListFeatured(c.UserContext())
	if err != nil {
		return err
	}

	items := make([]dto.PropertyResponse, 0, len(listings))
	for i := range listings {
		items = append(items, dto.NewPropertyWithAgentResponse(&listings[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

// Get handles GET /api/properties/:id.
func (h *PropertiesHandler) Get(c *fiber.Ctx) error {
	listing, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewPropertyWithAgentResponse(listing)})
}

// Create handles POST /api/properties.
func (h *PropertiesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.PropertyCreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        *req.Price,
		Location:     req.Location.Location(),
		Features:     req.Features.Features(),
		Images:       dto.Images(req.Images),
		PropertyType: domain.PropertyType(req.PropertyType),
		Status:       domain.ListingStatus(req.Status),
		Featured:     req.Featured,
	}
	listing, err := h.service.Create(c.UserContext(), principal.User, input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"success": true, "data": dto.NewPropertyResponse(listing)})
}

// Update handles PUT /api/properties/:id.
func (h *PropertiesHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Validate(req); err != nil {
		return err
	}

	input := service.PropertyUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Images:      dto.Images(req.Images),
		Featured:    req.Featured,
	}
	if req.Location != nil {
		loc := req.Location.Location()
		input.Location = &loc
	}
	if req.Features != nil {
		features := req.Features.Features()
		input.Features = &features
	}
	if req.PropertyType != nil {
		propertyType := domain.PropertyType(*req.PropertyType)
		input.PropertyType = &propertyType
	}
	if req.Status != nil {
		status := domain.ListingStatus(*req.Status)
		input.Status = &status
	}

	listing, err := h.service.Update(c.UserContext(), principal.User, c.Params("id"), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": dto.NewPropertyResponse(listing)})
}

// Delete handles DELETE /api/properties/:id.
func (h *PropertiesHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.service.Delete(c.UserContext(), principal.User, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "message": "property deleted"})
}

// parseListingQuery translates query parameters into the filter and page
// bounds. Numeric filters reject malformed input; page and limit coerce to
// their defaults.
func parseListingQuery(c *fiber.Ctx) (repository.PropertyFilter, repository.PageRequest, error) {
	filter := repository.PropertyFilter{}
	details := map[string]any{}

	if v := c.Query("propertyType"); v != "" {
		propertyType := domain.PropertyType(v)
		filter.PropertyType = &propertyType
	}
	if v := c.Query("status"); v != "" {
		status := domain.ListingStatus(v)
		filter.Status = &status
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	if v := c.Query("city"); v != "" {
		city := v
		filter.City = &city
	}
	if v := c.Query("bedrooms"); v != "" {
		bedrooms, err := strconv.Atoi(v)
		if err != nil {
			details["bedrooms"] = "must be an integer"
		} else {
			filter.Bedrooms = &bedrooms
		}
	}
	if v := c.Query("minPrice"); v != "" {
		minPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			details["minPrice"] = "must be an integer"
		} else {
			filter.MinPrice = &minPrice
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		maxPrice, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			details["maxPrice"] = "must be an integer"
		} else {
			filter.MaxPrice = &maxPrice
		}
	}

	if len(details) > 0 {
		return filter, repository.PageRequest{}, apperrors.NewValidationError("invalid filter parameters", details)
	}

	page := repository.PageRequest{
		Page:  parseIntOr(c.Query("page"), 1),
		Limit: parseIntOr(c.Query("limit"), repository.DefaultPageSize),
	}
	return filter, page, nil
}

func parseIntOr(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
