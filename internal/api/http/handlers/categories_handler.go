package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Antonk123/latest-it-ticketing/internal/api/dto"
	"github.com/Antonk123/latest-it-ticketing/internal/service"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// CategoriesHandler manages the label taxonomy endpoints.
type CategoriesHandler struct {
	categories *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categories *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// List GET /categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	categories, err := h.categories.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, dto.CategoryFromDomain(&categories[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	category, err := h.categories.Create(c.UserContext(), req.Label)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.CategoryFromDomain(category)})
}

// Update PUT /categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	category, err := h.categories.Update(c.UserContext(), c.Params("id"), req.Label)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CategoryFromDomain(category)})
}

// Delete DELETE /categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	if err := h.categories.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
