package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Antonk123/latest-it-ticketing/internal/api/dto"
	"github.com/Antonk123/latest-it-ticketing/internal/service"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// ChecklistsHandler manages ticket checklist endpoints.
type ChecklistsHandler struct {
	checklists *service.ChecklistService
}

// NewChecklistsHandler constructs handler.
func NewChecklistsHandler(checklists *service.ChecklistService) *ChecklistsHandler {
	return &ChecklistsHandler{checklists: checklists}
}

// List GET /tickets/:id/checklist.
func (h *ChecklistsHandler) List(c *fiber.Ctx) error {
	items, err := h.checklists.ListByTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	resp := make([]dto.ChecklistItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.ChecklistItemFromDomain(&items[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Add POST /tickets/:id/checklist.
func (h *ChecklistsHandler) Add(c *fiber.Ctx) error {
	var req dto.AddChecklistItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.checklists.Add(c.UserContext(), c.Params("id"), req.Label)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.ChecklistItemFromDomain(item)})
}

// AddBulk POST /tickets/:id/checklist/bulk.
func (h *ChecklistsHandler) AddBulk(c *fiber.Ctx) error {
	var req dto.BulkChecklistRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	items, err := h.checklists.AddBulk(c.UserContext(), c.Params("id"), req.Labels)
	if err != nil {
		return err
	}
	resp := make([]dto.ChecklistItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, dto.ChecklistItemFromDomain(&items[i]))
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": resp})
}

// Update PATCH /checklist/:itemId.
func (h *ChecklistsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateChecklistItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	item, err := h.checklists.Update(c.UserContext(), c.Params("itemId"), service.ChecklistPatch{
		Label:     req.Label,
		Completed: req.Completed,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ChecklistItemFromDomain(item)})
}

// Delete DELETE /checklist/:itemId.
func (h *ChecklistsHandler) Delete(c *fiber.Ctx) error {
	if err := h.checklists.Delete(c.UserContext(), c.Params("itemId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
