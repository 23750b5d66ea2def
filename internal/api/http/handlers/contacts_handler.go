package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Antonk123/latest-it-ticketing/internal/api/dto"
	"github.com/Antonk123/latest-it-ticketing/internal/service"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// ContactsHandler manages the requester registry endpoints.
type ContactsHandler struct {
	contacts *service.ContactService
}

// NewContactsHandler constructs handler.
func NewContactsHandler(contacts *service.ContactService) *ContactsHandler {
	return &ContactsHandler{contacts: contacts}
}

// List GET /contacts.
func (h *ContactsHandler) List(c *fiber.Ctx) error {
	contacts, err := h.contacts.List(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.ContactResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, dto.ContactFromDomain(&contacts[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Create POST /contacts.
func (h *ContactsHandler) Create(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contact, err := h.contacts.Create(c.UserContext(), service.ContactInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.ContactFromDomain(contact)})
}

// Get GET /contacts/:id.
func (h *ContactsHandler) Get(c *fiber.Ctx) error {
	contact, err := h.contacts.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	if contact == nil {
		return apperrors.NewNotFound("contact", map[string]any{"id": c.Params("id")})
	}
	return c.JSON(fiber.Map{"data": dto.ContactFromDomain(contact)})
}

// Update PUT /contacts/:id.
func (h *ContactsHandler) Update(c *fiber.Ctx) error {
	var req dto.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	contact, err := h.contacts.Update(c.UserContext(), c.Params("id"), service.ContactInput{
		Name:       req.Name,
		Email:      req.Email,
		Department: req.Department,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.ContactFromDomain(contact)})
}

// Delete DELETE /contacts/:id.
func (h *ContactsHandler) Delete(c *fiber.Ctx) error {
	if err := h.contacts.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
