package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Antonk123/latest-it-ticketing/internal/api/dto"
	"github.com/Antonk123/latest-it-ticketing/internal/service"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// PublicIntakeHandler serves the unauthenticated submission endpoint. Its
// response envelope ({success, ticketId} / {error}) is a public contract,
// so errors are rendered here instead of the staff error middleware.
type PublicIntakeHandler struct {
	intake *service.IntakeService
}

// NewPublicIntakeHandler constructs handler.
func NewPublicIntakeHandler(intake *service.IntakeService) *PublicIntakeHandler {
	return &PublicIntakeHandler{intake: intake}
}

// Submit POST /public/tickets.
func (h *PublicIntakeHandler) Submit(c *fiber.Ctx) error {
	var req dto.PublicTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.PublicErrorResponse{Error: "invalid JSON payload"})
	}

	ticketID, err := h.intake.Submit(c.UserContext(), service.PublicSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
	})
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) {
			return c.Status(domainErr.HTTPStatus).JSON(dto.PublicErrorResponse{Error: domainErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.PublicErrorResponse{Error: "an unexpected error occurred"})
	}

	return c.JSON(dto.PublicTicketResponse{Success: true, TicketID: ticketID})
}
