package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Antonk123/latest-it-ticketing/internal/api/dto"
	"github.com/Antonk123/latest-it-ticketing/internal/service"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// AttachmentsHandler manages ticket attachment endpoints.
type AttachmentsHandler struct {
	attachments *service.AttachmentService
}

// NewAttachmentsHandler constructs handler.
func NewAttachmentsHandler(attachments *service.AttachmentService) *AttachmentsHandler {
	return &AttachmentsHandler{attachments: attachments}
}

// List GET /tickets/:id/attachments.
func (h *AttachmentsHandler) List(c *fiber.Ctx) error {
	views, err := h.attachments.ListByTicket(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	resp := make([]dto.AttachmentResponse, 0, len(views))
	for i := range views {
		resp = append(resp, dto.AttachmentFromView(&views[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Upload POST /tickets/:id/attachments (multipart form, field "file").
func (h *AttachmentsHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperrors.NewValidationError("file is required", nil)
	}
	f, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unable to read file", nil)
	}
	defer f.Close()

	view, err := h.attachments.Upload(c.UserContext(),
		c.Params("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		f,
	)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.AttachmentFromView(view)})
}

// Delete DELETE /attachments/:attachmentId.
func (h *AttachmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.attachments.Delete(c.UserContext(), c.Params("attachmentId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
