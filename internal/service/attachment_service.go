package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
	"github.com/Antonk123/latest-it-ticketing/internal/storage"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// allowedMimeTypes is the upload allow-list: common image and document
// formats.
var allowedMimeTypes = map[string]struct{}{
	"image/jpeg":         {},
	"image/png":          {},
	"image/gif":          {},
	"image/webp":         {},
	"application/pdf":    {},
	"text/plain":         {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
}

// AttachmentService uploads files to object storage and tracks their
// metadata rows.
type AttachmentService struct {
	attachments repository.AttachmentRepository
	tickets     repository.TicketRepository
	objects     storage.ObjectStore
	maxBytes    int64
	logger      *zap.Logger
}

// AttachmentDependencies bundles collaborators for the attachment service.
type AttachmentDependencies struct {
	AttachmentRepo repository.AttachmentRepository
	TicketRepo     repository.TicketRepository
	ObjectStore    storage.ObjectStore
	MaxBytes       int64
	Logger         *zap.Logger
}

// AttachmentView is an attachment with its derived public URL.
type AttachmentView struct {
	domain.Attachment
	URL string
}

// NewAttachmentService constructs the service.
func NewAttachmentService(deps AttachmentDependencies) *AttachmentService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttachmentService{
		attachments: deps.AttachmentRepo,
		tickets:     deps.TicketRepo,
		objects:     deps.ObjectStore,
		maxBytes:    deps.MaxBytes,
		logger:      logger,
	}
}

// ListByTicket returns attachments with derived URLs, oldest first.
func (s *AttachmentService) ListByTicket(ctx context.Context, ticketID string) ([]AttachmentView, error) {
	attachments, err := s.attachments.ListByTicket(ctx, ticketID)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	views := make([]AttachmentView, 0, len(attachments))
	for _, att := range attachments {
		views = append(views, AttachmentView{Attachment: att, URL: s.objects.PublicURL(att.StorageKey)})
	}
	return views, nil
}

// Upload validates size and type, stores the bytes, then records the
// metadata row. The storage write happens first; if the row insert fails
// the uploaded object is removed again.
func (s *AttachmentService) Upload(ctx context.Context, ticketID, fileName, mimeType string, size int64, r io.Reader) (*AttachmentView, error) {
	if size > s.maxBytes {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("file must be %d bytes or less", s.maxBytes), nil)
	}
	if _, ok := allowedMimeTypes[strings.ToLower(strings.TrimSpace(mimeType))]; !ok {
		return nil, apperrors.NewValidationError(
			"invalid file type, allowed: images, PDF, text, Word documents", nil)
	}

	if _, err := s.tickets.GetByID(ctx, ticketID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticketID})
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	key := storageKey(ticketID, fileName)
	if err := s.objects.Upload(ctx, key, r, size); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	attachment := &domain.Attachment{
		TicketID:   ticketID,
		FileName:   fileName,
		StorageKey: key,
		SizeBytes:  size,
		MimeType:   mimeType,
	}
	if err := s.attachments.Create(ctx, attachment); err != nil {
		if rmErr := s.objects.Remove(ctx, []string{key}); rmErr != nil {
			s.logger.Warn("failed to clean up orphaned object",
				zap.String("key", key), zap.Error(rmErr))
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	return &AttachmentView{Attachment: *attachment, URL: s.objects.PublicURL(key)}, nil
}

// Delete removes the metadata row; the object delete is best effort and a
// failure there is only logged.
func (s *AttachmentService) Delete(ctx context.Context, id string) error {
	attachment, err := s.attachments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("attachment", map[string]any{"id": id})
		}
		return apperrors.NewPersistenceError(err)
	}
	if err := s.objects.Remove(ctx, []string{attachment.StorageKey}); err != nil {
		s.logger.Warn("failed to remove attachment object",
			zap.String("key", attachment.StorageKey), zap.Error(err))
	}
	if err := s.attachments.Delete(ctx, id); err != nil {
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// storageKey namespaces objects per ticket and keeps the original
// extension for content-type sniffing on download.
func storageKey(ticketID, fileName string) string {
	ext := path.Ext(fileName)
	return fmt.Sprintf("%s/%d-%s%s", ticketID, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}
