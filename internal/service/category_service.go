package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
	"github.com/Antonk123/latest-it-ticketing/internal/repository"
	"github.com/Antonk123/latest-it-ticketing/internal/validate"
	apperrors "github.com/Antonk123/latest-it-ticketing/pkg/util"
)

// CategoryService manages the ticket label taxonomy.
type CategoryService struct {
	categories repository.CategoryRepository
}

// NewCategoryService constructs the service.
func NewCategoryService(categories repository.CategoryRepository) *CategoryService {
	return &CategoryService{categories: categories}
}

// List returns every category ordered by label.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return categories, nil
}

// Create validates the label, derives its slug, and persists it.
func (s *CategoryService) Create(ctx context.Context, label string) (*domain.Category, error) {
	var v validate.Violations
	v.RequiredText("label", label, validate.MaxCategoryLen)
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message(), nil)
	}
	trimmed := strings.TrimSpace(label)
	category := &domain.Category{
		Label: trimmed,
		Slug:  Slugify(trimmed),
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return category, nil
}

// Update renames a category; the slug is re-derived from the new label.
func (s *CategoryService) Update(ctx context.Context, id, label string) (*domain.Category, error) {
	var v validate.Violations
	v.RequiredText("label", label, validate.MaxCategoryLen)
	if !v.OK() {
		return nil, apperrors.NewValidationError(v.Message(), nil)
	}
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("category", map[string]any{"id": id})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	category.Label = strings.TrimSpace(label)
	category.Slug = Slugify(category.Label)
	if err := s.categories.Update(ctx, category); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	return category, nil
}

// Delete removes a category. Tickets referencing it become uncategorized
// via the schema's ON DELETE SET NULL.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("category", map[string]any{"id": id})
		}
		return apperrors.NewPersistenceError(err)
	}
	return nil
}

// Slugify lowercases the label and collapses runs of whitespace into
// single hyphens.
func Slugify(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}
