package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

// ChecklistRepository persists ordered sub-tasks of a ticket.
type ChecklistRepository interface {
	Create(ctx context.Context, item *domain.ChecklistItem) error
	CreateBulk(ctx context.Context, items []domain.ChecklistItem) ([]domain.ChecklistItem, error)
	Update(ctx context.Context, item *domain.ChecklistItem) error
	GetByID(ctx context.Context, id string) (*domain.ChecklistItem, error)
	ListByTicket(ctx context.Context, ticketID string) ([]domain.ChecklistItem, error)
	// MaxPosition returns -1 when the ticket has no items yet.
	MaxPosition(ctx context.Context, ticketID string) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteByTicket(ctx context.Context, ticketID string) error
}

type checklistRepository struct {
	pool *pgxpool.Pool
}

// NewChecklistRepository constructs repository.
func NewChecklistRepository(pool *pgxpool.Pool) ChecklistRepository {
	return &checklistRepository{pool: pool}
}

func (r *checklistRepository) Create(ctx context.Context, item *domain.ChecklistItem) error {
	const query = `
        INSERT INTO ticket_checklists (ticket_id, label, completed, position)
        VALUES ($1,$2,$3,$4)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		item.TicketID,
		item.Label,
		item.Completed,
		item.Position,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *checklistRepository) CreateBulk(ctx context.Context, items []domain.ChecklistItem) ([]domain.ChecklistItem, error) {
	created := make([]domain.ChecklistItem, 0, len(items))
	for i := range items {
		item := items[i]
		if err := r.Create(ctx, &item); err != nil {
			return nil, err
		}
		created = append(created, item)
	}
	return created, nil
}

func (r *checklistRepository) Update(ctx context.Context, item *domain.ChecklistItem) error {
	const query = `
        UPDATE ticket_checklists SET label=$1, completed=$2, position=$3, updated_at=NOW()
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query, item.Label, item.Completed, item.Position, item.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *checklistRepository) GetByID(ctx context.Context, id string) (*domain.ChecklistItem, error) {
	const query = `
        SELECT id, ticket_id, label, completed, position, created_at, updated_at
        FROM ticket_checklists WHERE id=$1`
	var item domain.ChecklistItem
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.TicketID,
		&item.Label,
		&item.Completed,
		&item.Position,
		&item.CreatedAt,
		&item.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *checklistRepository) ListByTicket(ctx context.Context, ticketID string) ([]domain.ChecklistItem, error) {
	const query = `
        SELECT id, ticket_id, label, completed, position, created_at, updated_at
        FROM ticket_checklists WHERE ticket_id=$1 ORDER BY position ASC`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChecklistItem
	for rows.Next() {
		var item domain.ChecklistItem
		if err := rows.Scan(
			&item.ID,
			&item.TicketID,
			&item.Label,
			&item.Completed,
			&item.Position,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}

func (r *checklistRepository) MaxPosition(ctx context.Context, ticketID string) (int, error) {
	const query = `
        SELECT COALESCE(MAX(position), -1)
        FROM ticket_checklists WHERE ticket_id=$1`
	var max int
	if err := r.pool.QueryRow(ctx, query, ticketID).Scan(&max); err != nil {
		return 0, err
	}
	return max, nil
}

func (r *checklistRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM ticket_checklists WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *checklistRepository) DeleteByTicket(ctx context.Context, ticketID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM ticket_checklists WHERE ticket_id=$1`, ticketID)
	return err
}
