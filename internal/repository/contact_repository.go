package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Antonk123/latest-it-ticketing/internal/domain"
)

// ContactRepository manages requester records.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	Update(ctx context.Context, contact *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	// GetByEmail matches case-insensitively on the stored address.
	GetByEmail(ctx context.Context, email string) (*domain.Contact, error)
	List(ctx context.Context) ([]domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	pool *pgxpool.Pool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	const query = `
        INSERT INTO contacts (name, email, department)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		contact.Name,
		contact.Email,
		contact.Department,
	).Scan(&contact.ID, &contact.CreatedAt)
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	const query = `
        UPDATE contacts SET name=$1, email=$2, department=$3
        WHERE id=$4`
	cmd, err := r.pool.Exec(ctx, query,
		contact.Name,
		contact.Email,
		contact.Department,
		contact.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	const query = `
        SELECT id, name, email, department, created_at
        FROM contacts WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *contactRepository) GetByEmail(ctx context.Context, email string) (*domain.Contact, error) {
	const query = `
        SELECT id, name, email, department, created_at
        FROM contacts WHERE LOWER(email)=LOWER($1)`
	return r.fetchSingle(ctx, query, email)
}

func (r *contactRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Contact, error) {
	var contact domain.Contact
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&contact.ID,
		&contact.Name,
		&contact.Email,
		&contact.Department,
		&contact.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const query = `
        SELECT id, name, email, department, created_at
        FROM contacts ORDER BY name ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Contact
	for rows.Next() {
		var contact domain.Contact
		if err := rows.Scan(&contact.ID, &contact.Name, &contact.Email, &contact.Department, &contact.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}
	return result, rows.Err()
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
