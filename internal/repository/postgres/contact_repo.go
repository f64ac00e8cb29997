package postgres

import (
	"context"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactStore {
	return &contactRepo{db: db}
}

func (r *contactRepo) Store(ctx context.Context, contact *domain.StoredContact) error {
	query := `INSERT INTO contacts (id, name, email, message, source_ip, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Message, contact.SourceIP, contact.StoredAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return count, nil
}

func (r *contactRepo) ListRecent(ctx context.Context, limit int) ([]domain.StoredContact, error) {
	query := `SELECT id, name, email, message, source_ip, created_at
              FROM contacts ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	contacts := make([]domain.StoredContact, 0, limit)
	for rows.Next() {
		var c domain.StoredContact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.SourceIP, &c.StoredAt); err != nil {
			return nil, apperror.Internal(err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return contacts, nil
}
