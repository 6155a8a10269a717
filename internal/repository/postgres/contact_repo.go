package postgres

import (
	"context"
	"errors"

	"go-publishing-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepo struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepo{db: db}
}

func (r *contactRepo) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, name, email, subject, message, appointment_date, appointment_time, contact_type, affiliation, phone, status, priority, auto_response, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.Name, sub.Email, sub.Subject, sub.Message,
		sub.AppointmentDate, sub.AppointmentTime, sub.ContactType,
		sub.Affiliation, sub.Phone, sub.Status, sub.Priority,
		sub.AutoResponse, sub.CreatedAt,
	)
	return err
}

func (r *contactRepo) GetByID(ctx context.Context, id string) (*domain.ContactSubmission, error) {
	query := `SELECT id, name, email, subject, message, appointment_date, appointment_time, contact_type, affiliation, phone, status, priority, auto_response, created_at
              FROM contact_submissions WHERE id = $1`
	var sub domain.ContactSubmission
	err := r.db.QueryRow(ctx, query, id).Scan(
		&sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message,
		&sub.AppointmentDate, &sub.AppointmentTime, &sub.ContactType,
		&sub.Affiliation, &sub.Phone, &sub.Status, &sub.Priority,
		&sub.AutoResponse, &sub.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *contactRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, int64, error) {
	query := `SELECT id, name, email, subject, message, appointment_date, appointment_time, contact_type, affiliation, phone, status, priority, auto_response, created_at
              FROM contact_submissions ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var subs []domain.ContactSubmission
	for rows.Next() {
		var sub domain.ContactSubmission
		if err := rows.Scan(
			&sub.ID, &sub.Name, &sub.Email, &sub.Subject, &sub.Message,
			&sub.AppointmentDate, &sub.AppointmentTime, &sub.ContactType,
			&sub.Affiliation, &sub.Phone, &sub.Status, &sub.Priority,
			&sub.AutoResponse, &sub.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		subs = append(subs, sub)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_submissions`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return subs, total, nil
}
