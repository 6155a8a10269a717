package postgres

import (
	"context"
	"errors"

	"go-publishing-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type newsRepo struct {
	db *pgxpool.Pool
}

func NewNewsRepository(db *pgxpool.Pool) domain.NewsRepository {
	return &newsRepo{db: db}
}

func (r *newsRepo) Create(ctx context.Context, item *domain.NewsItem) error {
	query := `INSERT INTO news (title, description, image, category_name, pub_date, is_active, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		item.Title, item.Description, item.Image, item.CategoryName,
		item.PubDate, item.IsActive, item.CreatedAt, item.UpdatedAt,
	).Scan(&item.ID)
	return err
}

func (r *newsRepo) GetByID(ctx context.Context, id int64) (*domain.NewsItem, error) {
	query := `SELECT id, title, description, image, category_name, pub_date, is_active, created_at, updated_at
              FROM news WHERE id = $1`
	var item domain.NewsItem
	err := r.db.QueryRow(ctx, query, id).Scan(
		&item.ID, &item.Title, &item.Description, &item.Image, &item.CategoryName,
		&item.PubDate, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *newsRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.NewsItem, int64, error) {
	query := `SELECT id, title, description, image, category_name, pub_date, is_active, created_at, updated_at
              FROM news ORDER BY pub_date DESC LIMIT $1 OFFSET $2`
	return r.fetch(ctx, query, `SELECT COUNT(*) FROM news`, limit, offset)
}

func (r *newsRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.NewsItem, int64, error) {
	query := `SELECT id, title, description, image, category_name, pub_date, is_active, created_at, updated_at
              FROM news WHERE is_active = TRUE ORDER BY pub_date DESC LIMIT $1 OFFSET $2`
	return r.fetch(ctx, query, `SELECT COUNT(*) FROM news WHERE is_active = TRUE`, limit, offset)
}

func (r *newsRepo) fetch(ctx context.Context, query, countQuery string, limit, offset int) ([]domain.NewsItem, int64, error) {
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.NewsItem
	for rows.Next() {
		var item domain.NewsItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Image, &item.CategoryName,
			&item.PubDate, &item.IsActive, &item.CreatedAt, &item.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *newsRepo) Update(ctx context.Context, item *domain.NewsItem) error {
	query := `UPDATE news SET title = $1, description = $2, image = $3, category_name = $4, pub_date = $5, is_active = $6, updated_at = $7
              WHERE id = $8`
	tag, err := r.db.Exec(ctx, query,
		item.Title, item.Description, item.Image, item.CategoryName,
		item.PubDate, item.IsActive, item.UpdatedAt, item.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *newsRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
