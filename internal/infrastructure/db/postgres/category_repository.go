package postgres

import (
	"context"
	"fmt"

	"github.com/civicdesk/civicdesk-api/internal/core/domain"
	"github.com/civicdesk/civicdesk-api/internal/core/ports"
)

// CategoryRepository implements ports.CategoryRepository on PostgreSQL.
type CategoryRepository struct {
	db *DB
}

func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	err := r.db.q(ctx).QueryRowContext(ctx,
		`INSERT INTO categories (name, description, active)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		category.Name, category.Description, category.Active,
	).Scan(&category.ID, &category.CreatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return nil, domain.ErrCategoryExists
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	rows, err := r.db.q(ctx).QueryContext(ctx,
		`SELECT id, name, COALESCE(description, ''), active, created_at
		 FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, patch ports.CategoryPatch) error {
	res, err := r.db.q(ctx).ExecContext(ctx,
		`UPDATE categories SET
			name        = COALESCE($1, name),
			description = COALESCE($2, description),
			active      = COALESCE($3, active)
		 WHERE id = $4`,
		patch.Name, patch.Description, patch.Active, id)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.ErrCategoryExists
		}
		return fmt.Errorf("update category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.q(ctx).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}
