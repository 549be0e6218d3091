package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"consignment-intake-service/internal/domain"
)

// Postgres-backed implementation of the CatalogRepository port.
type PostgresCatalogRepository struct{ DB *sql.DB }

func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

func (r *PostgresCatalogRepository) Configured() bool { return r.DB != nil }

// ListItems returns all non-draft catalog items, newest first.
func (r *PostgresCatalogRepository) ListItems(ctx context.Context) ([]*domain.CatalogItem, error) {
	if r.DB == nil {
		return nil, errors.New("catalog repository: DB is nil")
	}

	query := `
	SELECT
		id,
		slug,
		title,
		COALESCE(brand, ''),
		COALESCE(category, ''),
		condition,
		COALESCE(price_list, 0),
		status,
		COALESCE(thumbnail_url, ''),
		COALESCE(ebay_url, ''),
		featured,
		created_at
	FROM catalog_items
	WHERE status <> 'draft'
	ORDER BY created_at DESC;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list catalog items: query catalog_items table: %w", err)
	}
	defer rows.Close()

	items := make([]*domain.CatalogItem, 0, 64)
	for rows.Next() {
		var it domain.CatalogItem
		var condition string

		err := rows.Scan(
			&it.ID, &it.Slug, &it.Title, &it.Brand, &it.Category, &condition,
			&it.PriceList, &it.Status, &it.ThumbnailURL, &it.EbayURL,
			&it.Featured, &it.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list catalog items: scan row: %w", err)
		}

		it.Condition = domain.Condition(condition)
		items = append(items, &it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalog items: row iteration: %w", err)
	}

	return items, nil
}
