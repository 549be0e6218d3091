package ports

import (
	"consignment-intake-service/internal/domain"
	"context"
)

// Port: a boundary for retrieving catalog listings from a data source.
type CatalogRepository interface {
	Configured() bool

	// ListItems returns all non-draft catalog items, newest first.
	ListItems(ctx context.Context) ([]*domain.CatalogItem, error)
}
