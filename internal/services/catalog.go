package services

import (
	"context"
	"fmt"
	"log"

	"consignment-intake-service/internal/domain"
	"consignment-intake-service/internal/platform/obs"
	"consignment-intake-service/internal/ports"
)

// LoadCatalog returns catalog listings, preferring the database and falling
// back to the bundled static source when the database is unconfigured or
// failing. The storefront should degrade to the shipped catalog rather than
// render an error.
func LoadCatalog(
	ctx context.Context,
	repo ports.CatalogRepository,
	static ports.CatalogRepository,
) (_ []*domain.CatalogItem, err error) {
	defer obs.Time(ctx, "catalog.load")(&err)

	if repo != nil && repo.Configured() {
		items, dbErr := repo.ListItems(ctx)
		if dbErr == nil {
			return items, nil
		}
		log.Printf("req_id=%s catalog database failed, using static fallback: %v",
			obs.RequestID(ctx), dbErr)
	}

	if static == nil || !static.Configured() {
		return nil, fmt.Errorf("load catalog: no catalog source available")
	}

	items, staticErr := static.ListItems(ctx)
	if staticErr != nil {
		return nil, fmt.Errorf("load catalog: static fallback: %w", staticErr)
	}

	return items, nil
}
