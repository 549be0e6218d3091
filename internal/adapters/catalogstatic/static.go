package catalogstatic

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"consignment-intake-service/internal/domain"
)

// StaticCatalog serves catalog listings from the bundled JSON seed file.
// It is the fallback source when the database is unconfigured or failing,
// so the storefront never renders an empty catalog by accident.
type StaticCatalog struct {
	path string
}

func New(path string) *StaticCatalog {
	return &StaticCatalog{path: path}
}

func (c *StaticCatalog) Configured() bool { return c.path != "" }

type seedItem struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Brand        string    `json:"brand"`
	Category     string    `json:"category"`
	Condition    string    `json:"condition"`
	PriceList    float64   `json:"price_list"`
	Status       string    `json:"status"`
	ThumbnailURL string    `json:"thumbnail_url"`
	EbayURL      string    `json:"ebay_url"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListItems implements ports.CatalogRepository over the seed file. Draft
// items are filtered out, matching the database query.
func (c *StaticCatalog) ListItems(_ context.Context) ([]*domain.CatalogItem, error) {
	bytes, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("static catalog: read %q: %w", c.path, err)
	}

	var data []seedItem
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("static catalog: parse json: %w", err)
	}

	items := make([]*domain.CatalogItem, 0, len(data))
	for _, it := range data {
		if it.Status == domain.StatusDraft {
			continue
		}
		items = append(items, &domain.CatalogItem{
			ID:           it.ID,
			Slug:         it.Slug,
			Title:        it.Title,
			Brand:        it.Brand,
			Category:     it.Category,
			Condition:    domain.Condition(it.Condition),
			PriceList:    it.PriceList,
			Status:       it.Status,
			ThumbnailURL: it.ThumbnailURL,
			EbayURL:      it.EbayURL,
			Featured:     it.Featured,
			CreatedAt:    it.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	return items, nil
}
