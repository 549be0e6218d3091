package domain

import "time"

// Item availability states shown in the storefront.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusHold      = "hold"
	StatusDraft     = "draft"
)

// CatalogItem is one listing in the storefront catalog.
type CatalogItem struct {
	ID           string
	Slug         string
	Title        string
	Brand        string
	Category     string
	Condition    Condition
	PriceList    float64
	Status       string
	ThumbnailURL string
	EbayURL      string
	Featured     bool
	CreatedAt    time.Time
}
