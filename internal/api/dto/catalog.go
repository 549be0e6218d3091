package dto

import "time"

type CatalogItemResponse struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Brand        string    `json:"brand,omitempty"`
	Category     string    `json:"category,omitempty"`
	Condition    string    `json:"condition"`
	PriceList    float64   `json:"price_list,omitempty"`
	Status       string    `json:"status"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	EbayURL      string    `json:"ebay_url,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

type ListCatalogResponse struct {
	Items []CatalogItemResponse `json:"items"`
}

type SubmissionRecordResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone,omitempty"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}

type ListSubmissionsResponse struct {
	Submissions []SubmissionRecordResponse `json:"submissions"`
}

type StatusResponse struct {
	DatabaseConfigured bool `json:"databaseConfigured"`
	EmailConfigured    bool `json:"emailConfigured"`
}
