package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createConsignmentsQuery := `
	CREATE TABLE IF NOT EXISTS consignments (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		payload JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createCatalogQuery := `
	CREATE TABLE IF NOT EXISTS catalog_items (
		id TEXT PRIMARY KEY,
		slug TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		brand TEXT,
		category TEXT,
		condition TEXT NOT NULL,
		price_list NUMERIC,
		status TEXT NOT NULL DEFAULT 'draft',
		thumbnail_url TEXT,
		ebay_url TEXT,
		featured BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_consignments_created_at
	ON consignments(created_at DESC);
	`

	statements := []string{
		createConsignmentsQuery,
		createCatalogQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type CatalogSeed struct {
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

// Populate the catalog from a JSON seed file. The same file doubles as the
// static fallback source when the database is not configured.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var data []CatalogSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("seed catalog: item at index %d: id cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Slug) == "" {
			return fmt.Errorf("seed catalog: item at index %d: slug cannot be empty", i+1)
		}
		if strings.TrimSpace(item.Title) == "" {
			return fmt.Errorf("seed catalog: item at index %d: title cannot be empty", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO catalog_items (
		id, slug, title, brand, category, condition,
		price_list, status, thumbnail_url, ebay_url, featured, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		slug = EXCLUDED.slug,
		title = EXCLUDED.title,
		brand = EXCLUDED.brand,
		category = EXCLUDED.category,
		condition = EXCLUDED.condition,
		price_list = EXCLUDED.price_list,
		status = EXCLUDED.status,
		thumbnail_url = EXCLUDED.thumbnail_url,
		ebay_url = EXCLUDED.ebay_url,
		featured = EXCLUDED.featured,
		created_at = EXCLUDED.created_at;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, it := range data {
		_, err := stmt.Exec(
			it.ID, it.Slug, it.Title, it.Brand, it.Category, it.Condition,
			it.PriceList, it.Status, it.ThumbnailURL, it.EbayURL, it.Featured, it.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("seed catalog: insert id=%s: %w", it.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
