package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"consignment-intake-service/internal/domain"

	"github.com/google/uuid"
)

// Postgres-backed implementation of the SubmissionStore port.
//
// A nil DB is a valid unconfigured store: Configured() reports false and the
// orchestrator skips the channel.
type PostgresSubmissionStore struct{ DB *sql.DB }

func NewPostgresSubmissionStore(db *sql.DB) *PostgresSubmissionStore {
	return &PostgresSubmissionStore{DB: db}
}

func (s *PostgresSubmissionStore) Configured() bool { return s.DB != nil }

// Insert stores one accepted submission. The full raw payload goes into a
// jsonb column so fields outside the minimal schema survive.
func (s *PostgresSubmissionStore) Insert(ctx context.Context, sub *domain.Submission) error {
	if s.DB == nil {
		return errors.New("submission store: DB is nil")
	}

	payload, err := json.Marshal(sub.Payload)
	if err != nil {
		return fmt.Errorf("insert submission: encode payload: %w", err)
	}

	query := `
	INSERT INTO consignments (
		id,
		name,
		email,
		phone,
		payload,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = s.DB.ExecContext(ctx, query,
		uuid.NewString(), sub.Name, sub.Email, sub.Phone, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("insert submission: exec insert: %w", err)
	}

	return nil
}

// ListRecent returns the newest stored submissions, newest first.
func (s *PostgresSubmissionStore) ListRecent(ctx context.Context, limit int) ([]*domain.SubmissionRecord, error) {
	if s.DB == nil {
		return nil, errors.New("submission store: DB is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
	SELECT
		id,
		name,
		email,
		phone,
		payload,
		created_at
	FROM consignments
	ORDER BY created_at DESC
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list submissions: query consignments table: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SubmissionRecord, 0, limit)
	for rows.Next() {
		var rec domain.SubmissionRecord
		var payload []byte

		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Email, &rec.Phone, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("list submissions: scan row: %w", err)
		}

		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &rec.Payload); err != nil {
				return nil, fmt.Errorf("list submissions: decode payload for id=%s: %w", rec.ID, err)
			}
		}

		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list submissions: row iteration: %w", err)
	}

	return records, nil
}
