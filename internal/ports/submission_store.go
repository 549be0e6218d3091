package ports

import (
	"consignment-intake-service/internal/domain"
	"context"
)

// Port: a boundary for persisting accepted submissions.
type SubmissionStore interface {
	// Configured reports whether datastore credentials are present.
	Configured() bool

	// Insert stores one submission, keeping the full raw payload.
	Insert(ctx context.Context, sub *domain.Submission) error

	// ListRecent returns the newest stored submissions, newest first.
	ListRecent(ctx context.Context, limit int) ([]*domain.SubmissionRecord, error)
}
