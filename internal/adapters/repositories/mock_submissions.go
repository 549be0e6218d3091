package repositories

import (
	"context"
	"sync"
	"time"

	"consignment-intake-service/internal/domain"

	"github.com/google/uuid"
)

// MockSubmissionStore records inserts in memory for tests.
type MockSubmissionStore struct {
	mu sync.Mutex

	IsConfigured bool
	InsertErr    error
	Records      []*domain.SubmissionRecord
}

func NewMockSubmissionStore(configured bool) *MockSubmissionStore {
	return &MockSubmissionStore{IsConfigured: configured}
}

func (s *MockSubmissionStore) Configured() bool { return s.IsConfigured }

func (s *MockSubmissionStore) Insert(_ context.Context, sub *domain.Submission) error {
	if s.InsertErr != nil {
		return s.InsertErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = append(s.Records, &domain.SubmissionRecord{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Payload:   sub.Payload,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

func (s *MockSubmissionStore) ListRecent(_ context.Context, limit int) ([]*domain.SubmissionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.SubmissionRecord, 0, limit)
	for i := len(s.Records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.Records[i])
	}
	return out, nil
}

// InsertCount reports how many submissions were stored.
func (s *MockSubmissionStore) InsertCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.Records)
}
