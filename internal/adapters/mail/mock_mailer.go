package mail

import (
	"context"
	"sync"

	"consignment-intake-service/internal/ports"
)

// MockMailer records sent messages for tests.
type MockMailer struct {
	mu sync.Mutex

	IsConfigured bool
	From         string
	SendErr      error
	Sent         []ports.MailMessage
}

func NewMockMailer(configured bool) *MockMailer {
	return &MockMailer{IsConfigured: configured, From: DefaultSender}
}

func (m *MockMailer) Configured() bool { return m.IsConfigured }

func (m *MockMailer) Sender() string { return m.From }

func (m *MockMailer) Send(_ context.Context, msg ports.MailMessage) error {
	if m.SendErr != nil {
		return m.SendErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sent = append(m.Sent, msg)
	return nil
}

// SentCount reports how many messages were delivered.
func (m *MockMailer) SentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Sent)
}
