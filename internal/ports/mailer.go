package ports

import "context"

// MailMessage is one outbound email.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Port: a boundary for sending transactional email.
type Mailer interface {
	// Configured reports whether credentials are present. Pure check,
	// never a network probe.
	Configured() bool

	// Sender returns the configured sender identity, e.g.
	// "Old to Sold <owner@example.com>".
	Sender() string

	Send(ctx context.Context, msg MailMessage) error
}
