package services

import (
	"context"
	"fmt"
	"regexp"

	"consignment-intake-service/internal/adapters/mail"
	"consignment-intake-service/internal/domain"
	"consignment-intake-service/internal/ports"
)

// Notices go to the shop owner, not the customer. The owner address is
// embedded in the configured sender identity.
const fallbackOwnerEmail = "cyril@old2sold.com"

var angleAddr = regexp.MustCompile(`<(.+)>`)

// OwnerRecipient extracts the bare address from a "Display Name <address>"
// sender identity, falling back to the fixed owner address.
func OwnerRecipient(sender string) string {
	if m := angleAddr.FindStringSubmatch(sender); m != nil {
		return m[1]
	}
	return fallbackOwnerEmail
}

// SendSubmissionNotice formats and sends the owner notification for one
// accepted submission.
func SendSubmissionNotice(ctx context.Context, mailer ports.Mailer, sub *domain.Submission) error {
	subject, text, html := mail.FormatSubmissionNotice(sub)

	msg := ports.MailMessage{
		To:      OwnerRecipient(mailer.Sender()),
		Subject: subject,
		Text:    text,
		HTML:    html,
	}

	if err := mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("submission notice for %q: %w", sub.ItemTitle, err)
	}

	return nil
}
