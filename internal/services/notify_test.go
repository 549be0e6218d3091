package services

import (
	"context"
	"strings"
	"testing"

	"consignment-intake-service/internal/adapters/mail"
)

func TestOwnerRecipient(t *testing.T) {
	cases := []struct {
		sender string
		want   string
	}{
		{"Old to Sold <owner@example.com>", "owner@example.com"},
		{"<owner@example.com>", "owner@example.com"},
		{"owner@example.com", fallbackOwnerEmail},
		{"", fallbackOwnerEmail},
	}

	for _, c := range cases {
		if got := OwnerRecipient(c.sender); got != c.want {
			t.Errorf("OwnerRecipient(%q) = %q, want %q", c.sender, got, c.want)
		}
	}
}

func TestSendSubmissionNotice(t *testing.T) {
	mailer := mail.NewMockMailer(true)
	mailer.From = "Shop <shop@example.com>"

	if err := SendSubmissionNotice(context.Background(), mailer, testSubmission()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mailer.SentCount() != 1 {
		t.Fatalf("sent %d messages, want 1", mailer.SentCount())
	}

	msg := mailer.Sent[0]
	if msg.To != "shop@example.com" {
		t.Fatalf("recipient = %q", msg.To)
	}
	if !strings.Contains(msg.Subject, "Brass Ship Clock") {
		t.Fatalf("subject = %q, want item title embedded", msg.Subject)
	}
	if msg.HTML == "" {
		t.Fatalf("html rendering missing")
	}
}
