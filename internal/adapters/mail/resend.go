package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"consignment-intake-service/internal/platform/obs"
	"consignment-intake-service/internal/ports"
)

const DefaultSender = "Old to Sold <cyril@old2sold.com>"

// ResendMailer implements the Mailer port against the Resend HTTP API.
//
// The client deliberately does not retry: an ambiguous failure after the
// provider accepted the message would duplicate the notification, and the
// intake pipeline already tolerates a failed send.
type ResendMailer struct {
	session *http.Client
	apiKey  string
	from    string
	baseURL string
}

type ResendOption func(*ResendMailer)

// WithBaseURL points the client at a different API host (tests).
func WithBaseURL(url string) ResendOption {
	return func(m *ResendMailer) { m.baseURL = strings.TrimRight(url, "/") }
}

func WithHTTPClient(c *http.Client) ResendOption {
	return func(m *ResendMailer) { m.session = c }
}

// NewResendMailer builds a mailer. An empty apiKey yields an unconfigured
// mailer whose Configured() reports false; Send then refuses to run.
func NewResendMailer(apiKey, from string, opts ...ResendOption) *ResendMailer {
	if strings.TrimSpace(from) == "" {
		from = DefaultSender
	}

	m := &ResendMailer{
		session: &http.Client{Timeout: 10 * time.Second},
		apiKey:  strings.TrimSpace(apiKey),
		from:    from,
		baseURL: "https://api.resend.com",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configured implements ports.Mailer. Pure credential check, no probe.
func (m *ResendMailer) Configured() bool { return m.apiKey != "" }

// Sender implements ports.Mailer.
func (m *ResendMailer) Sender() string { return m.from }

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
	HTML    string   `json:"html,omitempty"`
}

// Send implements ports.Mailer.
func (m *ResendMailer) Send(ctx context.Context, msg ports.MailMessage) (err error) {
	defer obs.Time(ctx, "resend.send")(&err)

	if !m.Configured() {
		return fmt.Errorf("resend mailer: send: api key not configured")
	}

	html := msg.HTML
	if html == "" {
		html = strings.ReplaceAll(msg.Text, "\n", "<br>")
	}

	body, err := json.Marshal(sendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("resend mailer: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("resend mailer: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.session.Do(req)
	if err != nil {
		return fmt.Errorf("resend mailer: send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("resend mailer: send email: status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)))
	}

	return nil
}
