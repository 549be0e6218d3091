package mail

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"consignment-intake-service/internal/domain"
)

// FormatSubmissionNotice renders the owner-facing notification for one
// accepted submission: subject, plain-text body, and an HTML body. Both
// bodies end with a verbatim dump of the full original payload for audit.
func FormatSubmissionNotice(sub *domain.Submission) (subject, text, htmlBody string) {
	subject = fmt.Sprintf("New Consignment Submission: %s", sub.ItemTitle)

	payload, err := json.MarshalIndent(sub.Payload, "", "  ")
	if err != nil {
		payload = []byte("(payload unavailable)")
	}

	var b strings.Builder
	b.WriteString("New consignment submission received:\n\n")
	b.WriteString("Customer Information:\n")
	fmt.Fprintf(&b, "- Name: %s\n", sub.Name)
	fmt.Fprintf(&b, "- Email: %s\n", sub.Email)
	fmt.Fprintf(&b, "- Phone: %s\n\n", sub.PhoneOrPlaceholder())
	b.WriteString("Item Details:\n")
	fmt.Fprintf(&b, "- Title: %s\n", sub.ItemTitle)
	fmt.Fprintf(&b, "- Condition: %s\n", sub.Condition)
	fmt.Fprintf(&b, "- Pickup/Drop-off: %s\n\n", sub.Method)
	b.WriteString("Full submission data:\n")
	b.Write(payload)
	b.WriteString("\n\nPlease respond to the customer within 2-3 business days.\n")
	text = b.String()

	var h strings.Builder
	h.WriteString("<h2>New Consignment Submission</h2>\n")
	h.WriteString("<h3>Customer Information:</h3>\n<ul>\n")
	fmt.Fprintf(&h, "  <li><strong>Name:</strong> %s</li>\n", html.EscapeString(sub.Name))
	fmt.Fprintf(&h, "  <li><strong>Email:</strong> %s</li>\n", html.EscapeString(sub.Email))
	fmt.Fprintf(&h, "  <li><strong>Phone:</strong> %s</li>\n", html.EscapeString(sub.PhoneOrPlaceholder()))
	h.WriteString("</ul>\n")
	h.WriteString("<h3>Item Details:</h3>\n<ul>\n")
	fmt.Fprintf(&h, "  <li><strong>Title:</strong> %s</li>\n", html.EscapeString(sub.ItemTitle))
	fmt.Fprintf(&h, "  <li><strong>Condition:</strong> %s</li>\n", sub.Condition)
	fmt.Fprintf(&h, "  <li><strong>Method:</strong> %s</li>\n", sub.Method)
	h.WriteString("</ul>\n")
	h.WriteString("<h3>Full Submission:</h3>\n")
	fmt.Fprintf(&h, "<pre>%s</pre>\n", html.EscapeString(string(payload)))
	h.WriteString("<p><em>Please respond to the customer within 2-3 business days.</em></p>\n")
	htmlBody = h.String()

	return subject, text, htmlBody
}
