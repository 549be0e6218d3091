package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Item condition grades used by the storefront.
type Condition string

const (
	ConditionA Condition = "A"
	ConditionB Condition = "B"
	ConditionC Condition = "C"
)

// How the item changes hands.
type Method string

const (
	MethodPickup  Method = "pickup"
	MethodDropoff Method = "dropoff"
)

// Submission is a consignment request accepted into the intake pipeline.
// It is immutable once built: dispatchers only read it.
type Submission struct {
	Name      string
	Email     string
	Phone     string
	ItemTitle string
	Condition Condition
	Method    Method

	// Payload is the full original request body, preserved verbatim so
	// fields outside the minimal schema are never lost.
	Payload map[string]any
}

// SubmissionRecord is a stored submission as read back for the admin view.
type SubmissionRecord struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Payload   map[string]any
	CreatedAt time.Time
}

// ValidationError reports a rejected submission. The message is safe to
// show to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Deliberately permissive: local@domain.tld shape, not full RFC validation.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ParseSubmission validates a raw request body and builds a Submission.
// Rules run in a fixed order and the first failure wins; on failure the
// returned error is a *ValidationError.
func ParseSubmission(raw map[string]any) (*Submission, error) {
	name := stringField(raw, "name")
	email := stringField(raw, "email")
	phone := stringField(raw, "phone")
	itemTitle := stringField(raw, "itemTitle")
	condition := stringField(raw, "condition")
	method := stringField(raw, "method")

	if name == "" || email == "" || itemTitle == "" || condition == "" || method == "" {
		return nil, &ValidationError{
			Message: "Missing required fields: name, email, itemTitle, condition, method",
		}
	}

	switch Condition(condition) {
	case ConditionA, ConditionB, ConditionC:
	default:
		return nil, &ValidationError{Message: "Invalid condition. Must be A, B, or C"}
	}

	switch Method(method) {
	case MethodPickup, MethodDropoff:
	default:
		return nil, &ValidationError{Message: "Invalid method. Must be pickup or dropoff"}
	}

	if !emailShape.MatchString(email) {
		return nil, &ValidationError{Message: "Invalid email address"}
	}

	return &Submission{
		Name:      name,
		Email:     email,
		Phone:     phone,
		ItemTitle: itemTitle,
		Condition: Condition(condition),
		Method:    Method(method),
		Payload:   raw,
	}, nil
}

// stringField reads a string value from the raw body, trimmed. Missing keys
// and non-string values read as empty.
func stringField(raw map[string]any, key string) string {
	v, ok := raw[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// PhoneOrPlaceholder renders the phone for human-facing output.
func (s *Submission) PhoneOrPlaceholder() string {
	if strings.TrimSpace(s.Phone) == "" {
		return "Not provided"
	}
	return s.Phone
}

func (s *Submission) String() string {
	return fmt.Sprintf("submission{name=%q item=%q condition=%s method=%s}",
		s.Name, s.ItemTitle, s.Condition, s.Method)
}
