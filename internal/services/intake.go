package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"consignment-intake-service/internal/domain"
	"consignment-intake-service/internal/platform/obs"
	"consignment-intake-service/internal/ports"
)

// ErrNotConfigured means neither delivery channel has credentials, so the
// submission cannot go anywhere. Callers map this to a setup prompt.
var ErrNotConfigured = errors.New("no delivery channel configured")

// Bound each channel attempt so a hanging provider cannot hold the request.
const dispatchTimeout = 15 * time.Second

// IntakeResult summarizes what happened to one accepted submission.
type IntakeResult struct {
	EmailSent     bool
	DatabaseSaved bool

	// Errors holds per-channel diagnostics. Logged, counted in the
	// response as hasErrors, never shown verbatim to the caller.
	Errors []string
}

func (r IntakeResult) HasErrors() bool { return len(r.Errors) > 0 }

// ProcessSubmission fans a validated submission out to the notification and
// persistence channels. Each channel is gated by its own Configured() check
// and attempted independently: a failure in one never suppresses the other,
// and channel failures never fail the intake itself.
func ProcessSubmission(
	ctx context.Context,
	sub *domain.Submission,
	mailer ports.Mailer,
	store ports.SubmissionStore,
) (_ IntakeResult, err error) {
	defer obs.Time(ctx, "intake.process")(&err)

	mailable := mailer != nil && mailer.Configured()
	storable := store != nil && store.Configured()

	if !mailable && !storable {
		return IntakeResult{}, ErrNotConfigured
	}

	var (
		wg       sync.WaitGroup
		emailErr error
		saveErr  error
		sent     bool
		saved    bool
	)

	if mailable {
		wg.Add(1)
		go func() {
			defer wg.Done()

			dctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
			defer cancel()

			if e := SendSubmissionNotice(dctx, mailer, sub); e != nil {
				emailErr = fmt.Errorf("send notification: %w", e)
				return
			}
			sent = true
		}()
	}

	if storable {
		wg.Add(1)
		go func() {
			defer wg.Done()

			dctx, cancel := context.WithTimeout(ctx, dispatchTimeout)
			defer cancel()

			if e := store.Insert(dctx, sub); e != nil {
				saveErr = fmt.Errorf("save submission: %w", e)
				return
			}
			saved = true
		}()
	}

	wg.Wait()

	result := IntakeResult{EmailSent: sent, DatabaseSaved: saved}
	if emailErr != nil {
		log.Printf("req_id=%s channel=email err=%v", obs.RequestID(ctx), emailErr)
		result.Errors = append(result.Errors, "Failed to send email notification")
	}
	if saveErr != nil {
		log.Printf("req_id=%s channel=database err=%v", obs.RequestID(ctx), saveErr)
		result.Errors = append(result.Errors, "Failed to save to database")
	}

	return result, nil
}
