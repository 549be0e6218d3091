package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"consignment-intake-service/internal/api/dto"
	"consignment-intake-service/internal/domain"
	"consignment-intake-service/internal/platform/obs"
	"consignment-intake-service/internal/ports"
	"consignment-intake-service/internal/services"
)

const acceptedMessage = "Thank you! We typically reply within 2-3 business days (often sooner)."

// ConsignHandler is the consignment intake endpoint. Pipeline per request:
// rate-limit check, validation, then independent fan-out to the email and
// database channels. The response is a success whenever rate limiting and
// validation pass; channel failures only show up in details.hasErrors.
type ConsignHandler struct {
	Limiter      ports.RateLimiter
	Mailer       ports.Mailer
	Store        ports.SubmissionStore
	ClientKey    func(r *http.Request) string
	ConfigureURL string
}

func (h *ConsignHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	reqID := obs.RequestID(ctx)

	limit, err := h.Limiter.Check(ctx, h.ClientKey(r))
	if err != nil {
		log.Printf("req_id=%s rate limit check failed: %v", reqID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if !limit.Allowed {
		setRateHeaders(w, 0, limit.ResetAt)
		writeJSON(w, r, http.StatusTooManyRequests, dto.RateLimitedResponse{
			Error:     "Too many requests. Please try again later.",
			ResetTime: limit.ResetAt.UnixMilli(),
		})
		return
	}

	var raw map[string]any

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&raw); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	sub, err := domain.ParseSubmission(raw)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeError(w, r, http.StatusBadRequest, verr.Message)
			return
		}
		log.Printf("req_id=%s parse submission failed: %v", reqID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	result, err := services.ProcessSubmission(ctx, sub, h.Mailer, h.Store)
	if err != nil {
		if errors.Is(err, services.ErrNotConfigured) {
			writeJSON(w, r, http.StatusServiceUnavailable, dto.NotConfiguredResponse{
				Error: "Services not configured",
				Message: "Neither email nor database services are configured. " +
					"Please set up Resend and/or Supabase to receive submissions.",
				ConfigureURL: h.ConfigureURL,
			})
			return
		}
		log.Printf("req_id=%s process submission failed: %v", reqID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if result.HasErrors() {
		log.Printf("req_id=%s submission accepted with channel errors: %v", reqID, result.Errors)
	}

	setRateHeaders(w, limit.Remaining, limit.ResetAt)
	writeJSON(w, r, http.StatusOK, dto.ConsignResponse{
		Success: true,
		Message: acceptedMessage,
		Details: dto.ConsignDetails{
			EmailSent:     result.EmailSent,
			DatabaseSaved: result.DatabaseSaved,
			HasErrors:     result.HasErrors(),
		},
	})
}
