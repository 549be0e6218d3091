package handlers

import (
	"net/http"

	"consignment-intake-service/internal/api/dto"
	"consignment-intake-service/internal/ports"
)

// StatusHandler reports which backend capabilities are configured, for the
// setup flow. Booleans only; never echoes credential values.
type StatusHandler struct {
	Mailer ports.Mailer
	Store  ports.SubmissionStore
}

func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.StatusResponse{
		DatabaseConfigured: h.Store != nil && h.Store.Configured(),
		EmailConfigured:    h.Mailer != nil && h.Mailer.Configured(),
	})
}
