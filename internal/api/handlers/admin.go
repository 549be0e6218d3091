package handlers

import (
	"log"
	"net/http"

	"consignment-intake-service/internal/api/dto"
	"consignment-intake-service/internal/platform/obs"
	"consignment-intake-service/internal/ports"
)

const adminListLimit = 50

// AdminHandler exposes stored submissions for the operator dashboard.
type AdminHandler struct {
	Store        ports.SubmissionStore
	ConfigureURL string
}

func (h *AdminHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Store == nil || !h.Store.Configured() {
		writeJSON(w, r, http.StatusServiceUnavailable, dto.NotConfiguredResponse{
			Error:        "Database not configured",
			Message:      "Configure the database to view stored submissions.",
			ConfigureURL: h.ConfigureURL,
		})
		return
	}

	records, err := h.Store.ListRecent(r.Context(), adminListLimit)
	if err != nil {
		log.Printf("req_id=%s list submissions failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSubmissionsResponse{
		Submissions: make([]dto.SubmissionRecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		res.Submissions = append(res.Submissions, dto.SubmissionRecordResponse{
			ID:        rec.ID,
			Name:      rec.Name,
			Email:     rec.Email,
			Phone:     rec.Phone,
			Payload:   rec.Payload,
			CreatedAt: rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
