package handlers

import (
	"log"
	"net/http"

	"consignment-intake-service/internal/api/dto"
	"consignment-intake-service/internal/platform/obs"
	"consignment-intake-service/internal/ports"
	"consignment-intake-service/internal/services"
)

// CatalogHandler exposes the storefront catalog listing. Served from the
// database when configured, from the bundled seed file otherwise.
type CatalogHandler struct {
	Repo   ports.CatalogRepository
	Static ports.CatalogRepository
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	items, err := services.LoadCatalog(r.Context(), h.Repo, h.Static)
	if err != nil {
		log.Printf("req_id=%s list catalog failed: %v", obs.RequestID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListCatalogResponse{
		Items: make([]dto.CatalogItemResponse, 0, len(items)),
	}
	for _, it := range items {
		res.Items = append(res.Items, dto.CatalogItemResponse{
			ID:           it.ID,
			Slug:         it.Slug,
			Title:        it.Title,
			Brand:        it.Brand,
			Category:     it.Category,
			Condition:    string(it.Condition),
			PriceList:    it.PriceList,
			Status:       it.Status,
			ThumbnailURL: it.ThumbnailURL,
			EbayURL:      it.EbayURL,
			Featured:     it.Featured,
			CreatedAt:    it.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
