package http

import (
	"net/http"

	"github.com/caltrack/caltrack/internal/logger"
)

func (h *Handler) searchFood(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	query := r.URL.Query().Get("q")

	foods, err := h.services.CatalogService.SearchFood(r.Context(), query)
	if err != nil {
		log.Err(err).Str("func", "*Handler.searchFood").Msg("error searching food catalog")
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, foods)
}
