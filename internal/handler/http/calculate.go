package http

import (
	"encoding/json"
	"net/http"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/validators"
	"github.com/caltrack/caltrack/models"
)

func (h *Handler) calculate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.calculate").Msg("invalid JSON was passed")
		h.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	user, err := validators.UserFromRequest(req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.calculate").Msg("invalid user data")
		h.respondError(w, r, err)
		return
	}

	result := h.services.EnergyService.Calculate(r.Context(), user)

	h.writeJSON(w, r, http.StatusOK, result)
}
