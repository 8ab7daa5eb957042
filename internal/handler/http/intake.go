package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/validators"
	"github.com/caltrack/caltrack/models"
)

func (h *Handler) addFoodEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.AddEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.addFoodEntry").Msg("invalid JSON was passed")
		h.writeJSON(w, r, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	entry, err := validators.EntryFromRequest(req, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*Handler.addFoodEntry").Msg("invalid food entry")
		h.respondError(w, r, err)
		return
	}

	response, err := h.services.IntakeService.AddEntry(r.Context(), entry)
	if err != nil {
		log.Err(err).Str("func", "*Handler.addFoodEntry").Msg("error saving food entry")
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, response)
}

func (h *Handler) getFoodEntries(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	day, err := validators.ParseDate(r.URL.Query().Get("date"), time.Now())
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFoodEntries").Msg("invalid date param")
		h.respondError(w, r, err)
		return
	}

	summary, err := h.services.IntakeService.DailySummary(r.Context(), day)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFoodEntries").Msg("error reading daily summary")
		h.respondError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, summary)
}
