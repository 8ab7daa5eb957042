package http

import (
	"errors"
	"net/http"

	"github.com/caltrack/caltrack/internal/store"
	"github.com/caltrack/caltrack/internal/validators"
	"github.com/caltrack/caltrack/models"
)

var errorStatusMap = map[error]int{
	models.ErrAgeOutOfRange:    http.StatusBadRequest,
	models.ErrWeightOutOfRange: http.StatusBadRequest,
	models.ErrHeightOutOfRange: http.StatusBadRequest,
	models.ErrUnknownGender:    http.StatusBadRequest,
	models.ErrUnknownActivity:  http.StatusBadRequest,

	models.ErrEmptyFoodName:       http.StatusBadRequest,
	models.ErrNonPositiveCalories: http.StatusBadRequest,
	models.ErrNonPositiveQuantity: http.StatusBadRequest,
	models.ErrUnknownMealType:     http.StatusBadRequest,
	models.ErrZeroTimestamp:       http.StatusBadRequest,

	validators.ErrInvalidTimestamp: http.StatusBadRequest,
	validators.ErrInvalidDate:      http.StatusBadRequest,

	store.ErrFoodNotFound: http.StatusNotFound,

	store.ErrEntryNotSaved:        http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse is the JSON body of every API error.
type errorResponse struct {
	Error string `json:"error"`
}

// respondError translates err into a JSON error response. Storage errors
// are masked behind a generic message so that internals never leak to the
// caller; validation errors pass through verbatim.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal server error"
	}

	h.writeJSON(w, r, status, errorResponse{Error: message})
}
