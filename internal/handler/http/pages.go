package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/caltrack/caltrack/internal/logger"
	"github.com/caltrack/caltrack/internal/store"
	"github.com/caltrack/caltrack/internal/validators"
	"github.com/caltrack/caltrack/models"
)

// calculatePageData feeds the calculate and results templates.
type calculatePageData struct {
	Error  string
	User   models.User
	Result models.EnergyResult
}

// trackerPageData feeds the food tracker template.
type trackerPageData struct {
	Summary      models.DailySummary
	SelectedDate string
}

// addFoodPageData feeds the add-food form template.
type addFoodPageData struct {
	Error        string
	SelectedFood *models.CatalogFood
	MealTypes    []models.MealType
}

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "index.html", nil)
}

func (h *Handler) calculatePage(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "calculate.html", calculatePageData{})
}

func (h *Handler) calculateForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := calculateRequestFromForm(r)
	if err == nil {
		var user models.User
		if user, err = validators.UserFromRequest(req); err == nil {
			result := h.services.EnergyService.Calculate(r.Context(), user)
			h.renderPage(w, r, "results.html", calculatePageData{User: user, Result: result})
			return
		}
	}

	log.Err(err).Str("func", "*Handler.calculateForm").Msg("invalid calculation form")
	h.renderPage(w, r, "calculate.html", calculatePageData{Error: err.Error()})
}

func (h *Handler) foodTrackerPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	now := time.Now()
	day, err := validators.ParseDate(r.URL.Query().Get("date"), now)
	if err != nil {
		// an unparseable date falls back to today
		day = now
	}

	summary, err := h.services.IntakeService.DailySummary(r.Context(), day)
	if err != nil {
		log.Err(err).Str("func", "*Handler.foodTrackerPage").Msg("error reading daily summary")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.renderPage(w, r, "food_tracker.html", trackerPageData{
		Summary:      summary,
		SelectedDate: summary.Date,
	})
}

func (h *Handler) addFoodPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	data := addFoodPageData{MealTypes: models.MealTypes}

	// optional catalog prefill, e.g. /add_food?food=Apple
	if name := r.URL.Query().Get("food"); name != "" {
		food, err := h.services.CatalogService.GetFood(r.Context(), name)
		switch {
		case err == nil:
			data.SelectedFood = &food
		case errors.Is(err, store.ErrFoodNotFound):
			// unknown food renders a blank form
		default:
			log.Err(err).Str("func", "*Handler.addFoodPage").Msg("error loading catalog food")
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
	}

	h.renderPage(w, r, "add_food.html", data)
}

func (h *Handler) addFoodForm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, err := addEntryRequestFromForm(r)
	if err == nil {
		var entry models.FoodEntry
		if entry, err = validators.EntryFromRequest(req, time.Now()); err == nil {
			if _, err = h.services.IntakeService.AddEntry(r.Context(), entry); err == nil {
				http.Redirect(w, r, "/food", http.StatusSeeOther)
				return
			}
		}
	}

	log.Err(err).Str("func", "*Handler.addFoodForm").Msg("invalid add-food form")
	h.renderPage(w, r, "add_food.html", addFoodPageData{
		Error:     err.Error(),
		MealTypes: models.MealTypes,
	})
}

func calculateRequestFromForm(r *http.Request) (models.CalculateRequest, error) {
	if err := r.ParseForm(); err != nil {
		return models.CalculateRequest{}, err
	}

	age, err := strconv.Atoi(r.PostFormValue("age"))
	if err != nil {
		return models.CalculateRequest{}, models.ErrAgeOutOfRange
	}
	weight, err := strconv.ParseFloat(r.PostFormValue("weight"), 64)
	if err != nil {
		return models.CalculateRequest{}, models.ErrWeightOutOfRange
	}
	height, err := strconv.ParseFloat(r.PostFormValue("height"), 64)
	if err != nil {
		return models.CalculateRequest{}, models.ErrHeightOutOfRange
	}

	return models.CalculateRequest{
		Age:           age,
		Gender:        r.PostFormValue("gender"),
		Weight:        weight,
		Height:        height,
		ActivityLevel: r.PostFormValue("activity_level"),
	}, nil
}

func addEntryRequestFromForm(r *http.Request) (models.AddEntryRequest, error) {
	if err := r.ParseForm(); err != nil {
		return models.AddEntryRequest{}, err
	}

	caloriesPer100g, err := strconv.ParseFloat(r.PostFormValue("calories_per_100g"), 64)
	if err != nil {
		return models.AddEntryRequest{}, models.ErrNonPositiveCalories
	}
	quantity, err := strconv.ParseFloat(r.PostFormValue("quantity"), 64)
	if err != nil {
		return models.AddEntryRequest{}, models.ErrNonPositiveQuantity
	}

	return models.AddEntryRequest{
		FoodName:        r.PostFormValue("food_name"),
		CaloriesPer100g: caloriesPer100g,
		Quantity:        quantity,
		MealType:        r.PostFormValue("meal_type"),
		Timestamp:       r.PostFormValue("timestamp"),
	}, nil
}
