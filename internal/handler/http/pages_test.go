package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caltrack/caltrack/models"
)

func TestIndexPage(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "CalTrack")
}

func TestCalculatePage(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/calculate", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `name="activity_level"`)
}

func TestCalculateForm_RendersResults(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	form := url.Values{
		"age":            {"30"},
		"gender":         {"male"},
		"weight":         {"70"},
		"height":         {"175"},
		"activity_level": {"moderate"},
	}
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1648.8")
	assert.Contains(t, rec.Body.String(), "2555.6")
}

func TestCalculateForm_InvalidInputRendersError(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	form := url.Values{
		"age":            {"0"},
		"gender":         {"male"},
		"weight":         {"70"},
		"height":         {"175"},
		"activity_level": {"moderate"},
	}
	req := httptest.NewRequest(http.MethodPost, "/calculate", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "age must be between 1 and 120")
}

func TestFoodTrackerPage(t *testing.T) {
	h, svcs := newTestHandler(t)
	svcs.intake.summary = models.DailySummary{
		Date:          "2024-01-01",
		TotalCalories: 78.0,
		MealBreakdown: map[string]float64{"breakfast": 78.0, "lunch": 0, "dinner": 0, "snack": 0},
		EntryCount:    1,
		Entries: []models.EntryView{
			{ID: 1, FoodName: "Apple", CaloriesPer100g: 52, QuantityGrams: 150, MealType: "breakfast", Calories: 78.0, Timestamp: "2024-01-01T08:00:00Z"},
		},
	}
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/food?date=2024-01-01", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Apple")
	assert.Contains(t, rec.Body.String(), "78")
}

func TestAddFoodPage_PrefillsSelectedFood(t *testing.T) {
	h, svcs := newTestHandler(t)
	svcs.catalog.food = models.CatalogFood{ID: 1, Name: "Apple", CaloriesPer100g: 52, Category: "Fruits"}
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/add_food?food=Apple", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Apple"`)
	assert.Contains(t, rec.Body.String(), `value="52"`)
}

func TestAddFoodForm_RedirectsToTracker(t *testing.T) {
	h, svcs := newTestHandler(t)
	router := h.Init()

	form := url.Values{
		"food_name":         {"Apple"},
		"calories_per_100g": {"52"},
		"quantity":          {"150"},
		"meal_type":         {"breakfast"},
	}
	req := httptest.NewRequest(http.MethodPost, "/add_food", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/food", rec.Header().Get("Location"))
	require.Len(t, svcs.intake.added, 1)
	assert.Equal(t, "Apple", svcs.intake.added[0].FoodItem.Name)
}

func TestAddFoodForm_InvalidInputRendersError(t *testing.T) {
	h, _ := newTestHandler(t)
	router := h.Init()

	form := url.Values{
		"food_name":         {"Apple"},
		"calories_per_100g": {"52"},
		"quantity":          {"150"},
		"meal_type":         {"brunch"},
	}
	req := httptest.NewRequest(http.MethodPost, "/add_food", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown meal type")
}
