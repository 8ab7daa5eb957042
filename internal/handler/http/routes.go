package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// JSON API
	router.Group(func(r chi.Router) {
		r.Post("/api/calculate", h.calculate)
		r.Get("/api/food-entries", h.getFoodEntries)
		r.Post("/api/food-entries", h.addFoodEntry)
		r.Get("/api/search-food", h.searchFood)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// server-rendered pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.indexPage)
		r.Get("/calculate", h.calculatePage)
		r.Post("/calculate", h.calculateForm)
		r.Get("/food", h.foodTrackerPage)
		r.Get("/add_food", h.addFoodPage)
		r.Post("/add_food", h.addFoodForm)
	})

	return router
}
