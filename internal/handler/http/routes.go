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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/verify-otp", h.verifyOtp)
		r.Post("/api/auth/login", h.login)
	})

	// routes that require a valid session token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/profile", h.profile)
		r.Put("/api/auth/profile", h.updateProfile)
		r.Post("/api/auth/change-password", h.changePassword)
		r.Delete("/api/auth/account", h.deleteAccount)
		r.Get("/api/auth/all-users", h.allUsers)

		r.Post("/api/plates/assign", h.assignPlate)
		r.Get("/api/plates/search/{plate}", h.searchPlate)
		r.Get("/api/plates/my", h.myPlate)
		r.Get("/api/plates/all", h.allPlates)

		r.Post("/api/vehicles/add", h.addVehicle)
		r.Get("/api/vehicles/search/{plate}", h.searchVehicles)
		r.Get("/api/vehicles/my", h.myVehicles)
		r.Get("/api/vehicles/all", h.allVehicles)
	})

	return router
}
