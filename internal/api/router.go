package api

import (
	"net/http"

	"github.com/garagem-inteligente/server/internal/api/handlers"
	"github.com/garagem-inteligente/server/internal/api/middleware"
	"github.com/garagem-inteligente/server/internal/config"
	"github.com/garagem-inteligente/server/internal/service"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.New(cfg.CorsOptions).Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	vehicleHandler := handlers.NewVehicleHandler(services.Vehicle)
	maintenanceHandler := handlers.NewMaintenanceHandler(services.Maintenance)
	weatherHandler := handlers.NewWeatherHandler(services.Weather)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Weather proxy (public)
		r.Get("/previsao/{cidade}", weatherHandler.Forecast)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/veiculos", func(r chi.Router) {
				r.Post("/", vehicleHandler.Create)
				r.Get("/", vehicleHandler.List)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", vehicleHandler.Get)
					r.Put("/", vehicleHandler.Update)
					r.Delete("/", vehicleHandler.Delete)
					r.Post("/share", vehicleHandler.Share)

					r.Post("/manutencoes", maintenanceHandler.Create)
					r.Get("/manutencoes", maintenanceHandler.ListForVehicle)
				})
			})

			r.Delete("/manutencoes/{id}", maintenanceHandler.Delete)
		})
	})

	return r
}
