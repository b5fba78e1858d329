// internal/wire/wire.go
package wire

import (
	"net/http"

	"secure-it/internal/adaptor"
	"secure-it/internal/data/repository"
	"secure-it/internal/usecase"
	"secure-it/pkg/events"
	"secure-it/pkg/middleware"
	"secure-it/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, publisher events.Publisher, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, config, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseMethodNotAllowed(w, "Method not allowed")
	})

	// Apply routes
	wireAuth(r, handler.Auth)
	wireSite(r, handler.Site)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"status": "ok"})
	})

	return r
}
