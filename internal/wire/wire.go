// internal/wire/wire.go
package wire

import (
	"net/http"
	"time"

	"stay-booking/internal/adaptor"
	"stay-booking/internal/data/repository"
	"stay-booking/internal/usecase"
	"stay-booking/pkg/events"
	"stay-booking/pkg/mailer"
	"stay-booking/pkg/middleware"
	"stay-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router  *chi.Mux
	Limiter *middleware.RateLimiter
}

// Wiring initializes services, handlers and the router
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	clock utils.Clock,
	mail mailer.Service,
	bus events.Publisher,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, config, clock, mail, bus, logger)
	handler := adaptor.NewHandler(service, logger)

	limiter := middleware.NewRateLimiter(middleware.Limit{
		MaxRequests: config.RateLimit.MaxRequests,
		Window:      time.Duration(config.RateLimit.WindowSeconds) * time.Second,
	}, clock, logger)
	limiter.StartSweeper(time.Duration(config.RateLimit.SweepSeconds) * time.Second)

	router := setupRouter(handler, limiter, config, logger)

	return &App{
		Router:  router,
		Limiter: limiter,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	limiter *middleware.RateLimiter,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS))

	// Apply routes
	wireReservation(r, handler.Reservation, limiter, config, logger)
	wireUnit(r, handler.Unit)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
