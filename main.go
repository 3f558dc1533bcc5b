// main.go
package main

import (
	"context"
	"log"

	"stay-booking/cmd"
	"stay-booking/internal/data/repository"
	"stay-booking/internal/wire"
	"stay-booking/migrations"
	"stay-booking/pkg/database"
	"stay-booking/pkg/events"
	"stay-booking/pkg/mailer"
	"stay-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Apply schema migrations
	if err := migrations.Apply(context.Background(), db); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound mail; without an API key emails only go to the log
	var mail mailer.Service
	if config.Mailer.APIKey != "" {
		mail = mailer.NewMailer(config.Mailer.APIKey, config.Mailer.FromName, config.Mailer.FromEmail)
	} else {
		logger.Warn("Mailer API key not set, using dev mailer")
		mail = &mailer.DevMailer{Log: logger}
	}

	// Event bus; reservations still work when NATS is absent
	var bus events.Publisher = events.NoopPublisher{}
	if config.Events.NATSURL != "" {
		nc, err := events.NewNATSPublisher(config.Events.NATSURL)
		if err != nil {
			logger.Warn("Failed to connect to NATS, events disabled", zap.Error(err))
		} else {
			bus = nc
			defer bus.Close()
		}
	}

	// Wire all dependencies
	app := wire.Wiring(repos, config, utils.SystemClock(), mail, bus, logger)
	defer app.Limiter.Stop()

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
