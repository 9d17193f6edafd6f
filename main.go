package main

import (
	"log"

	"naija-barter/cmd"
	"naija-barter/internal/data/repository"
	"naija-barter/internal/wire"
	"naija-barter/pkg/database"
	"naija-barter/pkg/mailer"
	"naija-barter/pkg/storage"
	"naija-barter/pkg/utils"

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

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Outbound collaborators
	mail := mailer.NewSMTPMailer(config.Email)

	uploader, err := storage.NewCloudinaryUploader(config.Cloudinary)
	if err != nil {
		logger.Fatal("Failed to init cloudinary", zap.Error(err))
	}

	// Wire all dependencies
	app := wire.Wiring(repos, mail, uploader, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
