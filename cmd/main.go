package main

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	_ "movie-catalog/docs"
	"movie-catalog/internal/config"
	"movie-catalog/internal/database"
	"movie-catalog/internal/handlers"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/routes"
	"movie-catalog/internal/server"
	"movie-catalog/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Movie Catalog API
// @version 1.0
// @description CRUD API over movies and actors with a many-to-many cast relationship, plus arithmetic helpers and a reverse-geocoding proxy

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http https

func main() {
	// Load environment variables
	loadEnvFile()

	cfg := config.Load()

	log := setupLogger()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Errorf("Error closing database connection: %v", err)
		}
	}()

	movieRepo := repository.NewMovieRepository(db)
	actorRepo := repository.NewActorRepository(db)
	castResolver, err := repository.NewCastResolver(db, repository.CastStrategy(cfg.Cast.Strategy))
	if err != nil {
		log.Fatalf("Failed to create cast resolver: %v", err)
	}

	var importStore services.ObjectStore
	if cfg.ImportBucketEnabled() {
		minioStore, err := services.NewMinIOStore(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO store: %v", err)
		}
		importStore = minioStore
	} else {
		log.Info("MINIO_ENDPOINT not set, legacy imports are accepted from the request body only")
	}

	movieService := services.NewMovieService(movieRepo, castResolver, log)
	actorService := services.NewActorService(actorRepo, log)
	importService := services.NewImportService(movieRepo, importStore, log)
	geocodeService := services.NewGeocodeService(cfg.Geocode, log)

	app := server.New(cfg, db, routes.Handlers{
		Movies:  handlers.NewMovieHandler(movieService, log),
		Actors:  handlers.NewActorHandler(actorService, log),
		Import:  handlers.NewImportHandler(importService, log),
		Utility: handlers.NewUtilityHandler(geocodeService, log),
	}, log, server.Options{AccessLog: true, Swagger: true})

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Movie Catalog API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}

func loadEnvFile() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	log.SetOutput(os.Stdout)

	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "dev"
	}

	execDir, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not get working directory: %v", err)
		return
	}

	envFile := filepath.Join(execDir, "envs", ".env."+env)
	if err := godotenv.Load(envFile); err != nil {
		log.Warnf("Could not load environment file %s: %v", envFile, err)

		defaultEnvFile := filepath.Join(execDir, "envs", ".env")
		if err := godotenv.Load(defaultEnvFile); err != nil {
			log.Warnf("Could not load default environment file: %v", err)
		} else {
			log.Infof("Environment loaded from default file %s", defaultEnvFile)
		}
	} else {
		log.Infof("Environment loaded from file %s", envFile)
	}
}
