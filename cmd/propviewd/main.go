package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"propview-backend/config"
	"propview-backend/internal/api"
	"propview-backend/internal/catalog"
	"propview-backend/internal/db"
	"propview-backend/internal/favorites"
	"propview-backend/internal/logging"
	"propview-backend/internal/slot"
)

func main() {
	// .env is optional; real environment variables win.
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration from %s: %v\n", configPath, err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging)
	logger.Info().Str("path", configPath).Msg("configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Seed the catalog once at startup.
	seed, err := catalog.LoadSeed(cfg.Catalog.SeedPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load catalog seed")
	}
	catalogStore := catalog.NewStore(seed, cfg.Catalog.Latency)
	logger.Info().Int("properties", len(seed)).Msg("catalog seeded")

	// Pick the favorites persistence backend.
	var favoritesSlot slot.Slot
	switch cfg.Favorites.Backend {
	case "database":
		gormDB, err := db.Init(&cfg.Favorites.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize slot database")
		}
		favoritesSlot = slot.NewGormSlot(gormDB, cfg.Favorites.SlotKey)
	case "file":
		favoritesSlot = slot.NewFileSlot(cfg.Favorites.FilePath)
	default:
		logger.Fatal().Str("backend", cfg.Favorites.Backend).Msg("unknown favorites backend")
	}

	favoritesStore, err := favorites.NewStore(ctx, favoritesSlot, logger, cfg.Favorites.Latency)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize favorites store")
	}
	logger.Info().Str("backend", cfg.Favorites.Backend).Msg("favorites store initialized")

	router := api.NewRouter(&cfg.Server, catalogStore, favoritesStore, logger)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("HTTP server ListenAndServe")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	<-stop
	logger.Info().Msg("shutdown signal received, stopping services")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server shutdown")
	}

	logger.Info().Msg("server gracefully stopped")
}
