package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/accounts-service/internal/config"
	"github.com/deppfellow/accounts-service/internal/database"
	"github.com/deppfellow/accounts-service/internal/handler"
	"github.com/deppfellow/accounts-service/internal/logger"
	"github.com/deppfellow/accounts-service/internal/middleware"
	"github.com/deppfellow/accounts-service/internal/repository"
	"github.com/deppfellow/accounts-service/internal/router"
	"github.com/deppfellow/accounts-service/internal/server"
	"github.com/deppfellow/accounts-service/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	bootstrap := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		bootstrap.Fatal().Err(err).Msg("Failed to load configuration")
	}

	loggerService := logger.NewLoggerService(cfg, &bootstrap)
	log := logger.New(cfg, loggerService.GetApplication())

	ctx := context.Background()
	if err := database.Migrate(ctx, &log, cfg); err != nil {
		log.Fatal().Err(err).Msg("Failed to run database migrations")
	}

	s, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize server")
	}

	middlewares := middleware.NewMiddlewares(s)
	repos := repository.NewRepositories(s)

	services, err := service.NewServices(s, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	handlers := handler.NewHandlers(s, services)
	r := router.New(s, middlewares, handlers)
	s.SetupHTTPServer(r)

	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}

	loggerService.Shutdown(shutdownTimeout)
}
