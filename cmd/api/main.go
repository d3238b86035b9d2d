package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/fergood-2703/SIA-FCP/internal/pkg/logger"
	"github.com/fergood-2703/SIA-FCP/internal/server"
)

func main() {
	// Environment overrides may come from a local .env file; its absence
	// is not an error.
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
