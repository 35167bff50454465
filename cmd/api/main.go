package main

import (
	"os"

	"github.com/sujeet/alumnisphere/internal/pkg/logger"
	"github.com/sujeet/alumnisphere/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		// Use the default logger set up by the logger package's init
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
