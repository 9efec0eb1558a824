package main

import (
	"os"

	"github.com/wkalungi/sponsorbase/internal/pkg/logger"
	"github.com/wkalungi/sponsorbase/internal/server"
)

// @title SponsorBase API
// @version 1.0
// @description API for managing child sponsorship records, sponsors, staff and bulk spreadsheet imports

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
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
