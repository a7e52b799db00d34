package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/quillacademy/api/internal/pkg/logger"
	"github.com/quillacademy/api/internal/server"
)

// @title QuillAcademy API
// @version 1.0
// @description API for the QuillAcademy online class marketplace

// @contact.name API Support
// @contact.email support@quillacademy.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /api/v1
// @schemes http https

func main() {
	// A missing .env file is fine; environment variables may already be set
	_ = godotenv.Load()

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run the server (this blocks until shutdown signal)
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
