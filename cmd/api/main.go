package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"libreria-backend/pkg/logger"
)

func main() {
	// A .env file is a convenience for development; the installed
	// application runs on system environment variables alone.
	dotenvErr := godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	logger.Init(env)
	if dotenvErr != nil {
		logger.Debug("no .env file found, using system environment")
	}

	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	Serve()
}
