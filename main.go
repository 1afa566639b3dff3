package main

import (
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/navarrastar/resume-verify/pkg/api"
	"github.com/navarrastar/resume-verify/pkg/clients/twilio"
	"github.com/navarrastar/resume-verify/pkg/config"
	"github.com/navarrastar/resume-verify/pkg/services"
	"github.com/navarrastar/resume-verify/pkg/utils"
)

const appName = "verify-intake"

func main() {
	envErr := godotenv.Load()
	utils.InitLogger(appName)
	if envErr != nil {
		utils.Logger.Info("No .env file found, using environment variables")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	gin.SetMode(cfg.GinMode)

	verificationService := services.NewVerificationRequestService(utils.Logger)
	voice := twilio.NewVoiceResponder(cfg.VoiceGreeting)

	handlers := api.NewHandlers(verificationService, voice, cfg.PublicHost, utils.Logger)
	router := api.NewRouter(handlers, cfg.CORSAllowedOrigins)

	utils.Logger.Infof("Server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		utils.Logger.Fatalf("Error starting server: %v", err)
	}
}
