package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/jobquestapp/jobquest-backend/internal/auth"
	"github.com/jobquestapp/jobquest-backend/internal/config"
	"github.com/jobquestapp/jobquest-backend/internal/database"
	"github.com/jobquestapp/jobquest-backend/internal/handlers"
	"github.com/jobquestapp/jobquest-backend/internal/provider"
	"github.com/jobquestapp/jobquest-backend/internal/services"
)

func main() {
	// .env is a local-dev convenience; production sets real env vars.
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connection failed")
	}
	logger.Info().Msg("database connection established")

	prov, err := buildProvider(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("provider setup failed")
	}
	logger.Info().Str("source", prov.Source()).Msg("job provider configured")

	verifier := auth.NewHTTPVerifier(cfg.AuthURL, cfg.AuthAPIKey)
	searchService := services.NewSearchService(prov, services.NewJobService(db), verifier, logger)
	jobHandler := handlers.NewJobHandler(searchService)

	r := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsCfg))

	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)
		api.POST("/jobs/fetch", jobHandler.FetchJobs)
	}

	if cfg.GeminiAPIKey != "" {
		model, err := services.NewAssistantModel(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Fatal().Err(err).Msg("assistant setup failed")
		}
		assistant := services.NewAssistantService(model, services.NewChatService(db), verifier, logger)
		api.POST("/assistant/chat", handlers.NewAssistantHandler(assistant).Chat)
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set; assistant endpoint disabled")
	}

	logger.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}

// buildProvider wires the single active job source for this deployment.
func buildProvider(cfg *config.Config) (provider.Provider, error) {
	switch cfg.Provider {
	case config.ProviderMock:
		return provider.NewMockProvider(time.Now().UnixNano()), nil
	case config.ProviderInternal:
		return provider.NewInternalProvider(), nil
	case config.ProviderFindwork:
		return provider.NewFindworkProvider(cfg.FindworkKey), nil
	case config.ProviderRapidAPI:
		return provider.NewRapidAPIProvider(cfg.RapidAPIKey), nil
	case config.ProviderLinkedIn:
		return provider.NewLinkedInProvider(cfg.RapidAPIKey), nil
	}
	return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
}
