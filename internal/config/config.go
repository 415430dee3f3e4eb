// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process refuses to start.
package config

import (
	"fmt"
	"os"
)

// Provider names accepted by JOB_PROVIDER.
const (
	ProviderMock     = "mock"
	ProviderInternal = "internal"
	ProviderFindwork = "findwork"
	ProviderRapidAPI = "rapidapi"
	ProviderLinkedIn = "linkedin"
)

// Config holds all runtime configuration for the API service.
type Config struct {
	Port        string
	DatabaseDSN string

	AuthURL    string
	AuthAPIKey string

	// Provider is the single active job source for this deployment.
	Provider    string
	FindworkKey string
	RapidAPIKey string

	// GeminiAPIKey is optional; the assistant endpoint is disabled without it.
	GeminiAPIKey string
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}

	authURL := os.Getenv("AUTH_URL")
	if authURL == "" {
		return nil, fmt.Errorf("AUTH_URL is required")
	}

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DatabaseDSN:  dsn,
		AuthURL:      authURL,
		AuthAPIKey:   os.Getenv("AUTH_API_KEY"),
		Provider:     os.Getenv("JOB_PROVIDER"),
		FindworkKey:  os.Getenv("FINDWORK_API_KEY"),
		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Provider == "" {
		cfg.Provider = ProviderMock
	}

	switch cfg.Provider {
	case ProviderMock, ProviderInternal:
	case ProviderFindwork:
		if cfg.FindworkKey == "" {
			return nil, fmt.Errorf("FINDWORK_API_KEY is required when JOB_PROVIDER=findwork")
		}
	case ProviderRapidAPI, ProviderLinkedIn:
		if cfg.RapidAPIKey == "" {
			return nil, fmt.Errorf("RAPIDAPI_KEY is required when JOB_PROVIDER=%s", cfg.Provider)
		}
	default:
		return nil, fmt.Errorf("unknown JOB_PROVIDER %q", cfg.Provider)
	}

	return cfg, nil
}
