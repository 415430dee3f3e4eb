package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jobquestapp/jobquest-backend/internal/auth"
	"github.com/jobquestapp/jobquest-backend/internal/dtos"
	"github.com/jobquestapp/jobquest-backend/internal/models"
	"github.com/jobquestapp/jobquest-backend/internal/normalize"
	"github.com/jobquestapp/jobquest-backend/internal/provider"
)

var (
	ErrInvalidRequest = errors.New("keywords are required")
	ErrUnauthorized   = errors.New("unauthorized")
)

// SearchService runs the ingestion pipeline: validate, resolve the caller,
// fetch from the configured provider, normalize, persist.
type SearchService struct {
	provider provider.Provider
	store    JobStore
	verifier auth.Verifier
	log      zerolog.Logger
}

func NewSearchService(p provider.Provider, store JobStore, verifier auth.Verifier, log zerolog.Logger) *SearchService {
	return &SearchService{provider: p, store: store, verifier: verifier, log: log}
}

// Search validates the request, resolves the bearer token to a user, fetches
// and normalizes listings from the active provider, then persists them as one
// batch and returns the stored records. Repeated identical searches insert
// fresh rows; deduplication belongs to the save/unsave flows, not ingestion.
func (s *SearchService) Search(ctx context.Context, token string, req dtos.SearchRequest) ([]models.Job, error) {
	if strings.TrimSpace(req.Keywords) == "" {
		return nil, ErrInvalidRequest
	}

	user, err := s.verifier.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	listings, err := s.provider.Fetch(ctx, req.Keywords, req.Location)
	if err != nil {
		return nil, fmt.Errorf("fetch from %s: %w", s.provider.Source(), err)
	}

	jobs := normalize.Jobs(listings, s.provider.Source(), user.ID)
	saved, err := s.store.SaveJobs(ctx, jobs)
	if err != nil {
		return nil, err
	}
	if saved == nil {
		saved = []models.Job{}
	}

	s.log.Info().
		Str("source", s.provider.Source()).
		Str("user_id", user.ID).
		Int("fetched", len(listings)).
		Int("persisted", len(saved)).
		Msg("search ingested")
	return saved, nil
}
