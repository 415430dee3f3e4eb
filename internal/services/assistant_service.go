package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/jobquestapp/jobquest-backend/internal/auth"
	"github.com/jobquestapp/jobquest-backend/internal/dtos"
	"github.com/jobquestapp/jobquest-backend/internal/models"
)

const resumePrompt = `You are an experienced career coach helping a job seeker improve their resume.
Give specific, actionable advice. Prefer concrete wording suggestions over generalities.

Request: %s`

const coverLetterPrompt = `You are an experienced career coach helping a job seeker write a cover letter.
Give specific, actionable advice and suggest concrete phrasing where helpful.

Request: %s`

// ChatStore persists assistant exchanges.
type ChatStore interface {
	SaveMessage(ctx context.Context, msg *models.ChatMessage) error
}

// NewAssistantModel builds the Gemini client used by the assistant.
func NewAssistantModel(ctx context.Context, apiKey string) (llms.Model, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return llm, nil
}

// AssistantService generates resume and cover-letter guidance and records
// each exchange in chat history.
type AssistantService struct {
	model    llms.Model
	store    ChatStore
	verifier auth.Verifier
	log      zerolog.Logger
}

func NewAssistantService(model llms.Model, store ChatStore, verifier auth.Verifier, log zerolog.Logger) *AssistantService {
	return &AssistantService{model: model, store: store, verifier: verifier, log: log}
}

// Chat resolves the caller, generates a response for the requested document
// type and persists the exchange.
func (s *AssistantService) Chat(ctx context.Context, token string, req dtos.ChatRequest) (*models.ChatMessage, error) {
	user, err := s.verifier.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve identity: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	prompt := resumePrompt
	if req.Type == "cover_letter" {
		prompt = coverLetterPrompt
	}

	resp, err := llms.GenerateFromSinglePrompt(ctx, s.model, fmt.Sprintf(prompt, req.Message))
	if err != nil {
		return nil, fmt.Errorf("generate response: %w", err)
	}

	msg := &models.ChatMessage{
		Message:  req.Message,
		Response: resp,
		Type:     req.Type,
		UserID:   user.ID,
	}
	if err := s.store.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("type", req.Type).Msg("assistant exchange stored")
	return msg, nil
}
