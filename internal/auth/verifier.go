// Package auth resolves bearer tokens against the managed auth service.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Identity is the resolved caller. Every persisted row is scoped to its ID.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier exchanges a bearer token for the caller's identity. A nil identity
// with a nil error means the token resolved to no user.
type Verifier interface {
	GetUser(ctx context.Context, token string) (*Identity, error)
}

// HTTPVerifier resolves tokens against a GoTrue-compatible /auth/v1/user
// endpoint, the auth API exposed by the managed backend.
type HTTPVerifier struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewHTTPVerifier(baseURL, apiKey string) *HTTPVerifier {
	return &HTTPVerifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *HTTPVerifier) GetUser(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.apiKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth user lookup: %w", err)
	}
	defer resp.Body.Close()

	// An invalid or expired token is not a transport failure.
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden ||
		resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("auth service returned %d: %s", resp.StatusCode, body)
	}

	var id Identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return nil, fmt.Errorf("auth decode: %w", err)
	}
	if id.ID == "" {
		return nil, nil
	}
	return &id, nil
}
