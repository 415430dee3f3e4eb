package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const (
	findworkBaseURL = "https://findwork.dev/api/jobs/"
	findworkSource  = "Findwork"
)

// findworkResult mirrors a single item of the Findwork jobs API response.
type findworkResult struct {
	Role           string `json:"role"`
	CompanyName    string `json:"company_name"`
	Location       string `json:"location"`
	Text           string `json:"text"`
	EmploymentType string `json:"employment_type"`
	URL            string `json:"url"`
	Remote         bool   `json:"remote"`
}

type findworkResponse struct {
	Results []findworkResult `json:"results"`
}

// FindworkProvider queries the Findwork job-search API with a token-
// authenticated GET.
type FindworkProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewFindworkProvider(apiKey string) *FindworkProvider {
	return &FindworkProvider{
		apiKey:  apiKey,
		baseURL: findworkBaseURL,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

func (p *FindworkProvider) Source() string { return findworkSource }

func (p *FindworkProvider) Fetch(ctx context.Context, keywords, location string) ([]Listing, error) {
	params := url.Values{}
	params.Set("search", keywords)
	if location != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("findwork request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("findwork fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("findwork read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Provider: findworkSource, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp findworkResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("findwork decode: %w", err)
	}

	listings := make([]Listing, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		loc := r.Location
		if loc == "" && r.Remote {
			loc = "Remote"
		}
		listings = append(listings, Listing{
			Title:       r.Role,
			Company:     r.CompanyName,
			Location:    loc,
			Description: r.Text,
			JobType:     r.EmploymentType,
			URL:         r.URL,
		})
	}
	return listings, nil
}
