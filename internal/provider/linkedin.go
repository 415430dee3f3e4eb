package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	linkedinBaseURL = "https://linkedin-data-api.p.rapidapi.com/search-posts"
	linkedinHost    = "linkedin-data-api.p.rapidapi.com"
	linkedinSource  = "LinkedIn"
)

// hiringMarkers gate which posts are worth mining. A post mentioning none of
// them is discarded before any extraction runs.
var hiringMarkers = []string{"job", "hiring", "position", "career"}

// linkedinPost mirrors one feed post from the scraping API.
type linkedinPost struct {
	Text   string `json:"text"`
	Author struct {
		Name string `json:"name"`
	} `json:"author"`
	URL string `json:"url"`
}

type linkedinResponse struct {
	Data []linkedinPost `json:"data"`
}

// LinkedInProvider mines job listings out of free-text feed posts fetched
// from a social scraping API. Fields the heuristics cannot recover fall back
// to defaults downstream; the post author stands in for the company.
type LinkedInProvider struct {
	apiKey  string
	baseURL string
	host    string
	client  *http.Client
}

func NewLinkedInProvider(apiKey string) *LinkedInProvider {
	return &LinkedInProvider{
		apiKey:  apiKey,
		baseURL: linkedinBaseURL,
		host:    linkedinHost,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

func (p *LinkedInProvider) Source() string { return linkedinSource }

func (p *LinkedInProvider) Fetch(ctx context.Context, keywords, location string) ([]Listing, error) {
	params := url.Values{}
	params.Set("keywords", keywords)
	if location != "" {
		params.Set("location", location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("linkedin request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", p.apiKey)
	req.Header.Set("X-RapidAPI-Host", p.host)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("linkedin fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("linkedin read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Provider: linkedinSource, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp linkedinResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("linkedin decode: %w", err)
	}

	var listings []Listing
	for _, post := range apiResp.Data {
		if !mentionsHiring(post.Text) {
			continue
		}

		title, ok := ExtractJobTitle(post.Text)
		if !ok {
			title = capitalizeWords(keywords)
		}
		loc, _ := ExtractLocation(post.Text)
		jobType, _ := ExtractJobType(post.Text)

		listings = append(listings, Listing{
			Title:       title,
			Company:     post.Author.Name,
			Location:    loc,
			Description: post.Text,
			JobType:     jobType,
			URL:         post.URL,
		})
	}
	return listings, nil
}

func mentionsHiring(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range hiringMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
