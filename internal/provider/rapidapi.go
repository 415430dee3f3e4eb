package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	jsearchBaseURL = "https://jsearch.p.rapidapi.com/search"
	jsearchHost    = "jsearch.p.rapidapi.com"
	rapidAPISource = "RapidAPI"
)

// jsearchJob mirrors one entry of the JSearch (RapidAPI) response.
type jsearchJob struct {
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	JobCity           string   `json:"job_city"`
	JobCountry        string   `json:"job_country"`
	JobDescription    string   `json:"job_description"`
	JobMinSalary      *float64 `json:"job_min_salary"`
	JobMaxSalary      *float64 `json:"job_max_salary"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobIsRemote       bool     `json:"job_is_remote"`
}

type jsearchResponse struct {
	Data []jsearchJob `json:"data"`
}

// JSearch reports employment types in its own vocabulary.
var jsearchEmploymentTypes = map[string]string{
	"FULLTIME":   "Full-time",
	"PARTTIME":   "Part-time",
	"CONTRACTOR": "Contract",
	"INTERN":     "Internship",
}

// RapidAPIProvider queries the JSearch job-search API hosted on RapidAPI.
type RapidAPIProvider struct {
	apiKey  string
	baseURL string
	host    string
	client  *http.Client
}

func NewRapidAPIProvider(apiKey string) *RapidAPIProvider {
	return &RapidAPIProvider{
		apiKey:  apiKey,
		baseURL: jsearchBaseURL,
		host:    jsearchHost,
		client:  &http.Client{Timeout: httpTimeout},
	}
}

func (p *RapidAPIProvider) Source() string { return rapidAPISource }

func (p *RapidAPIProvider) Fetch(ctx context.Context, keywords, location string) ([]Listing, error) {
	query := keywords
	if location != "" {
		query += " in " + location
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("num_pages", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("jsearch request: %w", err)
	}
	req.Header.Set("X-RapidAPI-Key", p.apiKey)
	req.Header.Set("X-RapidAPI-Host", p.host)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jsearch fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jsearch read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Provider: rapidAPISource, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp jsearchResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("jsearch decode: %w", err)
	}

	listings := make([]Listing, 0, len(apiResp.Data))
	for _, j := range apiResp.Data {
		listings = append(listings, Listing{
			Title:       j.JobTitle,
			Company:     j.EmployerName,
			Location:    jsearchLocation(j),
			Description: j.JobDescription,
			SalaryRange: salaryRange(j.JobMinSalary, j.JobMaxSalary),
			JobType:     jsearchEmploymentTypes[j.JobEmploymentType],
			URL:         j.JobApplyLink,
		})
	}
	return listings, nil
}

func jsearchLocation(j jsearchJob) string {
	parts := make([]string, 0, 2)
	if j.JobCity != "" {
		parts = append(parts, j.JobCity)
	}
	if j.JobCountry != "" {
		parts = append(parts, j.JobCountry)
	}
	if len(parts) == 0 && j.JobIsRemote {
		return "Remote"
	}
	return strings.Join(parts, ", ")
}

// salaryRange renders annual figures as "$80,000 - $120,000". Either bound
// may be missing; both missing yields an empty string.
func salaryRange(min, max *float64) string {
	switch {
	case min != nil && max != nil:
		return usd(*min) + " - " + usd(*max)
	case min != nil:
		return "From " + usd(*min)
	case max != nil:
		return "Up to " + usd(*max)
	}
	return ""
}

func usd(v float64) string {
	s := strconv.FormatInt(int64(v), 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	out := "$" + b.String()
	if neg {
		out = "-" + out
	}
	return out
}
