package provider

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode"
)

const mockSource = "Mock Data"

var (
	mockCompanies = []string{
		"TechNova", "BrightHire", "Cloudline", "DataForge",
		"Summit Labs", "Quantiva", "NorthPeak Software", "Orbital Systems",
	}
	mockLocations = []string{
		"Remote", "New York, NY", "San Francisco, CA",
		"Austin, TX", "Seattle, WA", "Boston, MA",
	}
	mockJobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}
	mockSalaries = []string{
		"$60,000 - $80,000", "$80,000 - $100,000",
		"$100,000 - $130,000", "$130,000 - $160,000",
	}
)

// MockProvider generates synthetic listings without any network call. Used
// for demos and local development when no upstream API key is configured.
// One instance serves every request, so the generator is mutex-guarded:
// *rand.Rand is not safe for concurrent use.
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewMockProvider(seed int64) *MockProvider {
	return &MockProvider{rng: rand.New(rand.NewSource(seed))}
}

func (p *MockProvider) Source() string { return mockSource }

// Fetch produces 5 to 10 listings titled after the capitalized keyword
// phrase, sampling companies, locations, types and salary bands from fixed
// pools. A requested location overrides the sampled one.
func (p *MockProvider) Fetch(_ context.Context, keywords, location string) ([]Listing, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 5 + p.rng.Intn(6)
	title := capitalizeWords(keywords)

	listings := make([]Listing, 0, n)
	for i := 0; i < n; i++ {
		company := mockCompanies[p.rng.Intn(len(mockCompanies))]
		loc := location
		if loc == "" {
			loc = mockLocations[p.rng.Intn(len(mockLocations))]
		}
		listings = append(listings, Listing{
			Title:    title,
			Company:  company,
			Location: loc,
			Description: fmt.Sprintf(
				"%s is looking for a %s to join the team. You will collaborate across functions and ship work that reaches real users.",
				company, title),
			SalaryRange: mockSalaries[p.rng.Intn(len(mockSalaries))],
			JobType:     mockJobTypes[p.rng.Intn(len(mockJobTypes))],
			URL:         fmt.Sprintf("https://jobs.example.com/listing/%d", 10000+p.rng.Intn(90000)),
		})
	}
	return listings, nil
}

func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
