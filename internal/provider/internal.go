package provider

import "context"

const internalSource = "Internal"

// InternalProvider builds exactly one listing straight from the request, with
// no upstream call. This is the minimal deployment used before any job-board
// credentials exist.
type InternalProvider struct{}

func NewInternalProvider() *InternalProvider { return &InternalProvider{} }

func (*InternalProvider) Source() string { return internalSource }

func (*InternalProvider) Fetch(_ context.Context, keywords, location string) ([]Listing, error) {
	return []Listing{{
		Title:       keywords,
		Company:     "Example Company",
		Location:    location,
		Description: "This is a sample job description.",
		SalaryRange: "$50,000 - $100,000",
		JobType:     "Full-time",
		URL:         "https://example.com/job",
	}}, nil
}
