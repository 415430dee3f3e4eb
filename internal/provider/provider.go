// Package provider implements job listing retrieval from external sources.
// Each provider isolates one upstream API: its URL scheme, auth headers and
// response shape never leak past this package.
package provider

import (
	"context"
	"time"
)

const httpTimeout = 15 * time.Second

// Listing is a provider's raw result reduced to the fields the pipeline cares
// about. Optional fields stay empty when the upstream omits them; the
// normalizer substitutes defaults downstream.
type Listing struct {
	Title       string
	Company     string
	Location    string
	Description string
	SalaryRange string
	JobType     string
	URL         string
}

// Provider fetches job listings from one external source. Exactly one
// provider is active per deployment, selected by configuration.
type Provider interface {
	// Source is the tag stamped on every job this provider produces.
	Source() string
	Fetch(ctx context.Context, keywords, location string) ([]Listing, error)
}
