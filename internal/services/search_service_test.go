package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/jobquestapp/jobquest-backend/internal/auth"
	"github.com/jobquestapp/jobquest-backend/internal/dtos"
	"github.com/jobquestapp/jobquest-backend/internal/models"
	"github.com/jobquestapp/jobquest-backend/internal/provider"
)

type fakeProvider struct {
	calls    int
	listings []provider.Listing
	err      error
}

func (f *fakeProvider) Source() string { return "Fake" }

func (f *fakeProvider) Fetch(_ context.Context, _, _ string) ([]provider.Listing, error) {
	f.calls++
	return f.listings, f.err
}

type fakeStore struct {
	calls int
	saved []models.Job
	err   error
}

func (f *fakeStore) SaveJobs(_ context.Context, jobs []models.Job) ([]models.Job, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(jobs) == 0 {
		return nil, nil
	}
	f.saved = append(f.saved, jobs...)
	return jobs, nil
}

type fakeVerifier struct {
	calls    int
	identity *auth.Identity
	err      error
}

func (f *fakeVerifier) GetUser(_ context.Context, _ string) (*auth.Identity, error) {
	f.calls++
	return f.identity, f.err
}

func newTestService(p *fakeProvider, store *fakeStore, v *fakeVerifier) *SearchService {
	return NewSearchService(p, store, v, zerolog.Nop())
}

func validListings() []provider.Listing {
	return []provider.Listing{
		{Title: "Backend Engineer", Company: "Acme Corp"},
		{Title: "Data Analyst", Company: "Initech", Location: "Austin, TX"},
	}
}

func TestSearch_EmptyKeywordsShortCircuits(t *testing.T) {
	p := &fakeProvider{}
	store := &fakeStore{}
	v := &fakeVerifier{identity: &auth.Identity{ID: "user-1"}}
	svc := newTestService(p, store, v)

	_, err := svc.Search(context.Background(), "token", dtos.SearchRequest{Keywords: "   "})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if p.calls != 0 {
		t.Errorf("provider must not be invoked, got %d calls", p.calls)
	}
	if v.calls != 0 {
		t.Errorf("identity must not be resolved, got %d calls", v.calls)
	}
	if store.calls != 0 {
		t.Errorf("no writes expected, got %d calls", store.calls)
	}
}

func TestSearch_UnresolvedIdentity(t *testing.T) {
	p := &fakeProvider{listings: validListings()}
	store := &fakeStore{}
	v := &fakeVerifier{identity: nil}
	svc := newTestService(p, store, v)

	_, err := svc.Search(context.Background(), "bad-token", dtos.SearchRequest{Keywords: "engineer"})
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if p.calls != 0 {
		t.Errorf("provider must not be invoked, got %d calls", p.calls)
	}
	if store.calls != 0 {
		t.Errorf("no writes expected, got %d calls", store.calls)
	}
}

func TestSearch_VerifierFailureIsNotUnauthorized(t *testing.T) {
	v := &fakeVerifier{err: errors.New("auth service returned 500")}
	svc := newTestService(&fakeProvider{}, &fakeStore{}, v)

	_, err := svc.Search(context.Background(), "token", dtos.SearchRequest{Keywords: "engineer"})
	if err == nil || errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected a transport error, got %v", err)
	}
}

func TestSearch_Success(t *testing.T) {
	p := &fakeProvider{listings: validListings()}
	store := &fakeStore{}
	v := &fakeVerifier{identity: &auth.Identity{ID: "user-1"}}
	svc := newTestService(p, store, v)

	jobs, err := svc.Search(context.Background(), "token", dtos.SearchRequest{Keywords: "engineer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(jobs) == 0 {
		t.Fatal("expected at least one persisted job")
	}
	for i, j := range jobs {
		if j.UserID != "user-1" {
			t.Errorf("job %d: expected user-1, got %q", i, j.UserID)
		}
		if j.Source != "Fake" {
			t.Errorf("job %d: expected provider tag, got %q", i, j.Source)
		}
		if j.Title == "" || j.Company == "" {
			t.Errorf("job %d: title and company must be non-empty", i)
		}
		if j.Location == "" || j.JobType == "" {
			t.Errorf("job %d: defaults must be substituted", i)
		}
	}
}

func TestSearch_NoUsableListingsYieldsEmptyBatch(t *testing.T) {
	p := &fakeProvider{} // upstream legitimately returns nothing
	store := &fakeStore{}
	v := &fakeVerifier{identity: &auth.Identity{ID: "user-1"}}
	svc := newTestService(p, store, v)

	jobs, err := svc.Search(context.Background(), "token", dtos.SearchRequest{Keywords: "engineer"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if jobs == nil {
		t.Fatal("expected a non-nil empty batch so the response serializes as an array")
	}
	if len(jobs) != 0 {
		t.Errorf("expected no jobs, got %d", len(jobs))
	}
}

func TestSearch_ProviderFailureAbortsRequest(t *testing.T) {
	p := &fakeProvider{err: &provider.StatusError{Provider: "Fake", StatusCode: 503, Body: "down"}}
	store := &fakeStore{}
	v := &fakeVerifier{identity: &auth.Identity{ID: "user-1"}}
	svc := newTestService(p, store, v)

	_, err := svc.Search(context.Background(), "token", dtos.SearchRequest{Keywords: "engineer"})
	if err == nil {
		t.Fatal("expected an error")
	}
	var statusErr *provider.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected wrapped *StatusError, got %v", err)
	}
	if store.calls != 0 {
		t.Errorf("no writes expected after fetch failure, got %d calls", store.calls)
	}
}

func TestSearch_PersistenceFailureAbortsRequest(t *testing.T) {
	p := &fakeProvider{listings: validListings()}
	store := &fakeStore{err: errors.New("insert jobs: connection reset")}
	v := &fakeVerifier{identity: &auth.Identity{ID: "user-1"}}
	svc := newTestService(p, store, v)

	if _, err := svc.Search(context.Background(), "token", dtos.SearchRequest{Keywords: "engineer"}); err == nil {
		t.Fatal("expected an error")
	}
}

func TestSearch_RepeatedSearchesInsertDuplicates(t *testing.T) {
	p := &fakeProvider{listings: validListings()}
	store := &fakeStore{}
	v := &fakeVerifier{identity: &auth.Identity{ID: "user-1"}}
	svc := newTestService(p, store, v)

	req := dtos.SearchRequest{Keywords: "engineer", Location: "Austin"}
	if _, err := svc.Search(context.Background(), "token", req); err != nil {
		t.Fatalf("first search: %v", err)
	}
	if _, err := svc.Search(context.Background(), "token", req); err != nil {
		t.Fatalf("second search: %v", err)
	}

	// Ingestion never deduplicates: two identical searches, two full batches.
	if len(store.saved) != 2*len(validListings()) {
		t.Errorf("expected %d rows, got %d", 2*len(validListings()), len(store.saved))
	}
}
