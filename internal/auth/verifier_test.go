package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPVerifier_GetUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer valid-token" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		if got := r.Header.Get("apikey"); got != "anon-key" {
			t.Errorf("unexpected apikey header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user-123","email":"jo@example.com"}`))
	}))
	defer srv.Close()

	v := NewHTTPVerifier(srv.URL, "anon-key")
	id, err := v.GetUser(context.Background(), "valid-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == nil {
		t.Fatal("expected an identity")
	}
	if id.ID != "user-123" {
		t.Errorf("unexpected id: %q", id.ID)
	}
	if id.Email != "jo@example.com" {
		t.Errorf("unexpected email: %q", id.Email)
	}
}

func TestHTTPVerifier_GetUser_InvalidToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid JWT"}`))
	}))
	defer srv.Close()

	id, err := NewHTTPVerifier(srv.URL, "anon-key").GetUser(context.Background(), "expired")
	if err != nil {
		t.Fatalf("an invalid token is not an error: %v", err)
	}
	if id != nil {
		t.Errorf("expected nil identity, got %+v", id)
	}
}

func TestHTTPVerifier_GetUser_EmptyToken(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	id, err := NewHTTPVerifier(srv.URL, "anon-key").GetUser(context.Background(), "")
	if err != nil || id != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", id, err)
	}
	if called {
		t.Error("no request expected for an empty token")
	}
}

func TestHTTPVerifier_GetUser_ServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	if _, err := NewHTTPVerifier(srv.URL, "anon-key").GetUser(context.Background(), "token"); err == nil {
		t.Fatal("expected an error for a 5xx response")
	}
}

func TestHTTPVerifier_GetUser_EmptyIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	id, err := NewHTTPVerifier(srv.URL, "anon-key").GetUser(context.Background(), "token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != nil {
		t.Errorf("a response without an id resolves to no user, got %+v", id)
	}
}
