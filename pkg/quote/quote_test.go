package quote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDaily(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"content":"Do the thing.","author":"Someone"}`))
	}))
	defer srv.Close()

	q := Fetcher{URL: srv.URL}.Daily(context.Background())
	if q.Text != "Do the thing." || q.Author != "Someone" {
		t.Fatalf("unexpected quote: %+v", q)
	}
}

func TestDailyFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if q := (Fetcher{URL: srv.URL}).Daily(context.Background()); q != Placeholder {
		t.Fatalf("expected placeholder, got %+v", q)
	}
}

func TestDailyFallsBackOnBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	if q := (Fetcher{URL: srv.URL}).Daily(context.Background()); q != Placeholder {
		t.Fatalf("expected placeholder, got %+v", q)
	}
}

func TestDailyFallsBackOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	if q := (Fetcher{URL: srv.URL}).Daily(context.Background()); q != Placeholder {
		t.Fatalf("expected placeholder, got %+v", q)
	}
}

func TestQuoteString(t *testing.T) {
	q := Quote{Text: "Less, but better.", Author: "Dieter Rams"}
	if got := q.String(); got != "“Less, but better.” — Dieter Rams" {
		t.Fatalf("unexpected rendering: %s", got)
	}
}
