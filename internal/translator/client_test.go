package translator

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTranslateSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/translate" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Text != "hello" || req.Source != "en" || req.Target != "hy" {
			t.Errorf("unexpected request payload: %+v", req)
		}

		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "barev"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, newTestLogger())

	got, err := client.Translate(context.Background(), "hello", "en", "hy")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "barev" {
		t.Errorf("translate = %q, want %q", got, "barev")
	}
}

func TestTranslateDefaultsToAutoDetect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req translateRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Source != "auto" {
			t.Errorf("expected auto source, got %q", req.Source)
		}
		json.NewEncoder(w).Encode(translateResponse{TranslatedText: "barev"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, newTestLogger())
	if _, err := client.Translate(context.Background(), "hello", "", "hy"); err != nil {
		t.Fatalf("translate: %v", err)
	}
}

func TestTranslateNotConfigured(t *testing.T) {
	client := NewClient(Config{}, newTestLogger())

	_, err := client.Translate(context.Background(), "hello", "en", "hy")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestTranslateProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, newTestLogger())

	_, err := client.Translate(context.Background(), "hello", "en", "hy")

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if provErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", provErr.StatusCode, http.StatusTooManyRequests)
	}
}

func TestTranslateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, newTestLogger())

	_, err := client.Translate(context.Background(), "hello", "en", "hy")

	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
}

func TestTranslateEmptyTranslation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(translateResponse{})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, newTestLogger())

	if _, err := client.Translate(context.Background(), "hello", "en", "hy"); err == nil {
		t.Fatal("expected error for empty translation")
	}
}
