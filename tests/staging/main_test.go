//go:build staging

// Package staging smoke-tests a running companion server.
// Run with: API_URL=http://host:8080 API_KEY=... go test -tags staging ./tests/staging
package staging

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

const (
	defaultURL    = "http://localhost:8080"
	defaultAPIKey = "test-api-key"
)

var (
	baseURL string
	apiKey  string
	client  = &http.Client{Timeout: 10 * time.Second}
)

func TestMain(m *testing.M) {
	baseURL = strings.TrimRight(envOr("API_URL", defaultURL), "/")
	apiKey = envOr("API_KEY", defaultAPIKey)
	os.Exit(m.Run())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// makeRequest sends an authenticated JSON request and returns the response with its body read
func makeRequest(t *testing.T, method, path string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-API-Key", apiKey)

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("Request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return resp, respBody
}
