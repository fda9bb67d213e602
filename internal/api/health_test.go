package api_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
)

func TestLiveness_ReturnsOK(t *testing.T) {
	t.Parallel()

	w := doRequest(newTestRouter(nil), http.MethodGet, "/health", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %v", body["status"])
	}

	if body["version"] != "test-v1" {
		t.Errorf("expected version 'test-v1', got %v", body["version"])
	}
}

func TestMetrics_Exposed(t *testing.T) {
	t.Parallel()

	r := newTestRouter(nil)
	doRequest(r, http.MethodPost, "/v1/solve", `{"layout": [[1, 0, 2]]}`)
	w := doRequest(r, http.MethodGet, "/metrics", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "gridpath_solves_total") {
		t.Error("expected gridpath_solves_total in /metrics output")
	}
}
