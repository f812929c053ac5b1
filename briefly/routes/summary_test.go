package routes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"briefly/briefly/controllers"
	"briefly/briefly/services/links"
	"briefly/briefly/services/loader"
	"briefly/briefly/types"
	"briefly/briefly/utils/logging"
)

func init() {
	logging.InitTestLogger()
}

type staticAcquirer struct {
	docs []types.Document
	err  error
}

func (s *staticAcquirer) Acquire(ctx context.Context, rawURL string) ([]types.Document, error) {
	return s.docs, s.err
}

type staticSummarizer struct {
	summary string
	err     error
}

func (s *staticSummarizer) Summarize(ctx context.Context, docs []types.Document, opts types.UserOptions) (string, error) {
	return s.summary, s.err
}

func newTestRouter(t *testing.T, a *staticAcquirer, s *staticSummarizer) http.Handler {
	t.Helper()
	f, err := links.NewFilter()
	if err != nil {
		t.Fatalf("NewFilter failed: %v", err)
	}
	return SummaryRoutes(controllers.NewSummaryController(a, f, s))
}

func TestSummarizeEndpoint(t *testing.T) {
	r := newTestRouter(t,
		&staticAcquirer{docs: []types.Document{{Content: "text with https://example.org/x", Source: "u"}}},
		&staticSummarizer{summary: "a short summary"},
	)

	body := `{"url": "https://example.com", "length": 300, "style": "Bullet Points", "show_links": true}`
	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}

	var resp types.SummarizeResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Summary != "a short summary" {
		t.Errorf("summary = %q", resp.Summary)
	}
	if resp.WordCount != 3 {
		t.Errorf("word_count = %d, want 3", resp.WordCount)
	}
	if resp.LinkCount != 1 {
		t.Errorf("link_count = %d, want 1", resp.LinkCount)
	}
}

func TestSummarizeEndpointBadRequests(t *testing.T) {
	r := newTestRouter(t, &staticAcquirer{}, &staticSummarizer{})

	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"url": `},
		{"empty url", `{"url": ""}`},
		{"invalid url", `{"url": "not a url"}`},
		{"unknown style", `{"url": "https://example.com", "style": "interpretive dance"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/summarize", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rr.Code)
			}
		})
	}
}

func TestSummarizeEndpointAcquisitionFailure(t *testing.T) {
	r := newTestRouter(t,
		&staticAcquirer{err: fmt.Errorf("%w: both video paths failed", loader.ErrNoContent)},
		&staticSummarizer{summary: "never"},
	)

	req := httptest.NewRequest("POST", "/summarize", strings.NewReader(`{"url": "https://example.com"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rr.Code)
	}
	if strings.Contains(rr.Body.String(), "never") {
		t.Error("no summary may be returned on acquisition failure")
	}
}

func TestDownloadEndpoint(t *testing.T) {
	r := newTestRouter(t,
		&staticAcquirer{docs: []types.Document{{Content: "text", Source: "u"}}},
		&staticSummarizer{summary: "downloadable summary"},
	)

	req := httptest.NewRequest("POST", "/summarize?format=text", strings.NewReader(`{"url": "https://example.com"}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
	cd := rr.Header().Get("Content-Disposition")
	if !strings.HasPrefix(cd, "attachment;") || !strings.Contains(cd, ".txt") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(rr.Body.String(), "downloadable summary") {
		t.Errorf("body = %q", rr.Body.String())
	}
}

func TestStylesEndpoint(t *testing.T) {
	r := newTestRouter(t, &staticAcquirer{}, &staticSummarizer{})

	req := httptest.NewRequest("GET", "/styles", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var styles []string
	if err := json.Unmarshal(rr.Body.Bytes(), &styles); err != nil {
		t.Fatalf("decode styles: %v", err)
	}
	if len(styles) != 3 {
		t.Errorf("styles = %v, want 3 entries", styles)
	}
}
