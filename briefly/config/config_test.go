package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GROQ_API_KEY", "gsk_test")
	// Keep tests independent of any briefly.yaml in the working directory.
	t.Setenv("BRIEFLY_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":8000" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.Model != "llama-3.1-8b-instant" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.GroqBaseURL != "https://api.groq.com/openai/v1" {
		t.Errorf("GroqBaseURL = %q", cfg.GroqBaseURL)
	}
	if cfg.UserAgent == "" {
		t.Error("UserAgent default missing")
	}
	if cfg.FetchTimeout != 30*time.Second {
		t.Errorf("FetchTimeout = %v", cfg.FetchTimeout)
	}
	if cfg.YTDLPPath != "yt-dlp" {
		t.Errorf("YTDLPPath = %q", cfg.YTDLPPath)
	}
	if cfg.RenderedFallback {
		t.Error("RenderedFallback should default to off")
	}
}

func TestLoadMissingAPIKeyIsFatal(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("GROQ_API_KEY", "")

	if _, err := Load(); !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("err = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoadAppliesYAMLOverrides(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "briefly.yaml")
	overridesYAML := `
model: llama-3.3-70b-versatile
user_agent: custom-agent/2.0
rendered_fallback: true
chunk_chars: 8000
denylist:
  - tracker.example
  - ads.example
`
	if err := os.WriteFile(path, []byte(overridesYAML), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	t.Setenv("BRIEFLY_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Model != "llama-3.3-70b-versatile" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.UserAgent != "custom-agent/2.0" {
		t.Errorf("UserAgent = %q", cfg.UserAgent)
	}
	if !cfg.RenderedFallback {
		t.Error("RenderedFallback override lost")
	}
	if cfg.ChunkChars != 8000 {
		t.Errorf("ChunkChars = %d", cfg.ChunkChars)
	}
	if len(cfg.ExtraDenylist) != 2 {
		t.Errorf("ExtraDenylist = %v", cfg.ExtraDenylist)
	}
}

func TestLoadRejectsMalformedOverrides(t *testing.T) {
	setRequiredEnv(t)

	path := filepath.Join(t.TempDir(), "briefly.yaml")
	if err := os.WriteFile(path, []byte("model: [unclosed"), 0o644); err != nil {
		t.Fatalf("write overrides: %v", err)
	}
	t.Setenv("BRIEFLY_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
