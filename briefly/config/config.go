package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey is fatal at startup: without the Groq credential the
// summarization pipeline cannot run at all.
var ErrMissingAPIKey = errors.New("no Groq API key found, set GROQ_API_KEY in the environment or .env file")

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 13_5_1) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) " +
	"Chrome/116.0.0.0 Safari/537.36"

type Config struct {
	Addr string `env:"ADDR" envDefault:":8000"`

	GroqAPIKey  string `env:"GROQ_API_KEY"`
	GroqBaseURL string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	Model       string `env:"GROQ_MODEL"    envDefault:"llama-3.1-8b-instant"`

	UserAgent        string        `env:"USER_AGENT"`
	FetchTimeout     time.Duration `env:"FETCH_TIMEOUT"     envDefault:"30s"`
	YTDLPPath        string        `env:"YTDLP_PATH"        envDefault:"yt-dlp"`
	RenderedFallback bool          `env:"RENDERED_FALLBACK" envDefault:"false"`

	CacheTTL        time.Duration `env:"CACHE_TTL"         envDefault:"15m"`
	CacheMaxEntries int           `env:"CACHE_MAX_ENTRIES" envDefault:"256"`
	ChunkChars      int           `env:"CHUNK_CHARS"       envDefault:"12000"`

	// OverridesPath points at an optional YAML file with site-local tunables.
	OverridesPath string `env:"BRIEFLY_CONFIG" envDefault:"briefly.yaml"`

	// ExtraDenylist extends the built-in social-media link denylist.
	// Settable only through the overrides file.
	ExtraDenylist []string
}

// overrides mirrors the subset of Config adjustable from the YAML file.
type overrides struct {
	Model            *string  `yaml:"model"`
	UserAgent        *string  `yaml:"user_agent"`
	YTDLPPath        *string  `yaml:"ytdlp_path"`
	RenderedFallback *bool    `yaml:"rendered_fallback"`
	ChunkChars       int      `yaml:"chunk_chars"`
	Denylist         []string `yaml:"denylist"`
}

// Load reads .env (when present), the process environment, and the
// optional YAML overrides file, in that order of increasing precedence.
func Load() (Config, error) {
	// A missing .env file is fine: deployments set real env vars.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}

	if err := cfg.applyOverrides(cfg.OverridesPath); err != nil {
		return Config{}, err
	}

	if cfg.GroqAPIKey == "" {
		return Config{}, ErrMissingAPIKey
	}
	return cfg, nil
}

func (c *Config) applyOverrides(path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read overrides file: %w", err)
	}

	var o overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return fmt.Errorf("parse overrides file %q: %w", path, err)
	}

	if o.Model != nil {
		c.Model = *o.Model
	}
	if o.UserAgent != nil {
		c.UserAgent = *o.UserAgent
	}
	if o.YTDLPPath != nil {
		c.YTDLPPath = *o.YTDLPPath
	}
	if o.RenderedFallback != nil {
		c.RenderedFallback = *o.RenderedFallback
	}
	if o.ChunkChars > 0 {
		c.ChunkChars = o.ChunkChars
	}
	c.ExtraDenylist = append(c.ExtraDenylist, o.Denylist...)

	return nil
}
