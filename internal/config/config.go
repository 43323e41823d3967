package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// ErrMissingAPIKey signals that no credential was found; callers treat it as
// fatal before any network call is made.
var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY not found in environment variables")

type Config struct {
	// APIKey authorizes requests to the Generative Language API.
	APIKey string
	// Proxy is an optional upstream proxy URL. Must be http or socks5.
	// Example: "http://127.0.0.1:8080" or "socks5://127.0.0.1:1080"
	Proxy string
	// RequestTimeout bounds a single probe request. Zero keeps the
	// client library's default.
	RequestTimeout time.Duration
}

// Load reads configuration from the process environment, optionally
// populating it first from a local env file. A missing env file is not an
// error; explicit environment variables win over file values.
func Load(envFile string) (Config, error) {
	var cfg Config
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			logrus.Debugf("env file %s not loaded: %v", envFile, err)
		} else {
			logrus.Infof("loaded environment from %s", envFile)
		}
	}
	cfg.APIKey = os.Getenv("GOOGLE_API_KEY")
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	cfg.Proxy = os.Getenv("GEMCHECK_PROXY")
	if v := os.Getenv("GEMCHECK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid GEMCHECK_TIMEOUT: %w", err)
		}
		cfg.RequestTimeout = d
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	// Validate proxy scheme if provided
	if c.Proxy != "" {
		u, err := url.Parse(c.Proxy)
		if err != nil {
			return fmt.Errorf("invalid proxy URL: %w", err)
		}
		switch u.Scheme {
		case "http", "socks5":
			// ok
		default:
			return fmt.Errorf("proxy scheme must be http or socks5")
		}
		if u.Host == "" {
			return fmt.Errorf("proxy URL must include host:port")
		}
	}
	return nil
}

// RedactedKey returns a short key prefix safe for display.
func (c Config) RedactedKey() string {
	if len(c.APIKey) <= 10 {
		return c.APIKey
	}
	return c.APIKey[:10] + "..."
}
