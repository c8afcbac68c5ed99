package config

import (
	"strings"
	"time"
)

// APIConfig configures the client for the remote recruitment API.
type APIConfig struct {
	// BaseURL is the API root, e.g. "https://api.example.com/api".
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5000/api"`

	// Timeout bounds each remote call.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"15s"`

	// TokenPath is a JMESPath expression locating the bearer token in the
	// sign-in response. Empty uses the client's built-in default.
	TokenPath string `env:"API_TOKEN_PATH"`
}

// Sanitize trims the base URL and clamps the timeout to 1s..2m.
func (a *APIConfig) Sanitize() {
	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	a.TokenPath = strings.TrimSpace(a.TokenPath)
	if a.Timeout < time.Second {
		a.Timeout = time.Second
	}
	if a.Timeout > 2*time.Minute {
		a.Timeout = 2 * time.Minute
	}
}
