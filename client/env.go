package client

import (
	"fmt"
	"log/slog"
	"os"
)

const (
	// DefaultBaseURL is the staging endpoint used when no override is
	// given via config or environment.
	DefaultBaseURL = "https://staging-api.alphahuman.xyz"

	DefaultApiKeyEnvVar  = "ALPHAHUMAN_API_KEY"
	DefaultBaseURLEnvVar = "ALPHAHUMAN_BASE_URL"
)

// CreateClientFromEnv builds a client from ALPHAHUMAN_API_KEY (required)
// and ALPHAHUMAN_BASE_URL (optional). This is the only place the package
// reads the environment; NewClient itself is purely parameter-driven.
func CreateClientFromEnv(logger *slog.Logger) (*Client, error) {
	token := os.Getenv(DefaultApiKeyEnvVar)
	if token == "" {
		return nil, fmt.Errorf("%w: environment variable %s is not set", ErrValidation, DefaultApiKeyEnvVar)
	}

	return NewClient(&Config{
		Token:   token,
		BaseURL: os.Getenv(DefaultBaseURLEnvVar),
		Logger:  logger,
	})
}
