package steamapi

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingKey is returned when no API key is configured.
var ErrMissingKey = errors.New("steam api key not set")

// Config holds configuration for the Steam Web API client.
type Config struct {
	// APIKey is the Steam Web API key.
	APIKey string `mapstructure:"api_key" default:""`
	// APIKeyFile is read when APIKey is empty. The file holds the key as its only contents.
	APIKeyFile string `mapstructure:"api_key_file" default:"apikey"`
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.steampowered.com"`
	// Language is the schema localization.
	Language string `mapstructure:"language" default:"en"`
	// TimeoutSeconds bounds every request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// LogRequests logs each request URL.
	LogRequests bool `mapstructure:"log_requests" default:"false"`
}

// Key returns the configured API key, falling back to the key file.
func (c Config) Key() (string, error) {
	if key := strings.TrimSpace(c.APIKey); key != "" {
		return key, nil
	}
	if c.APIKeyFile == "" {
		return "", ErrMissingKey
	}

	raw, err := os.ReadFile(c.APIKeyFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s not found", ErrMissingKey, c.APIKeyFile)
		}
		return "", fmt.Errorf("failed to read api key file: %w", err)
	}

	key := strings.TrimSpace(string(raw))
	if key == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrMissingKey, c.APIKeyFile)
	}
	return key, nil
}
