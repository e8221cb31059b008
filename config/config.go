package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is the on-disk configuration the command-line client accepts as
// an alternative to environment variables. Token may be left empty in the
// file and supplied via ALPHAHUMAN_API_KEY instead, so the profile can be
// committed without the secret.
type Profile struct {
	Token          string `yaml:"token,omitempty"`
	BaseURL        string `yaml:"baseUrl,omitempty"`
	Namespace      string `yaml:"namespace,omitempty"`
	TimeoutSeconds int    `yaml:"timeoutSeconds,omitempty"` // yaml has no duration scalar
	SkipVerify     bool   `yaml:"skipVerify,omitempty"`
}

// Timeout returns the profile timeout as a duration, zero when unset.
func (p *Profile) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Load reads a profile from a YAML file.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var profile Profile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config data from %s: %w", path, err)
	}
	return &profile, nil
}
