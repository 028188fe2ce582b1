// Package tlclient provides the main entry point for creating Teamleader API
// clients.
package tlclient

import (
	"strings"

	"github.com/teamkit-io/teamleader/internal/client"
	"github.com/teamkit-io/teamleader/pkg/teamleader"
)

// New creates a Teamleader API client from the given config.
func New(config *teamleader.Config) (teamleader.Client, error) {
	if config == nil {
		return nil, teamleader.ErrConfigRequired
	}

	if config.Group == "" || config.Secret == "" {
		return nil, teamleader.ErrCredentialsRequired
	}

	cfg := *config
	cfg.BaseURL = normalizeBaseURL(cfg.BaseURL)

	return client.New(&cfg)
}

// NewWithCredentials creates a client against the production host with just
// the credential pair.
func NewWithCredentials(group, secret string) (teamleader.Client, error) {
	return New(&teamleader.Config{
		Group:  group,
		Secret: secret,
	})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https.
// An empty value is left for the client to replace with the production host.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return ""
	}

	baseURL = strings.TrimSuffix(baseURL, "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
