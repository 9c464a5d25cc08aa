package nhtsa

import (
	"net/http"
	"strings"
	"time"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

// Config holds configuration for the NHTSA client.
type Config struct {
	// VPICBaseURL is the vPIC API base (default: domain.DefaultVPICBaseURL).
	VPICBaseURL string

	// RecallsBaseURL is the recalls search endpoint (default: domain.DefaultRecallsBaseURL).
	RecallsBaseURL string

	// ComplaintsBaseURL is the complaints search endpoint (default: domain.DefaultComplaintsBaseURL).
	ComplaintsBaseURL string

	// Timeout bounds each request. Zero means no client-side timeout.
	Timeout time.Duration

	// HTTPClient overrides the HTTP client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// ConfigFromSettings builds a Config from upstream settings.
func ConfigFromSettings(s domain.UpstreamSettings) Config {
	return Config{
		VPICBaseURL:       s.VPICBaseURL,
		RecallsBaseURL:    s.RecallsBaseURL,
		ComplaintsBaseURL: s.ComplaintsBaseURL,
		Timeout:           s.Timeout,
	}
}

// withDefaults fills empty base URLs and trims trailing slashes.
func (c Config) withDefaults() Config {
	if c.VPICBaseURL == "" {
		c.VPICBaseURL = domain.DefaultVPICBaseURL
	}
	if c.RecallsBaseURL == "" {
		c.RecallsBaseURL = domain.DefaultRecallsBaseURL
	}
	if c.ComplaintsBaseURL == "" {
		c.ComplaintsBaseURL = domain.DefaultComplaintsBaseURL
	}
	c.VPICBaseURL = strings.TrimRight(c.VPICBaseURL, "/")
	c.RecallsBaseURL = strings.TrimRight(c.RecallsBaseURL, "/")
	c.ComplaintsBaseURL = strings.TrimRight(c.ComplaintsBaseURL, "/")
	return c
}
