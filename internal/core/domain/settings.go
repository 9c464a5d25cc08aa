package domain

import (
	"fmt"
	"net/url"
	"time"
)

// Default upstream endpoints and limits.
const (
	DefaultVPICBaseURL       = "https://vpic.nhtsa.dot.gov/api/vehicles"
	DefaultRecallsBaseURL    = "https://api.nhtsa.gov/recalls/recallsByVehicle"
	DefaultComplaintsBaseURL = "https://api.nhtsa.gov/complaints/complaintsByVehicle"
	DefaultUpstreamTimeout   = 30 * time.Second
	DefaultHTTPAddr          = ":8080"
)

// UpstreamSettings configures the vehicle-data service endpoints.
type UpstreamSettings struct {
	VPICBaseURL       string
	RecallsBaseURL    string
	ComplaintsBaseURL string

	// Timeout bounds each outbound request. Zero disables it.
	Timeout time.Duration
}

// LedgerSettings configures the usage ledger.
type LedgerSettings struct {
	// Enabled persists transactions to SQLite. When false an in-memory
	// ledger is used and nothing survives the process.
	Enabled bool

	// DataDir holds the ledger database. Empty means ~/.autodata/data.
	DataDir string
}

// Settings is the full process configuration.
type Settings struct {
	Upstream UpstreamSettings
	Ledger   LedgerSettings
	HTTPAddr string

	// Prices overrides entrypoint price tiers by entrypoint name.
	Prices map[string]Price
}

// DefaultSettings returns the settings used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		Upstream: UpstreamSettings{
			VPICBaseURL:       DefaultVPICBaseURL,
			RecallsBaseURL:    DefaultRecallsBaseURL,
			ComplaintsBaseURL: DefaultComplaintsBaseURL,
			Timeout:           DefaultUpstreamTimeout,
		},
		Ledger:   LedgerSettings{Enabled: true},
		HTTPAddr: DefaultHTTPAddr,
		Prices:   make(map[string]Price),
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	for name, raw := range map[string]string{
		"vpic_base_url":       s.Upstream.VPICBaseURL,
		"recalls_base_url":    s.Upstream.RecallsBaseURL,
		"complaints_base_url": s.Upstream.ComplaintsBaseURL,
	} {
		if err := validateBaseURL(raw); err != nil {
			return fmt.Errorf("%w: upstream.%s: %v", ErrInvalidInput, name, err)
		}
	}
	if s.Upstream.Timeout < 0 {
		return fmt.Errorf("%w: upstream.timeout_seconds must not be negative", ErrInvalidInput)
	}
	for name, p := range s.Prices {
		if p < 0 {
			return fmt.Errorf("%w: pricing.%s must not be negative", ErrInvalidInput, name)
		}
	}
	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}
