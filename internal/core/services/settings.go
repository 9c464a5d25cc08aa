package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/autodata/internal/core/domain"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
	"github.com/custodia-labs/autodata/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyVPICBaseURL       = "upstream.vpic_base_url"
	keyRecallsBaseURL    = "upstream.recalls_base_url"
	keyComplaintsBaseURL = "upstream.complaints_base_url"
	keyTimeoutSeconds    = "upstream.timeout_seconds"
	keyHTTPAddr          = "server.http_addr"
	keyLedgerEnabled     = "ledger.enabled"
	keyLedgerDataDir     = "ledger.data_dir"
	pricingPrefix        = "pricing."
)

// SettingsService reads process settings from a ConfigStore.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get builds settings from the store, filling unset keys with defaults.
// The result is validated before it is returned.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Upstream: domain.UpstreamSettings{
			VPICBaseURL:       s.getString(keyVPICBaseURL, defaults.Upstream.VPICBaseURL),
			RecallsBaseURL:    s.getString(keyRecallsBaseURL, defaults.Upstream.RecallsBaseURL),
			ComplaintsBaseURL: s.getString(keyComplaintsBaseURL, defaults.Upstream.ComplaintsBaseURL),
			Timeout:           s.getSeconds(keyTimeoutSeconds, defaults.Upstream.Timeout),
		},
		Ledger: domain.LedgerSettings{
			Enabled: s.getBool(keyLedgerEnabled, defaults.Ledger.Enabled),
			DataDir: s.configStore.GetString(keyLedgerDataDir),
		},
		HTTPAddr: s.getString(keyHTTPAddr, defaults.HTTPAddr),
		Prices:   make(map[string]domain.Price),
	}

	for _, key := range s.configStore.Keys(pricingPrefix) {
		name := strings.TrimPrefix(key, pricingPrefix)
		val, _ := s.configStore.Get(key)
		price, err := toPrice(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		settings.Prices[name] = price
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// Reload re-reads the backing store and returns the new settings.
func (s *SettingsService) Reload() (*domain.Settings, error) {
	if err := s.configStore.Load(); err != nil {
		return nil, fmt.Errorf("reload config: %w", err)
	}
	return s.Get()
}

// SetPrice persists a price override as a dollar string.
func (s *SettingsService) SetPrice(entrypoint string, price domain.Price) error {
	if entrypoint == "" {
		return fmt.Errorf("%w: entrypoint name required", domain.ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", domain.ErrInvalidInput)
	}
	if err := s.configStore.Set(pricingPrefix+entrypoint, price.Dollars()); err != nil {
		return fmt.Errorf("save price for %s: %w", entrypoint, err)
	}
	return nil
}

// Path returns the config file location.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getSeconds treats an explicit 0 as "disabled" rather than "unset".
func (s *SettingsService) getSeconds(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return time.Duration(s.configStore.GetInt(key)) * time.Second
}

// toPrice accepts the shapes a TOML value can take: "0.02", 0.02 or 1.
func toPrice(val any) (domain.Price, error) {
	switch v := val.(type) {
	case string:
		return domain.ParsePrice(v)
	case float64:
		return domain.ParsePrice(strconv.FormatFloat(v, 'f', -1, 64))
	case int64:
		return domain.ParsePrice(strconv.FormatInt(v, 10))
	case int:
		return domain.ParsePrice(strconv.Itoa(v))
	default:
		return 0, fmt.Errorf("%w: unsupported price value %v", domain.ErrInvalidInput, val)
	}
}
