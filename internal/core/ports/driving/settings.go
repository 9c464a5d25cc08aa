package driving

import "github.com/custodia-labs/autodata/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get reads the current settings, filling unset keys with defaults.
	Get() (*domain.Settings, error)

	// Reload re-reads the configuration source and returns the new settings.
	Reload() (*domain.Settings, error)

	// SetPrice overrides the price tier of an entrypoint and persists it.
	SetPrice(entrypoint string, price domain.Price) error

	// Path returns where the settings are stored.
	Path() string
}
