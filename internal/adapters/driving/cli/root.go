// Package cli provides the command-line interface for autodata.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
	"github.com/custodia-labs/autodata/internal/core/ports/driving"
	"github.com/custodia-labs/autodata/internal/logger"
)

var version = "dev"

// ErrServiceUnavailable is returned when a command needs a service that was not wired.
var ErrServiceUnavailable = errors.New("service not configured")

// WatchFunc watches the configuration source and calls onChange after each change.
type WatchFunc func(ctx context.Context, onChange func()) error

// Services holds the dependencies used by the commands.
type Services struct {
	Lookup   driving.LookupService
	Usage    driving.UsageService
	Settings driving.SettingsService
	Registry *registry.Registry
	Watch    WatchFunc
}

// Services injected by main.
var (
	lookupService      driving.LookupService
	usageService       driving.UsageService
	settingsService    driving.SettingsService
	entrypointRegistry *registry.Registry
	watchConfig        WatchFunc
)

var (
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "autodata",
	Short: "Vehicle data lookups backed by NHTSA",
	Long: `autodata looks up vehicle data from the public NHTSA services:
VIN decoding, recalls, consumer complaints, make and model catalogs.

The same lookups are exposed as priced entrypoints through an MCP server
and a JSON HTTP API (see "autodata serve").`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatAuto,
		"output format: auto, table or json")
}

// SetServices wires the services used by the commands.
func SetServices(s Services) {
	lookupService = s.Lookup
	usageService = s.Usage
	settingsService = s.Settings
	entrypointRegistry = s.Registry
	watchConfig = s.Watch
}

// SetVersion sets the version reported by "autodata version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
