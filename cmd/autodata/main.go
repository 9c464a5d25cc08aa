// Command autodata looks up NHTSA vehicle data and serves it as priced entrypoints.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/autodata/internal/adapters/driven/config/file"
	"github.com/custodia-labs/autodata/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/autodata/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/autodata/internal/adapters/driving/cli"
	"github.com/custodia-labs/autodata/internal/adapters/driving/registry"
	"github.com/custodia-labs/autodata/internal/connectors/nhtsa"
	"github.com/custodia-labs/autodata/internal/core/ports/driven"
	"github.com/custodia-labs/autodata/internal/core/services"
	"github.com/custodia-labs/autodata/internal/logger"
	normaliser "github.com/custodia-labs/autodata/internal/normalisers/nhtsa"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// homeEnv overrides the config directory (default ~/.autodata).
const homeEnv = "AUTODATA_HOME"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanup, err := wire()
	if err != nil {
		logger.Error("startup: %v", err)
		os.Exit(1)
	}

	err = cli.Execute(ctx)
	cleanup()
	if err != nil {
		os.Exit(1)
	}
}

// wire builds the services and hands them to the CLI.
// The returned func releases the ledger database.
func wire() (func(), error) {
	configStore, err := file.NewConfigStore(os.Getenv(homeEnv))
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings from %s: %w", configStore.Path(), err)
	}

	client := nhtsa.NewClient(nhtsa.ConfigFromSettings(settings.Upstream))
	lookupService := services.NewLookupService(client, normaliser.New())

	cleanup := func() {}
	var usageStore driven.UsageStore
	if settings.Ledger.Enabled {
		store, err := sqlite.NewStore(settings.Ledger.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open ledger: %w", err)
		}
		logger.Debug("ledger: %s", store.Path())
		usageStore = store.UsageStore()
		cleanup = func() {
			if err := store.Close(); err != nil {
				logger.Error("close ledger: %v", err)
			}
		}
	} else {
		logger.Debug("ledger: in-memory")
		usageStore = memory.NewUsageStore()
	}
	usageService := services.NewUsageService(usageStore)

	reg, err := registry.New(lookupService, usageService)
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("build entrypoints: %w", err)
	}
	reg.SetPrices(settings.Prices)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Lookup:   lookupService,
		Usage:    usageService,
		Settings: settingsService,
		Registry: reg,
		Watch: func(ctx context.Context, onChange func()) error {
			return file.Watch(ctx, configStore.Path(), onChange)
		},
	})

	return cleanup, nil
}
