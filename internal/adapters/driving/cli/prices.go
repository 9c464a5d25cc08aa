package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/autodata/internal/core/domain"
)

var pricesCmd = &cobra.Command{
	Use:   "prices",
	Short: "List entrypoint prices",
	Args:  cobra.NoArgs,
	RunE:  runPrices,
}

var pricesSetCmd = &cobra.Command{
	Use:   "set <entrypoint> <amount>",
	Short: "Override the price of an entrypoint",
	Long: `Override the price tier of an entrypoint, in US dollars.

The override is saved to the config file. A running "autodata serve --watch"
picks it up without a restart.

Example:
  autodata prices set decode-vin 0.015`,
	Args: cobra.ExactArgs(2),
	RunE: runPricesSet,
}

func init() {
	pricesCmd.AddCommand(pricesSetCmd)
	rootCmd.AddCommand(pricesCmd)
}

func runPrices(cmd *cobra.Command, _ []string) error {
	if entrypointRegistry == nil {
		return ErrServiceUnavailable
	}
	descriptors := entrypointRegistry.List()

	return render(cmd.OutOrStdout(), descriptors, func(w io.Writer) {
		rows := make([][]string, 0, len(descriptors))
		for _, d := range descriptors {
			rows = append(rows, []string{d.Name, "$" + d.Price, truncateCell(d.Description, cellWidth)})
		}
		writeTable(w, []string{"Entrypoint", "Price", "Description"}, rows)
	})
}

func runPricesSet(cmd *cobra.Command, args []string) error {
	if entrypointRegistry == nil || settingsService == nil {
		return ErrServiceUnavailable
	}
	name := args[0]
	if _, ok := entrypointRegistry.Get(name); !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownEntrypoint, name)
	}
	price, err := domain.ParsePrice(args[1])
	if err != nil {
		return err
	}

	if err := settingsService.SetPrice(name, price); err != nil {
		return fmt.Errorf("save price: %w", err)
	}
	s, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("read settings: %w", err)
	}
	entrypointRegistry.SetPrices(s.Prices)

	cmd.Printf("Price of %s set to %s (saved to %s)\n", name, price, settingsService.Path())
	return nil
}
