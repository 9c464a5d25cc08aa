package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/autodata/internal/core/services"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Inspect the usage ledger",
	Long: `Inspect the ledger of paid entrypoint calls made through "autodata serve".

Direct CLI lookups are not priced and are never recorded.`,
}

var usageSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show call counts and revenue",
	Args:  cobra.NoArgs,
	RunE:  runUsageSummary,
}

var usageTransactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "List recent transactions, newest first",
	Args:  cobra.NoArgs,
	RunE:  runUsageTransactions,
}

func init() {
	usageTransactionsCmd.Flags().IntP("limit", "n", services.DefaultTransactionLimit, "maximum transactions to list")
	usageCmd.AddCommand(usageSummaryCmd, usageTransactionsCmd)
	rootCmd.AddCommand(usageCmd)
}

func runUsageSummary(cmd *cobra.Command, _ []string) error {
	if usageService == nil {
		return ErrServiceUnavailable
	}
	summary, err := usageService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("usage summary: %w", err)
	}

	return render(cmd.OutOrStdout(), summary, func(w io.Writer) {
		writeTitle(w, "Usage")
		writeFields(w, [][2]string{
			{"Total calls", strconv.Itoa(summary.TotalCalls)},
			{"Successful", strconv.Itoa(summary.SuccessfulCalls)},
			{"Failed", strconv.Itoa(summary.FailedCalls)},
			{"Revenue", summary.Revenue.String()},
		})
		if len(summary.ByEntrypoint) == 0 {
			return
		}
		names := make([]string, 0, len(summary.ByEntrypoint))
		for name := range summary.ByEntrypoint {
			names = append(names, name)
		}
		sort.Strings(names)
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			u := summary.ByEntrypoint[name]
			rows = append(rows, []string{name, strconv.Itoa(u.Calls), strconv.Itoa(u.Failed), u.Revenue.String()})
		}
		writeTable(w, []string{"Entrypoint", "Calls", "Failed", "Revenue"}, rows)
	})
}

func runUsageTransactions(cmd *cobra.Command, _ []string) error {
	if usageService == nil {
		return ErrServiceUnavailable
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return fmt.Errorf("getting limit flag: %w", err)
	}

	txs, err := usageService.Transactions(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}

	return render(cmd.OutOrStdout(), txs, func(w io.Writer) {
		if len(txs) == 0 {
			writeNote(w, "No transactions recorded.")
			return
		}
		rows := make([][]string, 0, len(txs))
		for _, tx := range txs {
			rows = append(rows, []string{
				tx.CreatedAt.Local().Format(time.DateTime),
				tx.Entrypoint,
				tx.Price.String(),
				yesNo(tx.Success),
				tx.Duration.Round(time.Millisecond).String(),
				truncateCell(tx.Error, 40),
			})
		}
		writeTable(w, []string{"Time", "Entrypoint", "Price", "OK", "Duration", "Error"}, rows)
	})
}
