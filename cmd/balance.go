package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/adeotun/paystackease/paystack"
)

var showLedger bool

// balanceCmd represents the balance command
var balanceCmd = &cobra.Command{
	Use:     "balance",
	Short:   "Show the available balance",
	Long:    `Show the available balance per currency, optionally alongside the balance ledger.`,
	PreRunE: initializeApp,
	RunE:    runBalance,
}

func init() {
	rootCmd.AddCommand(balanceCmd)

	balanceCmd.Flags().BoolVar(&showLedger, "ledger", false, "also fetch the balance ledger")
}

func runBalance(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Fetch balance and ledger concurrently
	var balance, ledger *paystack.Response
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		balance, err = client.TransferControl.CheckBalance(ctx)
		return err
	})
	if showLedger {
		g.Go(func() error {
			var err error
			ledger, err = client.TransferControl.BalanceLedger(ctx)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	if !balance.Status {
		return fmt.Errorf("paystack declined the balance request: %s", balance.Message)
	}

	var rows []map[string]any
	if err := balance.UnmarshalData(&rows); err != nil {
		return fmt.Errorf("unexpected balance payload: %w", err)
	}

	fmt.Println("Available balance:")
	fmt.Println(strings.Repeat("-", 40))
	for _, row := range rows {
		fmt.Printf("  %v: %v\n", row["currency"], row["balance"])
	}

	if ledger != nil {
		if !ledger.Status {
			return fmt.Errorf("paystack declined the ledger request: %s", ledger.Message)
		}
		var entries []map[string]any
		if ledger.HasData() {
			if err := ledger.UnmarshalData(&entries); err != nil {
				return fmt.Errorf("unexpected ledger payload: %w", err)
			}
		}

		fmt.Printf("\nLedger (%d entries):\n", len(entries))
		fmt.Println(strings.Repeat("-", 40))
		for _, entry := range entries {
			fmt.Printf("  %v %v %v (balance %v)\n",
				entry["createdAt"], entry["currency"], entry["difference"], entry["balance"])
		}
	}

	return nil
}
