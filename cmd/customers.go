package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/adeotun/paystackease/filter"
	"github.com/adeotun/paystackease/paystack"
)

var (
	fromDate string
	toDate   string
)

// customersCmd groups the customer subcommands
var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Inspect customers on the integration",
}

// customersListCmd represents the customers list command
var customersListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List customers matching the filter criteria",
	Long:    `List customers on the integration, optionally restricted to a creation date window and a filter expression evaluated against each customer row.`,
	PreRunE: initializeApp,
	RunE:    runCustomersList,
}

// customersFetchCmd represents the customers fetch command
var customersFetchCmd = &cobra.Command{
	Use:     "fetch [email-or-code]",
	Short:   "Fetch a single customer",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runCustomersFetch,
}

func init() {
	rootCmd.AddCommand(customersCmd)
	customersCmd.AddCommand(customersListCmd)
	customersCmd.AddCommand(customersFetchCmd)

	customersListCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	customersListCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	customersListCmd.Flags().StringVar(&fromDate, "from", "", "start of the creation date window (YYYY-MM-DD)")
	customersListCmd.Flags().StringVar(&toDate, "to", "", "end of the creation date window (YYYY-MM-DD)")
}

func runCustomersList(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	dates, err := parseDateRange()
	if err != nil {
		return err
	}

	ctx := context.Background()
	rows, err := client.Customers.ListAll(ctx, dates)
	if err != nil {
		return err
	}

	if expression != "" {
		logger.Info().Str("filter", expression).Msg("Filtering customers")
		flt, err := filter.Compile(expression)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		rows, err = flt.Apply(rows)
		if err != nil {
			return err
		}
	}

	if len(rows) == 0 {
		fmt.Println("No customers found matching the criteria.")
		return nil
	}

	fmt.Printf("\nFound %d customers:\n", len(rows))
	fmt.Println(strings.Repeat("-", 80))
	for _, row := range rows {
		fmt.Printf("• %v", row["email"])
		if code, ok := row["customer_code"]; ok {
			fmt.Printf(" (%v)", code)
		}
		fmt.Println()
		if name := customerName(row); name != "" {
			fmt.Printf("  Name: %s\n", name)
		}
		if created, ok := row["createdAt"]; ok {
			fmt.Printf("  Created: %v\n", created)
		}
	}

	return nil
}

func runCustomersFetch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resp, err := client.Customers.Fetch(ctx, args[0])
	if err != nil {
		return err
	}
	if !resp.Status {
		return fmt.Errorf("paystack declined the request: %s", resp.Message)
	}

	var pretty map[string]any
	if err := resp.UnmarshalData(&pretty); err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))

	return nil
}

// getFilterExpression resolves the effective filter expression: the
// --filter flag wins, then the named preset from config, then none.
func getFilterExpression() (string, error) {
	if filterExpr != "" {
		return filterExpr, nil
	}
	if preset != "" {
		expression, ok := cfg.Filters[preset]
		if !ok {
			return "", fmt.Errorf("unknown filter preset: %s", preset)
		}
		return expression, nil
	}
	return "", nil
}

func parseDateRange() (paystack.DateRange, error) {
	var dates paystack.DateRange
	if fromDate != "" {
		t, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return dates, fmt.Errorf("invalid --from date: %w", err)
		}
		dates.From = &t
	}
	if toDate != "" {
		t, err := time.Parse("2006-01-02", toDate)
		if err != nil {
			return dates, fmt.Errorf("invalid --to date: %w", err)
		}
		dates.To = &t
	}
	return dates, nil
}

func customerName(row map[string]any) string {
	first, _ := row["first_name"].(string)
	last, _ := row["last_name"].(string)
	return strings.TrimSpace(first + " " + last)
}
