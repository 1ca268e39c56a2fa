package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adeotun/paystackease/paystack"
)

var (
	accountNumber string
	bankCode      string
	bankCountry   string
)

// resolveCmd groups the verification subcommands
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Verify bank accounts and card BINs",
}

// resolveAccountCmd represents the resolve account command
var resolveAccountCmd = &cobra.Command{
	Use:     "account",
	Short:   "Confirm an account number belongs to the right customer",
	PreRunE: initializeApp,
	RunE:    runResolveAccount,
}

// resolveBINCmd represents the resolve bin command
var resolveBINCmd = &cobra.Command{
	Use:     "bin [first-6-digits]",
	Short:   "Resolve a card BIN",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runResolveBIN,
}

// resolveBanksCmd represents the resolve banks command
var resolveBanksCmd = &cobra.Command{
	Use:     "banks",
	Short:   "List supported banks and their codes",
	PreRunE: initializeApp,
	RunE:    runResolveBanks,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.AddCommand(resolveAccountCmd)
	resolveCmd.AddCommand(resolveBINCmd)
	resolveCmd.AddCommand(resolveBanksCmd)

	resolveAccountCmd.Flags().StringVar(&accountNumber, "account-number", "", "account number to verify")
	resolveAccountCmd.Flags().StringVar(&bankCode, "bank-code", "", "bank code of the account")
	resolveAccountCmd.MarkFlagRequired("account-number")
	resolveAccountCmd.MarkFlagRequired("bank-code")

	resolveBanksCmd.Flags().StringVar(&bankCountry, "country", "nigeria", "country to list banks for")
}

func runResolveAccount(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resp, err := client.Verification.ResolveAccount(ctx, accountNumber, bankCode)
	if err != nil {
		return err
	}
	if !resp.Status {
		return fmt.Errorf("could not resolve account: %s", resp.Message)
	}

	var account struct {
		AccountName   string `json:"account_name"`
		AccountNumber string `json:"account_number"`
	}
	if err := resp.UnmarshalData(&account); err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", account.AccountNumber, account.AccountName)
	return nil
}

func runResolveBanks(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resp, err := client.Misc.ListBanks(ctx, paystack.BankListOptions{Country: bankCountry})
	if err != nil {
		return err
	}
	if !resp.Status {
		return fmt.Errorf("could not list banks: %s", resp.Message)
	}

	var banks []struct {
		Name string `json:"name"`
		Code string `json:"code"`
	}
	if err := resp.UnmarshalData(&banks); err != nil {
		return err
	}

	for _, bank := range banks {
		fmt.Printf("%-8s %s\n", bank.Code, bank.Name)
	}
	return nil
}

func runResolveBIN(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	resp, err := client.Verification.ResolveCardBIN(ctx, args[0])
	if err != nil {
		return err
	}
	if !resp.Status {
		return fmt.Errorf("could not resolve BIN: %s", resp.Message)
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
