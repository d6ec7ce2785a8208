package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "glowpanel-cli",
		Short: "glowpanel engine CLI tool",
		Long:  `A command line interface for interacting with the glowpanel engine API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the glowpanel engine API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(orderCmd())
	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(affiliateCmd())

	return rootCmd
}

func orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Order operations",
	}

	var (
		accountID string
		serviceID string
		link      string
		quantity  int64
		charge    string
	)

	placeCmd := &cobra.Command{
		Use:   "place",
		Short: "Place an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{
				"account_id": accountID,
				"service_id": serviceID,
				"link":       link,
				"quantity":   quantity,
				"charge":     charge,
			}
			return postJSON("/api/v1/orders/", payload)
		},
	}
	placeCmd.Flags().StringVar(&accountID, "account", "", "Buyer account ID")
	placeCmd.Flags().StringVar(&serviceID, "service", "", "Service ID")
	placeCmd.Flags().StringVar(&link, "link", "", "Destination link")
	placeCmd.Flags().Int64Var(&quantity, "quantity", 0, "Quantity")
	placeCmd.Flags().StringVar(&charge, "charge", "", "Charge amount")

	getCmd := &cobra.Command{
		Use:   "get [id]",
		Short: "Get an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/orders/" + args[0])
		},
	}

	cmd.AddCommand(placeCmd, getCmd)
	return cmd
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	overviewCmd := &cobra.Command{
		Use:   "overview [id]",
		Short: "Show account overview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/overview")
		},
	}

	ordersCmd := &cobra.Command{
		Use:   "orders [id]",
		Short: "List account orders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/orders")
		},
	}

	cmd.AddCommand(overviewCmd, ordersCmd)
	return cmd
}

func affiliateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "affiliate",
		Short: "Affiliate operations",
	}

	commissionsCmd := &cobra.Command{
		Use:   "commissions [id]",
		Short: "List commissions credited to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/commissions")
		},
	}

	earningsCmd := &cobra.Command{
		Use:   "earnings [id]",
		Short: "Show affiliate earnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/accounts/" + args[0] + "/earnings")
		},
	}

	cmd.AddCommand(commissionsCmd, earningsCmd)
	return cmd
}

func getJSON(path string) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func postJSON(path string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, truncate(string(body), 500))
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(decoded)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
