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
	rootCmd := &cobra.Command{
		Use:   "finplanner-cli",
		Short: "FinPlanner CLI tool",
		Long:  `A command line interface for interacting with the FinPlanner API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the FinPlanner API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Payoff commands
	payoffCmd := &cobra.Command{
		Use:   "payoff",
		Short: "Debt payoff planning",
	}
	payoffCmd.AddCommand(postCmd("plan", "Compute a payoff schedule", "/api/v1/payoff/plan"))
	payoffCmd.AddCommand(postCmd("compare", "Compare avalanche and snowball", "/api/v1/payoff/compare"))
	rootCmd.AddCommand(payoffCmd)

	// Savings commands
	savingsCmd := &cobra.Command{
		Use:   "savings",
		Short: "Savings advisory",
	}
	savingsCmd.AddCommand(postCmd("emergency-fund", "Size an emergency fund", "/api/v1/savings/emergency-fund"))
	savingsCmd.AddCommand(postCmd("allocate", "Allocate a surplus across goals", "/api/v1/savings/allocate"))
	savingsCmd.AddCommand(postCmd("timeline", "Compute a goal timeline", "/api/v1/savings/timeline"))
	rootCmd.AddCommand(savingsCmd)

	// Scenario commands
	scenarioCmd := &cobra.Command{
		Use:   "scenario",
		Short: "What-if projections",
	}
	scenarioCmd.AddCommand(postCmd("project", "Project a scenario", "/api/v1/scenarios/project"))
	scenarioCmd.AddCommand(postCmd("compare", "Compare a scenario to its baseline", "/api/v1/scenarios/compare"))
	rootCmd.AddCommand(scenarioCmd)

	// Advice commands
	adviceCmd := &cobra.Command{
		Use:   "advice",
		Short: "Advisory reports",
	}
	adviceCmd.AddCommand(postCmd("analyze", "Run the full advisory pipeline", "/api/v1/advice/"))
	adviceCmd.AddCommand(adviceGetCmd())
	rootCmd.AddCommand(adviceCmd)

	// Health command
	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			checkHealth()
		},
	}
	rootCmd.AddCommand(healthCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// postCmd builds a command that posts a JSON document to an API path. The
// document comes from --file, or stdin when the flag is "-".
func postCmd(use, short, path string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Run: func(cmd *cobra.Command, args []string) {
			payload, err := readInput(file)
			if err != nil {
				fmt.Printf("Error reading input: %v\n", err)
				os.Exit(1)
			}
			postJSON(path, payload)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "JSON request file (- for stdin)")

	return cmd
}

func adviceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <sessionID>",
		Short: "Retrieve a stored advisory report",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/advice/" + args[0])
		},
	}
}

func readInput(file string) ([]byte, error) {
	if file == "" || file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func postJSON(path string, payload []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}
	printJSON(parsed)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func checkHealth() {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Health check FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	fmt.Printf("Health check PASSED\n")
	fmt.Printf("Response: %s\n", string(body))
}
