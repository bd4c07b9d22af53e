package cmd

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"logistics-dashboard/internal/api"
	"logistics-dashboard/internal/cli"
)

var (
	serverURL string
	format    string
	quiet     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logistics-dash",
	Short: "CLI client for the logistics dashboard API",
	Long: `Logistics Dashboard CLI queries a running dashboard server for
deliveries, regional performance, daily trends, and aggregated statistics.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	fang.Execute(context.Background(), rootCmd)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", getEnvOrDefault("LOGIDASH_SERVER", "http://localhost:8080"), "API server address")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", getEnvOrDefault("LOGIDASH_FORMAT", "table"), "Output format (table, json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (minimal output)")
}

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(envVar, defaultVal string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return defaultVal
}

// initializeClient sets up the formatter and API client
func initializeClient() (*cli.OutputFormatter, *api.Client, error) {
	formatter := cli.NewOutputFormatter(format, quiet)
	client := api.NewClientWithTimeout(serverURL, 30*time.Second)

	// Test connectivity
	if err := client.HealthCheck(); err != nil {
		formatter.PrintError(err)
		return nil, nil, err
	}

	return formatter, client, nil
}
