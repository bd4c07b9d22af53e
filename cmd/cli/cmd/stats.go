package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated statistics",
	Long:  `Show the aggregated dashboard statistics, optionally narrowed by status, priority, region, or date range.`,
	RunE:  runStats,
}

func init() {
	addFilterFlags(statsCmd)
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}

	formatter, client, err := initializeClient()
	if err != nil {
		return err
	}

	dashboard, err := client.GetStats(filters)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintStats(dashboard)
}
