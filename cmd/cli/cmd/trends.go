package cmd

import (
	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Show daily delivery trends",
	Long:  `Show the most recent daily trend snapshots, oldest first.`,
	RunE:  runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(cmd *cobra.Command, args []string) error {
	formatter, client, err := initializeClient()
	if err != nil {
		return err
	}

	trends, err := client.GetTrends()
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintTrends(trends)
}
