package cmd

import (
	"github.com/spf13/cobra"
)

var attemptsCmd = &cobra.Command{
	Use:   "attempts <delivery-id>",
	Short: "Show delivery attempts",
	Long:  `Show the attempt history for a specific delivery, oldest first.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAttempts,
}

func init() {
	rootCmd.AddCommand(attemptsCmd)
}

func runAttempts(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	formatter, client, err := initializeClient()
	if err != nil {
		return err
	}

	attempts, err := client.GetAttempts(id)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintAttempts(attempts)
}
