package cmd

import (
	"github.com/spf13/cobra"
)

var deliveriesCmd = &cobra.Command{
	Use:     "deliveries",
	Aliases: []string{"ls"},
	Short:   "List recent deliveries",
	Long:    `List the most recent deliveries, optionally narrowed by status, priority, region, or date range.`,
	RunE:    runDeliveries,
}

func init() {
	addFilterFlags(deliveriesCmd)
	rootCmd.AddCommand(deliveriesCmd)
}

func runDeliveries(cmd *cobra.Command, args []string) error {
	filters, err := filtersFromFlags(cmd)
	if err != nil {
		return err
	}

	formatter, client, err := initializeClient()
	if err != nil {
		return err
	}

	deliveries, err := client.GetDeliveries(filters)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintDeliveries(deliveries)
}
