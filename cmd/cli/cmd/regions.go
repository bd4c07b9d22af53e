package cmd

import (
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Show regional performance",
	Long:  `Show delivery counts and performance scores per region.`,
	RunE:  runRegions,
}

func init() {
	regionsCmd.Flags().IntSlice("region", nil, "Limit to specific region IDs (repeatable)")
	rootCmd.AddCommand(regionsCmd)
}

func runRegions(cmd *cobra.Command, args []string) error {
	regionIDs, err := cmd.Flags().GetIntSlice("region")
	if err != nil {
		return err
	}

	formatter, client, err := initializeClient()
	if err != nil {
		return err
	}

	regions, err := client.GetRegions(regionIDs)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintRegions(regions)
}
