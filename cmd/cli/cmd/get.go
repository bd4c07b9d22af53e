package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <delivery-id>",
	Short: "Get delivery details by ID",
	Long:  `Get detailed information about a specific delivery by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	formatter, client, err := initializeClient()
	if err != nil {
		return err
	}

	delivery, err := client.GetDelivery(id)
	if err != nil {
		formatter.PrintError(err)
		return err
	}

	return formatter.PrintDelivery(delivery)
}

// parseID validates that the argument is a positive integer ID
func parseID(arg string) (int, error) {
	if strings.TrimSpace(arg) == "" {
		return 0, fmt.Errorf("ID cannot be empty")
	}

	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID '%s': must be a positive integer", arg)
	}
	return id, nil
}
