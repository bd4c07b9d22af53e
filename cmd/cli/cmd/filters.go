package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"logistics-dashboard/internal/api"
)

// addFilterFlags registers the shared delivery filter flags on a command.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("status", nil, "Filter by status (repeatable)")
	cmd.Flags().StringSlice("priority", nil, "Filter by priority (repeatable)")
	cmd.Flags().IntSlice("region", nil, "Filter by region ID (repeatable)")
	cmd.Flags().String("from", "", "Only deliveries created on or after this date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Only deliveries created on or before this date (YYYY-MM-DD)")
}

// filtersFromFlags reads the shared filter flags into an api.Filters value.
func filtersFromFlags(cmd *cobra.Command) (api.Filters, error) {
	var filters api.Filters
	var err error

	if filters.Statuses, err = cmd.Flags().GetStringSlice("status"); err != nil {
		return filters, err
	}
	if filters.Priorities, err = cmd.Flags().GetStringSlice("priority"); err != nil {
		return filters, err
	}
	if filters.RegionIDs, err = cmd.Flags().GetIntSlice("region"); err != nil {
		return filters, err
	}

	if filters.DateFrom, err = dateFlag(cmd, "from"); err != nil {
		return filters, err
	}
	if filters.DateTo, err = dateFlag(cmd, "to"); err != nil {
		return filters, err
	}

	return filters, nil
}

func dateFlag(cmd *cobra.Command, name string) (*time.Time, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s date '%s': expected YYYY-MM-DD", name, raw)
	}
	return &t, nil
}
