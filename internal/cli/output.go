package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"logistics-dashboard/internal/handlers"
	"logistics-dashboard/internal/stats"
)

// OutputFormatter handles different output formats
type OutputFormatter struct {
	format string
	quiet  bool
}

// NewOutputFormatter creates a new output formatter
func NewOutputFormatter(format string, quiet bool) *OutputFormatter {
	return &OutputFormatter{
		format: format,
		quiet:  quiet,
	}
}

// PrintError prints an error to stderr
func (f *OutputFormatter) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintDeliveries prints a list of deliveries
func (f *OutputFormatter) PrintDeliveries(deliveries []handlers.DeliveryView) error {
	if f.quiet {
		for _, delivery := range deliveries {
			fmt.Printf("%d\n", delivery.ID)
		}
		return nil
	}

	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(deliveries)
	case "table":
		return f.printDeliveriesTable(deliveries)
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

func (f *OutputFormatter) printDeliveriesTable(deliveries []handlers.DeliveryView) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTRACKING\tSTATUS\tCUSTOMER\tDESTINATION\tPRIORITY\tEXPECTED\tDELAY")
	for _, d := range deliveries {
		delay := "-"
		if d.Delay != nil {
			delay = fmt.Sprintf("%.1fh", *d.Delay)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			d.ID, d.TrackingNumber, d.Status, d.CustomerName, d.Destination,
			d.Priority, d.ExpectedDelivery.Format(time.DateOnly), delay)
	}
	return w.Flush()
}

// PrintDelivery prints a single delivery with full detail
func (f *OutputFormatter) PrintDelivery(delivery *handlers.DeliveryView) error {
	if f.quiet {
		fmt.Printf("%d\n", delivery.ID)
		return nil
	}

	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(delivery)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", delivery.ID)
		fmt.Fprintf(w, "Tracking\t%s\n", delivery.TrackingNumber)
		fmt.Fprintf(w, "Status\t%s\n", delivery.Status)
		fmt.Fprintf(w, "Customer\t%s\n", delivery.CustomerName)
		fmt.Fprintf(w, "Destination\t%s\n", delivery.Destination)
		fmt.Fprintf(w, "Priority\t%s\n", delivery.Priority)
		fmt.Fprintf(w, "Expected\t%s\n", delivery.ExpectedDelivery.Format(time.DateOnly))
		if delivery.ActualDelivery != nil {
			fmt.Fprintf(w, "Delivered\t%s\n", delivery.ActualDelivery.Format(time.DateOnly))
		}
		if delivery.Delay != nil {
			fmt.Fprintf(w, "Delay\t%.1fh\n", *delivery.Delay)
		}
		fmt.Fprintf(w, "Weight\t%.1fkg\n", delivery.Weight)
		if delivery.Dimensions != nil {
			fmt.Fprintf(w, "Dimensions\t%s\n", *delivery.Dimensions)
		}
		fmt.Fprintf(w, "Signature\t%t\n", delivery.Signature)
		return w.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

// PrintAttempts prints the attempt history of a delivery
func (f *OutputFormatter) PrintAttempts(attempts []handlers.AttemptView) error {
	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(attempts)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tATTEMPTED\tOUTCOME\tNOTES")
		for _, a := range attempts {
			notes := a.Notes
			if notes == "" {
				notes = "-"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				a.ID, a.AttemptedAt.Format("2006-01-02 15:04"), a.Outcome, notes)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

// PrintRegions prints regional performance summaries
func (f *OutputFormatter) PrintRegions(regions []handlers.RegionView) error {
	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(regions)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tREGION\tDELIVERIES\tPERFORMANCE")
		for _, r := range regions {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d%%\n", r.ID, r.Region, r.Deliveries, r.Performance)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

// PrintTrends prints the daily trend snapshots
func (f *OutputFormatter) PrintTrends(trends []handlers.TrendView) error {
	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(trends)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DAY\tDELIVERIES\tON TIME\tDELAYED")
		for _, t := range trends {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", t.Date, t.Deliveries, t.OnTime, t.Delayed)
		}
		return w.Flush()
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}

// PrintStats prints the aggregated dashboard statistics
func (f *OutputFormatter) PrintStats(dashboard *stats.Dashboard) error {
	switch f.format {
	case "json":
		return json.NewEncoder(os.Stdout).Encode(dashboard)
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Total deliveries\t%d\n", dashboard.TotalDeliveries)
		fmt.Fprintf(w, "On time\t%d\n", dashboard.OnTimeDeliveries)
		fmt.Fprintf(w, "Delayed\t%d\n", dashboard.DelayedDeliveries)
		fmt.Fprintf(w, "In transit\t%d\n", dashboard.InTransit)
		fmt.Fprintf(w, "Avg delivery time\t%dh\n", dashboard.AverageDeliveryTime)
		fmt.Fprintf(w, "Customer satisfaction\t%d%%\n", dashboard.CustomerSatisfaction)
		fmt.Fprintf(w, "Total claims\t%d\n", dashboard.TotalClaims)
		fmt.Fprintf(w, "Insured deliveries\t%d\n", dashboard.InsuredDeliveries)
		fmt.Fprintf(w, "Insurance claims\t%d\n", dashboard.InsuranceClaims)
		if err := w.Flush(); err != nil {
			return err
		}

		if len(dashboard.DeliveryPerformance) > 0 {
			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRIORITY\tAVG TIME\tSUCCESS RATE")
			for _, p := range dashboard.DeliveryPerformance {
				fmt.Fprintf(w, "%s\t%dh\t%d%%\n", p.Priority, p.AvgDeliveryTime, p.SuccessRate)
			}
			if err := w.Flush(); err != nil {
				return err
			}
		}

		if len(dashboard.RecentClaims) > 0 {
			fmt.Println()
			w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CLAIM\tTYPE\tAMOUNT\tSTATUS\tDESCRIPTION")
			for _, c := range dashboard.RecentClaims {
				fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%s\n", c.ID, c.Type, c.Amount, c.Status, c.Description)
			}
			return w.Flush()
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", f.format)
	}
}
