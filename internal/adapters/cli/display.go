package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
)

// displayResult prints one optimization result as voyage, conflict and KPI
// tables.
func displayResult(result *schedule.OptimizationResult) {
	fmt.Printf("Schedule %d (%s)\n", result.Year, result.Strategy)
	fmt.Printf("Generated %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05"))

	displayVoyages(result)
	displayUnassigned(result)
	displayConflicts(result.Conflicts)
	displayKPIs(result.KPIs)
}

func displayVoyages(result *schedule.OptimizationResult) {
	if len(result.Voyages) == 0 {
		fmt.Println("No voyages planned.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VOYAGE\tVESSEL\tCARGO\tSTART\tEND\tDIST NM\tREVENUE\tPROFIT\tTCE")
	for _, v := range result.Voyages {
		f := result.FinancialFor(v.ID)
		revenue, profit, tce := 0.0, 0.0, 0.0
		if f != nil {
			revenue, profit, tce = f.Revenue, f.Profit, f.TCE
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.0f\t%s\t%s\t%s\n",
			v.ID, v.VesselID, v.CommitmentID,
			v.StartDate.Format("2006-01-02"), v.EndDate().Format("2006-01-02"),
			v.TotalDistanceNM(), money(revenue), money(profit), money(tce))
	}
	w.Flush()
}

func displayUnassigned(result *schedule.OptimizationResult) {
	if len(result.Unassigned) == 0 {
		return
	}
	fmt.Printf("\nUnassigned commitments (%d):\n", len(result.Unassigned))
	for _, u := range result.Unassigned {
		fmt.Printf("  %s: %s (capable vessels: %d)\n", u.CommitmentID, u.Reason, u.CapableVessels)
	}
}

func displayConflicts(conflicts []*schedule.ScheduleConflict) {
	if len(conflicts) == 0 {
		fmt.Println("\nNo conflicts detected.")
		return
	}

	fmt.Printf("\nConflicts (%d):\n", len(conflicts))
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tSEVERITY\tDESCRIPTION")
	for _, c := range conflicts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.Type, c.Severity, c.Description)
	}
	w.Flush()
}

func displayKPIs(kpi *schedule.KPISet) {
	if kpi == nil {
		return
	}
	fmt.Println("\nKPIs:")
	fmt.Printf("  Voyages:           %d\n", kpi.TotalVoyages)
	fmt.Printf("  Total revenue:     %s\n", money(kpi.TotalRevenue))
	fmt.Printf("  Total cost:        %s\n", money(kpi.TotalCost))
	fmt.Printf("  Total profit:      %s\n", money(kpi.TotalProfit))
	fmt.Printf("  Profit margin:     %.1f%%\n", kpi.ProfitMargin*100)
	fmt.Printf("  Avg TCE:           %s/day\n", money(kpi.AvgTCE))
	fmt.Printf("  Fleet utilization: %.1f%%\n", kpi.FleetUtilization*100)
	fmt.Printf("  Conflicts:         %d critical, %d high, %d medium, %d low\n",
		kpi.CriticalConflicts, kpi.HighConflicts, kpi.MediumConflicts, kpi.LowConflicts)
	fmt.Printf("  Optimality score:  %.1f/100\n", kpi.OptimalityScore)
}

func money(v float64) string {
	return fmt.Sprintf("$%.0f", v)
}

// prettyPrint formats JSON for display
func prettyPrint(v interface{}) string {
	bytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(bytes)
}
