package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avolkov/voyageplan-go/internal/application/planning/commands"
)

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	var (
		strategies []string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy against the same data and compare",
		Long: `Run the optimizer once per strategy against identical input data and
print the results side by side. With no --strategies flag all strategies run.

Examples:
  voyageplan compare
  voyageplan compare --strategies maxrevenue,balance --year 2026`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.mediator.Send(context.Background(), &commands.CompareStrategiesCommand{
				Module:     module,
				Strategies: strategies,
				Year:       year,
			})
			if err != nil {
				return fmt.Errorf("comparison failed: %w", err)
			}

			out := resp.(*commands.CompareStrategiesResult)
			if jsonOut {
				fmt.Println(prettyPrint(out))
				return nil
			}

			displayComparison(out)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&strategies, "strategies", nil,
		"Strategies to compare (default: all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the raw results as JSON")

	return cmd
}

func displayComparison(out *commands.CompareStrategiesResult) {
	names := make([]string, 0, len(out.Results))
	for name := range out.Results {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STRATEGY\tVOYAGES\tREVENUE\tCOST\tPROFIT\tUTILIZATION\tCONFLICTS\tSCORE")
	for _, name := range names {
		r := out.Results[name]
		kpi := r.KPIs
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%.1f%%\t%d\t%.1f\n",
			name, kpi.TotalVoyages, money(kpi.TotalRevenue), money(kpi.TotalCost),
			money(kpi.TotalProfit), kpi.FleetUtilization*100, len(r.Conflicts), r.OptimalityScore)
	}
	w.Flush()

	if len(out.Errors) > 0 {
		fmt.Println("\nFailed strategies:")
		failed := make([]string, 0, len(out.Errors))
		for name := range out.Errors {
			failed = append(failed, name)
		}
		sort.Strings(failed)
		for _, name := range failed {
			fmt.Printf("  %s: %s\n", name, out.Errors[name])
		}
	}

	if best := bestStrategy(out, names); best != "" {
		fmt.Printf("\nBest optimality score: %s\n", best)
	}
}

// bestStrategy picks the highest-scoring strategy, name order breaking ties.
func bestStrategy(out *commands.CompareStrategiesResult, sortedNames []string) string {
	best, bestScore := "", -1.0
	for _, name := range sortedNames {
		if r := out.Results[name]; r.OptimalityScore > bestScore {
			best, bestScore = name, r.OptimalityScore
		}
	}
	return best
}
