package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolkov/voyageplan-go/internal/application/planning/commands"
)

// NewOptimizeCommand creates the optimize command
func NewOptimizeCommand() *cobra.Command {
	var (
		strategy     string
		vessels      []string
		loadAssigned bool
		useTemplates bool
		saveAs       string
		jsonOut      bool
	)

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Run one schedule optimization",
		Long: `Run one optimization for the target year: assign cargo commitments to
vessels under the chosen strategy, price every voyage, detect conflicts, and
report KPIs.

Strategies:
  maxrevenue  - rank candidate vessels by voyage revenue
  mincost     - rank candidate vessels by voyage cost
  balance     - blend profitability and fleet utilization

Examples:
  voyageplan optimize --strategy maxrevenue --year 2026
  voyageplan optimize --module crude --vessels V-001,V-002
  voyageplan optimize --save-as baseline-2026 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			if strategy == "" {
				strategy = rt.cfg.Engine.DefaultStrategy
			}

			resp, err := rt.mediator.Send(context.Background(), &commands.OptimizeScheduleCommand{
				Module:               module,
				Strategy:             strategy,
				Year:                 year,
				Vessels:              vessels,
				LoadCargoCommitments: loadAssigned,
				UseTemplates:         useTemplates,
				SaveAs:               saveAs,
			})
			if err != nil {
				return fmt.Errorf("optimization failed: %w", err)
			}

			out := resp.(*commands.OptimizeScheduleResult)
			if jsonOut {
				fmt.Println(prettyPrint(out))
				return nil
			}

			displayResult(out.Result)
			if out.ScenarioID != "" {
				fmt.Printf("\nScenario saved as %s\n", out.ScenarioID)
			}
			if out.SaveError != "" {
				fmt.Printf("\nWarning: result computed but not saved: %s\n", out.SaveError)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Ranking strategy (maxrevenue, mincost, balance)")
	cmd.Flags().StringSliceVar(&vessels, "vessels", nil, "Restrict planning to these vessel ids")
	cmd.Flags().BoolVar(&loadAssigned, "load-assigned", false, "Replan commitments already assigned to a lane")
	cmd.Flags().BoolVar(&useTemplates, "use-templates", false, "Seed voyage legs from lane templates where available")
	cmd.Flags().StringVar(&saveAs, "save-as", "", "Persist the result as a scenario under this id")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the raw result as JSON")

	return cmd
}
