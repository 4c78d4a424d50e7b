package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/application/planning/commands"
	"github.com/avolkov/voyageplan-go/internal/application/planning/queries"
)

// NewScenarioCommand creates the scenario command with subcommands
func NewScenarioCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Manage persisted schedule scenarios",
		Long: `List, inspect and delete persisted schedule scenarios.

A scenario is one optimization result snapshot stored under an id.
Saving again under the same id replaces the whole snapshot.

Examples:
  voyageplan scenario list
  voyageplan scenario show baseline-2026
  voyageplan scenario delete baseline-2026`,
	}

	cmd.AddCommand(newScenarioListCommand())
	cmd.AddCommand(newScenarioShowCommand())
	cmd.AddCommand(newScenarioDeleteCommand())

	return cmd
}

func newScenarioListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.mediator.Send(context.Background(), &queries.ListScenariosQuery{})
			if err != nil {
				return fmt.Errorf("failed to list scenarios: %w", err)
			}

			summaries := resp.([]*common.ScenarioSummary)
			if len(summaries) == 0 {
				fmt.Println("No scenarios stored.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTRATEGY\tSCORE\tCREATED")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\n",
					s.ID, s.Strategy, s.OptimalityScore, s.CreatedAt.Format("2006-01-02 15:04"))
			}
			w.Flush()
			return nil
		},
	}
}

func newScenarioShowCommand() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.mediator.Send(context.Background(), &queries.GetScenarioQuery{ID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to load scenario: %w", err)
			}

			scenario := resp.(*common.Scenario)
			if jsonOut {
				fmt.Println(prettyPrint(scenario))
				return nil
			}

			fmt.Printf("Scenario %s (created %s)\n\n", scenario.ID, scenario.CreatedAt.Format("2006-01-02 15:04"))
			displayResult(scenario.Result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the scenario as JSON")
	return cmd
}

func newScenarioDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.mediator.Send(context.Background(), &commands.DeleteScenarioCommand{ID: args[0]}); err != nil {
				return fmt.Errorf("failed to delete scenario: %w", err)
			}

			fmt.Printf("Scenario %s deleted\n", args[0])
			return nil
		},
	}
}
