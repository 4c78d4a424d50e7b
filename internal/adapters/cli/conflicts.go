package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolkov/voyageplan-go/internal/application/planning/queries"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
)

// NewConflictsCommand creates the conflicts command
func NewConflictsCommand() *cobra.Command {
	var (
		scheduleID string
		jsonOut    bool
	)

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Scan a schedule for conflicts",
		Long: `Scan a schedule for vessel overlaps, port congestion, cargo timing
violations and resource shortages.

With --schedule-id the persisted scenario is re-scanned against current
master data. Without it a fresh default-strategy run is scanned.

Examples:
  voyageplan conflicts --schedule-id baseline-2026
  voyageplan conflicts --module crude`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.mediator.Send(context.Background(), &queries.DetectConflictsQuery{
				Module:     module,
				ScheduleID: scheduleID,
			})
			if err != nil {
				return fmt.Errorf("conflict scan failed: %w", err)
			}

			conflicts := resp.([]*schedule.ScheduleConflict)
			if jsonOut {
				fmt.Println(prettyPrint(conflicts))
				return nil
			}
			displayConflicts(conflicts)
			return nil
		},
	}

	cmd.Flags().StringVar(&scheduleID, "schedule-id", "", "Persisted scenario to scan")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print conflicts as JSON")

	return cmd
}
