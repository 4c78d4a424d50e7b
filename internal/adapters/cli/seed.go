package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
)

// NewSeedCommand creates the seed command
func NewSeedCommand() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load sample master data into the database",
		Long: `Load a small sample fleet, port and route book, and cargo commitments so
a fresh installation can run optimizations immediately.

Seeding upserts by id, so re-running it refreshes the sample rows without
touching anything else.

Examples:
  voyageplan seed
  voyageplan seed --year 2027`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime()
			if err != nil {
				return err
			}
			defer rt.Close()

			if year == 0 {
				year = time.Now().Year()
			}

			ctx := context.Background()
			if err := seedMasterData(ctx, rt, year); err != nil {
				return fmt.Errorf("seeding failed: %w", err)
			}

			fmt.Printf("Seeded sample fleet, ports, routes, and commitments for %d\n", year)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Planning year for the sample laycans (default: current year)")

	return cmd
}

// seedMasterData writes the sample data set: three handysize vessels at
// Rotterdam, a small North Sea port and route book, and two crude commitments
// on the Rotterdam-Hamburg lane.
func seedMasterData(ctx context.Context, rt *runtime, year int) error {
	for _, spec := range []struct {
		id, name string
		dwt      float64
	}{
		{"V-001", "MV Aurora", 10000},
		{"V-002", "MV Boreas", 10000},
		{"V-003", "MV Castor", 10000},
	} {
		v, err := fleet.NewVessel(spec.id, spec.name, "handysize", "", spec.dwt, 12, 10000, "ROTTERDAM", fleet.VesselStatusActive)
		if err != nil {
			return err
		}
		if err := rt.vessels.Save(ctx, v); err != nil {
			return err
		}
	}

	for _, spec := range []struct {
		id, name string
	}{
		{"ROTTERDAM", "Rotterdam"},
		{"HAMBURG", "Hamburg"},
	} {
		p, err := routing.NewPort(spec.id, spec.name, 2000, 2000, 12, true, true)
		if err != nil {
			return err
		}
		if err := rt.ports.Save(ctx, p); err != nil {
			return err
		}
	}

	route, err := routing.NewRoute("ROTTERDAM", "HAMBURG", 1000, false, "", "low")
	if err != nil {
		return err
	}
	if err := rt.routes.Save(ctx, route); err != nil {
		return err
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, spec := range []struct {
		id         string
		quantityMT float64
		laycanDay  int
	}{
		{"C-001", 5000, 30},
		{"C-002", 4000, 60},
	} {
		start := jan1.AddDate(0, 0, spec.laycanDay)
		c, err := cargo.NewCommitment(spec.id, "crude", spec.quantityMT, "ROTTERDAM", "HAMBURG", start, start.AddDate(0, 0, 5))
		if err != nil {
			return err
		}
		if err := rt.cargo.Save(ctx, c); err != nil {
			return err
		}
	}

	return nil
}
