package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	module     string
	year       int
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voyageplan",
		Short: "Voyage plan CLI - optimize yearly fleet schedules",
		Long: `Voyage plan CLI builds year schedules for a fleet: it assigns cargo
commitments to vessels, prices every voyage, detects conflicts, and scores
the result.

Examples:
  voyageplan optimize --strategy maxrevenue --year 2026
  voyageplan optimize --module crude --save-as baseline-2026
  voyageplan compare --strategies maxrevenue,mincost,balance
  voyageplan conflicts --schedule-id baseline-2026
  voyageplan scenario list
  voyageplan scenario show baseline-2026`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: config.yaml in ., ./configs, /etc/voyageplan)")
	rootCmd.PersistentFlags().StringVar(&module, "module", "",
		"Fleet module to plan (empty means the whole fleet)")
	rootCmd.PersistentFlags().IntVar(&year, "year", 0,
		"Target schedule year (default: current year)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")

	// Add command groups
	rootCmd.AddCommand(NewOptimizeCommand())
	rootCmd.AddCommand(NewCompareCommand())
	rootCmd.AddCommand(NewConflictsCommand())
	rootCmd.AddCommand(NewScenarioCommand())
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewSeedCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
