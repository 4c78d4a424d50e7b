package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolkov/voyageplan-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show effective configuration",
		Long: `Display the effective configuration.

Configuration is loaded from multiple sources with priority:
1. Environment variables (VP_* prefix, DATABASE_URL)
2. Config file (config.yaml)
3. Default values

Example:
  voyageplan config show`,
	}

	cmd.AddCommand(newConfigShowCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				fmt.Printf("Warning: failed to load config: %v\n", err)
				fmt.Println("Using default configuration.")
				cfg = config.LoadConfigOrDefault(configPath)
			}

			fmt.Println("Voyage Plan Configuration")
			fmt.Println("=========================")

			fmt.Println("Database:")
			fmt.Printf("  Type:             %s\n", cfg.Database.Type)
			if cfg.Database.URL != "" {
				fmt.Printf("  URL:              (set)\n")
			} else if cfg.Database.Type == "sqlite" {
				fmt.Printf("  Path:             %s\n", cfg.Database.Path)
			} else {
				fmt.Printf("  Host:             %s\n", cfg.Database.Host)
				fmt.Printf("  Port:             %d\n", cfg.Database.Port)
				fmt.Printf("  Database:         %s\n", cfg.Database.Name)
				fmt.Printf("  User:             %s\n", cfg.Database.User)
			}
			fmt.Printf("  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)

			fmt.Println("\nServer:")
			fmt.Printf("  Address:          %s:%d\n", cfg.Server.Host, cfg.Server.Port)
			fmt.Printf("  Rate Limit:       %d req/s (burst: %d)\n",
				cfg.Server.RateLimit.Requests, cfg.Server.RateLimit.Burst)

			fmt.Println("\nEngine:")
			fmt.Printf("  Default Strategy: %s\n", cfg.Engine.DefaultStrategy)
			fmt.Printf("  Utilization Band: %.0f%% - %.0f%%\n",
				cfg.Engine.MinUtilizationPct, cfg.Engine.MaxUtilizationPct)
			fmt.Printf("  Params:           %s v%d\n", cfg.Engine.Params.Name, cfg.Engine.Params.Version)
			fmt.Printf("    Laden Speed:    %.1f kn\n", cfg.Engine.Params.SpeedLadenKnots)
			fmt.Printf("    Bunker (IFO):   $%.0f/MT\n", cfg.Engine.Params.BunkerPriceIFO)
			fmt.Printf("    Freight Rate:   $%.2f/MT\n", cfg.Engine.Params.FreightRatePerMT)
			fmt.Printf("    Weather Margin: %.2f\n", cfg.Engine.Params.WeatherMargin)

			fmt.Println("\nMetrics:")
			fmt.Printf("  Enabled:          %t\n", cfg.Metrics.Enabled)
			if cfg.Metrics.Enabled {
				fmt.Printf("  Endpoint:         %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
			}

			fmt.Println("\nLogging:")
			fmt.Printf("  Level:            %s\n", cfg.Logging.Level)
			fmt.Printf("  Format:           %s\n", cfg.Logging.Format)

			return nil
		},
	}
}
