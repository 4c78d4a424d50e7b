package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/avolkov/voyageplan-go/internal/adapters/httpapi"
	"github.com/avolkov/voyageplan-go/internal/adapters/metrics"
	"github.com/avolkov/voyageplan-go/internal/adapters/persistence"
	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/application/planning"
	"github.com/avolkov/voyageplan-go/internal/application/planning/commands"
	"github.com/avolkov/voyageplan-go/internal/application/planning/queries"
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
	"github.com/avolkov/voyageplan-go/internal/domain/shared"
	"github.com/avolkov/voyageplan-go/internal/infrastructure/config"
	"github.com/avolkov/voyageplan-go/internal/infrastructure/database"
	"github.com/avolkov/voyageplan-go/internal/infrastructure/logging"
)

func main() {
	configPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)

	if err := run(cfg); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run(cfg *config.Config) error {
	logger := logging.New("server", cfg.Logging.Level, cfg.Logging.Format)

	// 1. Database
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Infof("database connected (%s)", cfg.Database.Type)

	// 2. Repositories
	vessels := persistence.NewGormVesselRepository(db)
	cargo := persistence.NewGormCargoRepository(db)
	routes := persistence.NewGormRouteRepository(db)
	ports := persistence.NewGormPortRepository(db)
	scenarios := persistence.NewGormScenarioRepository(db)

	// 3. Metrics
	var httpMetrics *metrics.HTTPMetricsCollector
	var commandMetrics *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		metrics.InitRegistry()

		optMetrics := metrics.NewOptimizationMetricsCollector()
		if err := optMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register optimization metrics: %w", err)
		}
		metrics.SetGlobalOptimizationCollector(optMetrics)

		httpMetrics = metrics.NewHTTPMetricsCollector()
		if err := httpMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register http metrics: %w", err)
		}

		commandMetrics = metrics.NewCommandMetricsCollector()
		if err := commandMetrics.Register(); err != nil {
			return fmt.Errorf("failed to register command metrics: %w", err)
		}
		logger.Infof("metrics enabled")
	}

	// 4. Planning stack
	loader := planning.NewDataLoader(vessels, cargo, routes, ports)
	clock := shared.NewRealClock()
	calc := finance.NewCalculator(nil)
	engine := schedule.NewEngine(schedule.NewAssigner(calc, clock), schedule.NewAggregator())

	defaults := schedule.Config{
		Year:              clock.Now().Year(),
		MinUtilizationPct: cfg.Engine.MinUtilizationPct,
		MaxUtilizationPct: cfg.Engine.MaxUtilizationPct,
		Params:            cfg.Engine.Params.ToParams(),
	}

	// 5. Mediator
	med := common.NewMediator()
	med.Use(common.LoggingMiddleware(logger))
	if commandMetrics != nil {
		med.Use(metrics.PrometheusMiddleware(commandMetrics))
	}

	if err := registerHandlers(med, loader, engine, scenarios, defaults, clock); err != nil {
		return err
	}

	// 6. HTTP server
	handlers := httpapi.NewHandlers(med, vessels, cargo, routes, ports, cfg.Engine.DefaultStrategy, logger)
	router := httpapi.NewRouter(handlers, &cfg.Server, logger, httpMetrics)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Infof("server stopped")
	return nil
}

func registerHandlers(
	med common.Mediator,
	loader *planning.DataLoader,
	engine *schedule.Engine,
	scenarios common.ScenarioRepository,
	defaults schedule.Config,
	clock shared.Clock,
) error {
	if err := common.RegisterHandler[*commands.OptimizeScheduleCommand](med,
		commands.NewOptimizeScheduleHandler(loader, engine, scenarios, defaults, clock)); err != nil {
		return fmt.Errorf("failed to register OptimizeSchedule handler: %w", err)
	}
	if err := common.RegisterHandler[*commands.CompareStrategiesCommand](med,
		commands.NewCompareStrategiesHandler(loader, engine, defaults)); err != nil {
		return fmt.Errorf("failed to register CompareStrategies handler: %w", err)
	}
	if err := common.RegisterHandler[*commands.SaveScenarioCommand](med,
		commands.NewSaveScenarioHandler(scenarios, clock)); err != nil {
		return fmt.Errorf("failed to register SaveScenario handler: %w", err)
	}
	if err := common.RegisterHandler[*commands.DeleteScenarioCommand](med,
		commands.NewDeleteScenarioHandler(scenarios)); err != nil {
		return fmt.Errorf("failed to register DeleteScenario handler: %w", err)
	}
	if err := common.RegisterHandler[*queries.GetScenarioQuery](med,
		queries.NewGetScenarioHandler(scenarios)); err != nil {
		return fmt.Errorf("failed to register GetScenario handler: %w", err)
	}
	if err := common.RegisterHandler[*queries.ListScenariosQuery](med,
		queries.NewListScenariosHandler(scenarios)); err != nil {
		return fmt.Errorf("failed to register ListScenarios handler: %w", err)
	}
	if err := common.RegisterHandler[*queries.DetectConflictsQuery](med,
		queries.NewDetectConflictsHandler(loader, engine, scenarios, defaults)); err != nil {
		return fmt.Errorf("failed to register DetectConflicts handler: %w", err)
	}
	return nil
}
