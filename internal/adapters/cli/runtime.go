package cli

import (
	"fmt"

	"gorm.io/gorm"

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

// runtime bundles everything a CLI command needs: configuration, database,
// and a mediator with every handler registered.
type runtime struct {
	cfg      *config.Config
	db       *gorm.DB
	mediator common.Mediator
	logger   logging.Logger

	vessels common.VesselRepository
	cargo   common.CargoRepository
	routes  common.RouteRepository
	ports   common.PortRepository
}

// newRuntime loads config, connects to the database, and wires the planning
// stack. Each CLI invocation composes its own runtime and tears it down.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := logging.New("cli", level, "text")

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	vessels := persistence.NewGormVesselRepository(db)
	cargo := persistence.NewGormCargoRepository(db)
	routes := persistence.NewGormRouteRepository(db)
	ports := persistence.NewGormPortRepository(db)
	scenarios := persistence.NewGormScenarioRepository(db)

	loader := planning.NewDataLoader(vessels, cargo, routes, ports)
	clock := shared.NewRealClock()

	calc := finance.NewCalculator(nil)
	engine := schedule.NewEngine(schedule.NewAssigner(calc, clock), schedule.NewAggregator())

	defaults := defaultRunConfig(cfg, clock)

	m := common.NewMediator()
	m.Use(common.LoggingMiddleware(logger))

	registrations := map[string]error{
		"optimize": common.RegisterHandler[*commands.OptimizeScheduleCommand](m,
			commands.NewOptimizeScheduleHandler(loader, engine, scenarios, defaults, clock)),
		"compare": common.RegisterHandler[*commands.CompareStrategiesCommand](m,
			commands.NewCompareStrategiesHandler(loader, engine, defaults)),
		"save": common.RegisterHandler[*commands.SaveScenarioCommand](m,
			commands.NewSaveScenarioHandler(scenarios, clock)),
		"delete": common.RegisterHandler[*commands.DeleteScenarioCommand](m,
			commands.NewDeleteScenarioHandler(scenarios)),
		"get": common.RegisterHandler[*queries.GetScenarioQuery](m,
			queries.NewGetScenarioHandler(scenarios)),
		"list": common.RegisterHandler[*queries.ListScenariosQuery](m,
			queries.NewListScenariosHandler(scenarios)),
		"conflicts": common.RegisterHandler[*queries.DetectConflictsQuery](m,
			queries.NewDetectConflictsHandler(loader, engine, scenarios, defaults)),
	}
	for name, regErr := range registrations {
		if regErr != nil {
			return nil, fmt.Errorf("failed to register %s handler: %w", name, regErr)
		}
	}

	return &runtime{
		cfg:      cfg,
		db:       db,
		mediator: m,
		logger:   logger,
		vessels:  vessels,
		cargo:    cargo,
		routes:   routes,
		ports:    ports,
	}, nil
}

// Close releases the database connection.
func (rt *runtime) Close() {
	_ = database.Close(rt.db)
}

// defaultRunConfig translates configured engine defaults into run options.
// The target year defaults to the current calendar year.
func defaultRunConfig(cfg *config.Config, clock shared.Clock) schedule.Config {
	return schedule.Config{
		Year:              clock.Now().Year(),
		MinUtilizationPct: cfg.Engine.MinUtilizationPct,
		MaxUtilizationPct: cfg.Engine.MaxUtilizationPct,
		Params:            cfg.Engine.Params.ToParams(),
	}
}
