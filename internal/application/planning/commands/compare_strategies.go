package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/application/planning"
	"github.com/avolkov/voyageplan-go/internal/domain/schedule"
)

// CompareStrategiesCommand runs the engine once per requested strategy
// against identical input data and returns the results side by side.
type CompareStrategiesCommand struct {
	Module     string
	Strategies []string
	Year       int
}

// CompareStrategiesResult maps each strategy to its result. A strategy whose
// run failed appears in Errors instead; one failure never aborts the others.
type CompareStrategiesResult struct {
	Results map[string]*schedule.OptimizationResult
	Errors  map[string]string
}

// CompareStrategiesHandler fans the engine out across strategies. Each run
// works on its own copy of mutable scheduling state, so the runs are mutually
// independent and safe to execute in parallel.
type CompareStrategiesHandler struct {
	loader     *planning.DataLoader
	engine     *schedule.Engine
	defaultCfg schedule.Config
}

// NewCompareStrategiesHandler creates the handler.
func NewCompareStrategiesHandler(loader *planning.DataLoader, engine *schedule.Engine, defaultCfg schedule.Config) *CompareStrategiesHandler {
	return &CompareStrategiesHandler{loader: loader, engine: engine, defaultCfg: defaultCfg}
}

// Handle executes the comparison.
func (h *CompareStrategiesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*CompareStrategiesCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type")
	}

	strategies := cmd.Strategies
	if len(strategies) == 0 {
		for _, s := range schedule.AllStrategies() {
			strategies = append(strategies, string(s))
		}
	}

	data, err := h.loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	out := &CompareStrategiesResult{
		Results: make(map[string]*schedule.OptimizationResult, len(strategies)),
		Errors:  make(map[string]string),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, name := range strategies {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()

			strategy, parseErr := schedule.ParseStrategy(name)
			if parseErr != nil {
				mu.Lock()
				out.Errors[name] = parseErr.Error()
				mu.Unlock()
				return
			}

			cfg := h.defaultCfg
			cfg.Module = cmd.Module
			if cmd.Year != 0 {
				cfg.Year = cmd.Year
			}
			cfg.OptimizationGoal = strategy

			result, runErr := h.engine.Run(data, strategy, cfg)

			mu.Lock()
			defer mu.Unlock()
			if runErr != nil {
				out.Errors[name] = runErr.Error()
				return
			}
			out.Results[name] = result
		}(name)
	}
	wg.Wait()

	return out, nil
}
