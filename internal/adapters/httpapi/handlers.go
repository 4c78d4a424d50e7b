package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/avolkov/voyageplan-go/internal/application/common"
	"github.com/avolkov/voyageplan-go/internal/application/planning/commands"
	"github.com/avolkov/voyageplan-go/internal/application/planning/queries"
	"github.com/avolkov/voyageplan-go/internal/infrastructure/logging"
)

// Handlers carries the dependencies shared by every HTTP endpoint. Write
// operations dispatch through the mediator; master-data reads go straight to
// the repositories.
type Handlers struct {
	mediator common.Mediator
	vessels  common.VesselRepository
	cargo    common.CargoRepository
	routes   common.RouteRepository
	ports    common.PortRepository
	validate *validator.Validate
	logger   logging.Logger

	defaultStrategy string
}

// NewHandlers creates the endpoint set.
func NewHandlers(
	mediator common.Mediator,
	vessels common.VesselRepository,
	cargo common.CargoRepository,
	routes common.RouteRepository,
	ports common.PortRepository,
	defaultStrategy string,
	logger logging.Logger,
) *Handlers {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	return &Handlers{
		mediator:        mediator,
		vessels:         vessels,
		cargo:           cargo,
		routes:          routes,
		ports:           ports,
		validate:        validator.New(),
		logger:          logger,
		defaultStrategy: defaultStrategy,
	}
}

// Health reports liveness.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// Optimize runs one optimization and returns the full result.
func (h *Handlers) Optimize(w http.ResponseWriter, r *http.Request) {
	var req OptimizeRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	strategy := req.Strategy
	if strategy == "" {
		strategy = h.defaultStrategy
	}

	cmd := &commands.OptimizeScheduleCommand{
		Module:               req.Module,
		Strategy:             strategy,
		Year:                 req.Year,
		Vessels:              req.Vessels,
		LoadCargoCommitments: req.LoadCargoCommitments,
		UseTemplates:         req.UseTemplates,
		MinUtilizationPct:    req.MinUtilizationPct,
		MaxUtilizationPct:    req.MaxUtilizationPct,
		Params:               req.Params,
		SaveAs:               req.SaveAs,
	}

	resp, err := h.mediator.Send(r.Context(), cmd)
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// Compare runs the engine once per strategy and returns the results side by
// side.
func (h *Handlers) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.mediator.Send(r.Context(), &commands.CompareStrategiesCommand{
		Module:     req.Module,
		Strategies: req.Strategies,
		Year:       req.Year,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// Conflicts scans a persisted scenario, or a fresh run when no id is given.
func (h *Handlers) Conflicts(w http.ResponseWriter, r *http.Request) {
	var req ConflictsRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	resp, err := h.mediator.Send(r.Context(), &queries.DetectConflictsQuery{
		Module:     req.Module,
		ScheduleID: req.ScheduleID,
	})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"conflicts": resp})
}

// ListScenarios lists persisted scenario summaries.
func (h *Handlers) ListScenarios(w http.ResponseWriter, r *http.Request) {
	resp, err := h.mediator.Send(r.Context(), &queries.ListScenariosQuery{})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"scenarios": resp})
}

// GetScenario retrieves one persisted scenario by id.
func (h *Handlers) GetScenario(w http.ResponseWriter, r *http.Request) {
	resp, err := h.mediator.Send(r.Context(), &queries.GetScenarioQuery{ID: r.PathValue("id")})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// DeleteScenario removes a persisted scenario by id.
func (h *Handlers) DeleteScenario(w http.ResponseWriter, r *http.Request) {
	resp, err := h.mediator.Send(r.Context(), &commands.DeleteScenarioCommand{ID: r.PathValue("id")})
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, resp)
}

// Vessels lists vessel master data, optionally filtered by module.
func (h *Handlers) Vessels(w http.ResponseWriter, r *http.Request) {
	module := r.URL.Query().Get("module")

	var err error
	var vessels []VesselResponse
	if module != "" {
		list, ferr := h.vessels.FindByModule(r.Context(), module)
		err = ferr
		for _, v := range list {
			vessels = append(vessels, toVesselResponse(v))
		}
	} else {
		list, ferr := h.vessels.FindAll(r.Context())
		err = ferr
		for _, v := range list {
			vessels = append(vessels, toVesselResponse(v))
		}
	}
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"vessels": vessels})
}

// Ports lists port reference data.
func (h *Handlers) Ports(w http.ResponseWriter, r *http.Request) {
	list, err := h.ports.FindAll(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	ports := make([]PortResponse, 0, len(list))
	for _, p := range list {
		ports = append(ports, toPortResponse(p))
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"ports": ports})
}

// Routes lists route reference data.
func (h *Handlers) Routes(w http.ResponseWriter, r *http.Request) {
	list, err := h.routes.FindAll(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	routes := make([]RouteResponse, 0, len(list))
	for _, rt := range list {
		routes = append(routes, toRouteResponse(rt))
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"routes": routes})
}

// Commitments lists cargo commitments. With ?status=pending only the
// unassigned ones are returned.
func (h *Handlers) Commitments(w http.ResponseWriter, r *http.Request) {
	var err error
	var list []CommitmentResponse

	if r.URL.Query().Get("status") == "pending" {
		pending, ferr := h.cargo.FindPending(r.Context())
		err = ferr
		for _, c := range pending {
			list = append(list, toCommitmentResponse(c))
		}
	} else {
		all, ferr := h.cargo.FindAll(r.Context())
		err = ferr
		for _, c := range all {
			list = append(list, toCommitmentResponse(c))
		}
	}
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]any{"commitments": list})
}
