package routing

import (
	"fmt"

	"github.com/avolkov/voyageplan-go/internal/domain/shared"
)

// Route is read-only reference data for a sailing lane between two ports.
type Route struct {
	fromPortID   string
	toPortID     string
	distanceNM   float64
	canalTransit bool
	canalName    string
	weatherRisk  string
}

// NewRoute creates a route after validating its reference fields.
func NewRoute(fromPortID, toPortID string, distanceNM float64, canalTransit bool, canalName, weatherRisk string) (*Route, error) {
	if fromPortID == "" || toPortID == "" {
		return nil, shared.NewValidationError("route.ports", "from and to ports are required")
	}
	if distanceNM <= 0 {
		return nil, shared.NewValidationError("route.distanceNM", "must be positive")
	}
	if canalTransit && canalName == "" {
		return nil, shared.NewValidationError("route.canalName", "required when canalTransit is set")
	}

	return &Route{
		fromPortID:   fromPortID,
		toPortID:     toPortID,
		distanceNM:   distanceNM,
		canalTransit: canalTransit,
		canalName:    canalName,
		weatherRisk:  weatherRisk,
	}, nil
}

func (r *Route) FromPortID() string  { return r.fromPortID }
func (r *Route) ToPortID() string    { return r.toPortID }
func (r *Route) DistanceNM() float64 { return r.distanceNM }
func (r *Route) CanalTransit() bool  { return r.canalTransit }
func (r *Route) CanalName() string   { return r.canalName }
func (r *Route) WeatherRisk() string { return r.weatherRisk }

// Lookup indexes routes by port pair for O(1) resolution during assignment.
type Lookup struct {
	byPair map[string]*Route
}

// NewLookup builds a route index from reference data.
func NewLookup(routes []*Route) *Lookup {
	byPair := make(map[string]*Route, len(routes))
	for _, r := range routes {
		byPair[pairKey(r.fromPortID, r.toPortID)] = r
	}
	return &Lookup{byPair: byPair}
}

// Find resolves the route between two ports, or an error when none exists.
func (l *Lookup) Find(fromPortID, toPortID string) (*Route, error) {
	if r, ok := l.byPair[pairKey(fromPortID, toPortID)]; ok {
		return r, nil
	}
	// Lanes are symmetric unless a directed entry exists.
	if r, ok := l.byPair[pairKey(toPortID, fromPortID)]; ok {
		return r, nil
	}
	return nil, shared.NewNotFoundError("route", fmt.Sprintf("%s->%s", fromPortID, toPortID))
}

func pairKey(from, to string) string {
	return from + "|" + to
}
