package httpapi

import (
	"time"

	"github.com/avolkov/voyageplan-go/internal/domain/cargo"
	"github.com/avolkov/voyageplan-go/internal/domain/finance"
	"github.com/avolkov/voyageplan-go/internal/domain/fleet"
	"github.com/avolkov/voyageplan-go/internal/domain/routing"
)

// OptimizeRequest is the body of POST /api/schedules/optimize.
type OptimizeRequest struct {
	Module   string `json:"module"`
	Strategy string `json:"strategy" validate:"omitempty,oneof=maxrevenue mincost balance"`
	Year     int    `json:"year" validate:"omitempty,min=1970,max=2200"`

	Vessels              []string `json:"vessels,omitempty"`
	LoadCargoCommitments bool     `json:"loadCargoCommitments"`
	UseTemplates         bool     `json:"useTemplates"`
	MinUtilizationPct    float64  `json:"minUtilizationPct" validate:"min=0,max=100"`
	MaxUtilizationPct    float64  `json:"maxUtilizationPct" validate:"min=0,max=100"`

	Params *finance.CalculationParams `json:"params,omitempty"`

	// SaveAs persists the result as a scenario under the given id.
	SaveAs string `json:"saveAs,omitempty"`
}

// CompareRequest is the body of POST /api/schedules/compare.
type CompareRequest struct {
	Module     string   `json:"module"`
	Strategies []string `json:"strategies,omitempty" validate:"dive,oneof=maxrevenue mincost balance"`
	Year       int      `json:"year" validate:"omitempty,min=1970,max=2200"`
}

// ConflictsRequest is the body of POST /api/schedules/conflicts.
type ConflictsRequest struct {
	Module     string `json:"module"`
	ScheduleID string `json:"scheduleId,omitempty"`
}

// VesselResponse is the read projection of a fleet vessel.
type VesselResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Class         string  `json:"class"`
	Module        string  `json:"module"`
	DWT           float64 `json:"dwt"`
	SpeedKnots    float64 `json:"speedKnots"`
	DailyHireCost float64 `json:"dailyHireCost"`
	CurrentPortID string  `json:"currentPortId"`
	Status        string  `json:"status"`
}

func toVesselResponse(v *fleet.Vessel) VesselResponse {
	return VesselResponse{
		ID:            v.ID(),
		Name:          v.Name(),
		Class:         v.Class(),
		Module:        v.Module(),
		DWT:           v.DWT(),
		SpeedKnots:    v.SpeedKnots(),
		DailyHireCost: v.DailyHireCost(),
		CurrentPortID: v.CurrentPortID(),
		Status:        string(v.Status()),
	}
}

// PortResponse is the read projection of a port.
type PortResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	LoadRateMTDay  float64 `json:"loadRateMTDay"`
	DischRateMTDay float64 `json:"dischRateMTDay"`
	WaitingHours   float64 `json:"waitingHours"`
	HandlesLiquid  bool    `json:"handlesLiquid"`
	HandlesDry     bool    `json:"handlesDry"`
}

func toPortResponse(p *routing.Port) PortResponse {
	return PortResponse{
		ID:             p.ID(),
		Name:           p.Name(),
		LoadRateMTDay:  p.LoadRateMTDay(),
		DischRateMTDay: p.DischRateMTDay(),
		WaitingHours:   p.WaitingHours(),
		HandlesLiquid:  p.HandlesLiquid(),
		HandlesDry:     p.HandlesDry(),
	}
}

// RouteResponse is the read projection of a route.
type RouteResponse struct {
	FromPortID   string  `json:"fromPortId"`
	ToPortID     string  `json:"toPortId"`
	DistanceNM   float64 `json:"distanceNm"`
	CanalTransit bool    `json:"canalTransit"`
	CanalName    string  `json:"canalName,omitempty"`
	WeatherRisk  string  `json:"weatherRisk,omitempty"`
}

func toRouteResponse(rt *routing.Route) RouteResponse {
	return RouteResponse{
		FromPortID:   rt.FromPortID(),
		ToPortID:     rt.ToPortID(),
		DistanceNM:   rt.DistanceNM(),
		CanalTransit: rt.CanalTransit(),
		CanalName:    rt.CanalName(),
		WeatherRisk:  rt.WeatherRisk(),
	}
}

// CommitmentResponse is the read projection of a cargo commitment.
type CommitmentResponse struct {
	ID               string     `json:"id"`
	Commodity        string     `json:"commodity"`
	QuantityMT       float64    `json:"quantityMt"`
	LoadPortID       string     `json:"loadPortId"`
	DischargePortID  string     `json:"dischargePortId"`
	LaycanStart      time.Time  `json:"laycanStart"`
	LaycanEnd        time.Time  `json:"laycanEnd"`
	DeliveryDeadline *time.Time `json:"deliveryDeadline,omitempty"`
	Status           string     `json:"status"`
	LaneID           string     `json:"laneId,omitempty"`
}

func toCommitmentResponse(c *cargo.Commitment) CommitmentResponse {
	return CommitmentResponse{
		ID:               c.ID(),
		Commodity:        c.Commodity(),
		QuantityMT:       c.QuantityMT(),
		LoadPortID:       c.LoadPortID(),
		DischargePortID:  c.DischargePortID(),
		LaycanStart:      c.LaycanStart(),
		LaycanEnd:        c.LaycanEnd(),
		DeliveryDeadline: c.DeliveryDeadline(),
		Status:           string(c.Status()),
		LaneID:           c.LaneID(),
	}
}
