package persistence

import (
	"time"
)

// VesselModel represents the vessels table
type VesselModel struct {
	ID            string  `gorm:"column:id;primaryKey"`
	Name          string  `gorm:"column:name;not null"`
	Class         string  `gorm:"column:class"`
	Module        string  `gorm:"column:module;index"`
	DWT           float64 `gorm:"column:dwt;not null"`
	SpeedKnots    float64 `gorm:"column:speed_knots;not null"`
	DailyHireCost float64 `gorm:"column:daily_hire_cost;not null"`
	CurrentPortID string  `gorm:"column:current_port_id"`
	Status        string  `gorm:"column:status;not null;default:'Active'"`
}

func (VesselModel) TableName() string {
	return "vessels"
}

// PortModel represents the ports table
type PortModel struct {
	ID             string  `gorm:"column:id;primaryKey"`
	Name           string  `gorm:"column:name;not null"`
	LoadRateMTDay  float64 `gorm:"column:load_rate_mt_day;not null"`
	DischRateMTDay float64 `gorm:"column:disch_rate_mt_day;not null"`
	WaitingHours   float64 `gorm:"column:waiting_hours;not null;default:0"`
	HandlesLiquid  bool    `gorm:"column:handles_liquid;not null;default:false"`
	HandlesDry     bool    `gorm:"column:handles_dry;not null;default:true"`
}

func (PortModel) TableName() string {
	return "ports"
}

// RouteModel represents the routes table
// Primary key is composite: (from_port_id, to_port_id)
type RouteModel struct {
	FromPortID   string  `gorm:"column:from_port_id;primaryKey"`
	ToPortID     string  `gorm:"column:to_port_id;primaryKey"`
	DistanceNM   float64 `gorm:"column:distance_nm;not null"`
	CanalTransit bool    `gorm:"column:canal_transit;not null;default:false"`
	CanalName    string  `gorm:"column:canal_name"`
	WeatherRisk  string  `gorm:"column:weather_risk"`
}

func (RouteModel) TableName() string {
	return "routes"
}

// CargoCommitmentModel represents the cargo_commitments table
type CargoCommitmentModel struct {
	ID                  string     `gorm:"column:id;primaryKey"`
	Commodity           string     `gorm:"column:commodity;not null"`
	QuantityMT          float64    `gorm:"column:quantity_mt;not null"`
	LoadPortID          string     `gorm:"column:load_port_id;not null"`
	DischargePortID     string     `gorm:"column:discharge_port_id;not null"`
	LaycanStart         time.Time  `gorm:"column:laycan_start;not null;index"`
	LaycanEnd           time.Time  `gorm:"column:laycan_end;not null"`
	DeliveryDeadline    *time.Time `gorm:"column:delivery_deadline"`
	Status              string     `gorm:"column:status;not null;default:'Pending'"`
	LaneID              string     `gorm:"column:lane_id"`
	CostAllocationsJSON string     `gorm:"column:cost_allocations_json;type:text"` // JSON as text
}

func (CargoCommitmentModel) TableName() string {
	return "cargo_commitments"
}

// ScenarioModel represents the scenarios table. The full OptimizationResult
// is stored as a self-describing JSON document so field additions stay
// backward compatible; unknown fields are ignored on read, not rejected.
type ScenarioModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Strategy        string    `gorm:"column:strategy;not null"`
	OptimalityScore float64   `gorm:"column:optimality_score;not null"`
	ResultJSON      string    `gorm:"column:result_json;type:text;not null"`
	MetadataJSON    string    `gorm:"column:metadata_json;type:text"`
	CreatedAt       time.Time `gorm:"column:created_at;not null"`
}

func (ScenarioModel) TableName() string {
	return "scenarios"
}
