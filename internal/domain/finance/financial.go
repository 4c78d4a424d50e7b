package finance

// VoyageFinancial is the per-voyage output of the calculator. It is derived
// data: one financial per voyage, never edited directly.
//
// Monetary fields are rounded to the nearest unit at the calculator boundary.
// TotalCost and Profit are computed from the already-rounded components, so
// Profit == Revenue - (BunkerCost + HireCost + PortCost) holds exactly.
type VoyageFinancial struct {
	VoyageID     string `json:"voyageId,omitempty"`
	VesselID     string `json:"vesselId"`
	CommitmentID string `json:"commitmentId"`

	CargoQuantityMT float64 `json:"cargoQuantityMT"`
	DistanceNM      float64 `json:"distanceNM"`

	SeaDays         float64 `json:"seaDays"`
	PortDays        float64 `json:"portDays"`
	TotalVoyageDays float64 `json:"totalVoyageDays"`

	Revenue    float64 `json:"revenue"`
	BunkerCost float64 `json:"bunkerCost"`
	HireCost   float64 `json:"hireCost"`
	PortCost   float64 `json:"portCost"`
	TotalCost  float64 `json:"totalCost"`

	TCE    float64 `json:"tce"`
	Profit float64 `json:"profit"`
}
