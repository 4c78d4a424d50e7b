package schedule

// LegType classifies one segment of a voyage.
type LegType string

const (
	LegBallast   LegType = "ballast"
	LegLoading   LegType = "loading"
	LegTransit   LegType = "transit"
	LegDischarge LegType = "discharge"
	LegCanal     LegType = "canal"
	LegBunker    LegType = "bunker"
	LegWaiting   LegType = "waiting"
)

// VoyageLeg is one ordered segment within a voyage. Legs are append-only
// while the assigner builds the voyage and immutable afterwards.
type VoyageLeg struct {
	Type          LegType `json:"type"`
	FromID        string  `json:"fromId,omitempty"`
	ToID          string  `json:"toId,omitempty"`
	DistanceNM    float64 `json:"distanceNM"`
	DurationHours float64 `json:"durationHours"`
}
