package schedule

// ConflictType classifies a scheduling infeasibility or risk condition.
type ConflictType string

const (
	ConflictVesselOverlap    ConflictType = "vessel-overlap"
	ConflictPortCapacity     ConflictType = "port-capacity"
	ConflictCargoTiming      ConflictType = "cargo-timing"
	ConflictResourceShortage ConflictType = "resource-shortage"
)

// ConflictSeverity grades a conflict. Type and severity are independent axes.
type ConflictSeverity string

const (
	SeverityCritical ConflictSeverity = "critical"
	SeverityHigh     ConflictSeverity = "high"
	SeverityMedium   ConflictSeverity = "medium"
	SeverityLow      ConflictSeverity = "low"
)

// ScheduleConflict is one finding produced by the detector against a schedule
// snapshot. The suggested resolution is advisory only and never auto-applied;
// recording a resolution feeds the next run, it does not rewrite this one.
type ScheduleConflict struct {
	ID                  string           `json:"id"`
	Type                ConflictType     `json:"type"`
	Severity            ConflictSeverity `json:"severity"`
	Description         string           `json:"description"`
	AffectedIDs         []string         `json:"affectedIds"`
	SuggestedResolution string           `json:"suggestedResolution,omitempty"`
	Resolved            bool             `json:"resolved"`
}
