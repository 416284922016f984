package models

// KPI trend directions.
const (
	TrendUp     = "up"
	TrendDown   = "down"
	TrendStable = "stable"
)

// KPI is a labeled dashboard metric. It is a stored snapshot recomputed
// externally, not derived from the intervention collection.
type KPI struct {
	Label  string  `bson:"label" json:"label"`
	Value  float64 `bson:"value" json:"value"`
	Change float64 `bson:"change" json:"change"`
	Trend  string  `bson:"trend" json:"trend"`
}
