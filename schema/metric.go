package schema

const RegionMetricCollection = "region_metrics"

// RegionMetric is the per-region aggregate the dashboard reads. It is
// recomputed from the relational store by a background task and upserted
// into mongodb keyed by (district, state).
type RegionMetric struct {
	District        string           `json:"district" bson:"district"`
	State           string           `json:"state" bson:"state"`
	TotalCount      int64            `json:"total" bson:"total"`
	SubmittedCount  int64            `json:"submitted" bson:"submitted"`
	InProgressCount int64            `json:"in_progress" bson:"in_progress"`
	ResolvedCount   int64            `json:"resolved" bson:"resolved"`
	CategoryCounts  map[string]int64 `json:"categories" bson:"categories"`
	LastUpdate      int64            `json:"last_update" bson:"last_update"`
}

// OpenCount is the number of requests in the region still waiting for a
// resolution.
func (m RegionMetric) OpenCount() int64 {
	return m.SubmittedCount + m.InProgressCount
}
