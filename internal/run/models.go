package run

import "time"

const (
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// GeoPoint is a single GPS fix. Immutable once appended to a path.
type GeoPoint struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// Session is one run-tracking interval from start to stop/cancel.
// DistanceM is always the cumulative sum of consecutive-segment haversine
// distances over Path, maintained incrementally as points arrive.
type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Status    string     `json:"status"`
	Path      []GeoPoint `json:"path"`
	DistanceM float64    `json:"distance_m"`
	CreatedAt time.Time  `json:"created_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

type StartResult struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

type UpdateResult struct {
	Status        string  `json:"status"`
	TotalDistance float64 `json:"total_distance"`
}

type StopResult struct {
	Status        string  `json:"status"`
	FinalDistance float64 `json:"final_distance"`
	Summary       string  `json:"summary"`
}
