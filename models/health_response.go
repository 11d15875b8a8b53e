package models

// HealthResponse - liveness summary, database and cache report the state of
// the two backing connections.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
}
