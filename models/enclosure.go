package models

// Enclosure - caller supplied fields for one enclosure record.
type Enclosure struct {
	Environment    string `json:"environment" binding:"required"`
	OpenToVisitors bool   `json:"open_to_visitors"`
}
