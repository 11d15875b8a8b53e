package models

// Zookeeper - caller supplied fields for one zookeeper record, birthday is an
// ISO date string.
type Zookeeper struct {
	Name     string `json:"name" binding:"required"`
	Birthday string `json:"birthday"`
}
