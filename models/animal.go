package models

// Animal - caller supplied fields for one animal record. The foreign keys
// reference enclosure and zookeeper records by id, they carry no ownership.
type Animal struct {
	Name        string `json:"name" binding:"required"`
	Species     string `json:"species" binding:"required"`
	ZookeeperID uint   `json:"zookeeper_id"`
	EnclosureID uint   `json:"enclosure_id"`
}
