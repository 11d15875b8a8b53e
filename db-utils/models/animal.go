package models

import "gorm.io/gorm"

type Animal struct {
	gorm.Model
	Name        string `json:"name"`
	Species     string `json:"species"`
	ZookeeperID uint   `json:"zookeeper_id"`
	EnclosureID uint   `json:"enclosure_id"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
}

// ToMapping - serialized form of one animal record. The id field is emitted
// first, so the result is never empty, not even for a zero value record.
// Foreign keys stay plain identifiers.
func (a Animal) ToMapping() *Mapping {
	m := NewMapping()
	m.Set("id", a.ID)
	m.Set("name", a.Name)
	m.Set("species", a.Species)
	m.Set("zookeeper_id", a.ZookeeperID)
	m.Set("enclosure_id", a.EnclosureID)
	m.Set("is_active", a.IsActive)
	m.Set("created_at", a.CreatedAt)
	m.Set("updated_at", a.UpdatedAt)
	return m
}
