package models

import "gorm.io/gorm"

type Enclosure struct {
	gorm.Model
	Environment    string `json:"environment"`
	OpenToVisitors bool   `json:"open_to_visitors"`
	IsActive       bool   `json:"is_active" gorm:"default:true"`
}

// ToMapping - serialized form of one enclosure record, id first so the result
// is never empty. Animals housed here reference the enclosure by id and are
// not part of the record itself.
func (e Enclosure) ToMapping() *Mapping {
	m := NewMapping()
	m.Set("id", e.ID)
	m.Set("environment", e.Environment)
	m.Set("open_to_visitors", e.OpenToVisitors)
	m.Set("is_active", e.IsActive)
	m.Set("created_at", e.CreatedAt)
	m.Set("updated_at", e.UpdatedAt)
	return m
}
