package models

import "gorm.io/gorm"

type Zookeeper struct {
	gorm.Model
	Name     string `json:"name"`
	Birthday string `json:"birthday"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}

// ToMapping - serialized form of one zookeeper record, id first so the result
// is never empty. The enclosures a keeper works are derived through the
// animals table and not stored on the record.
func (z Zookeeper) ToMapping() *Mapping {
	m := NewMapping()
	m.Set("id", z.ID)
	m.Set("name", z.Name)
	m.Set("birthday", z.Birthday)
	m.Set("is_active", z.IsActive)
	m.Set("created_at", z.CreatedAt)
	m.Set("updated_at", z.UpdatedAt)
	return m
}
