package repository

import (
	"fmt"
	"time"
)

// NotFoundError - record lookup miss, carries the entity kind, the id and the
// time of the failed lookup.
type NotFoundError struct {
	When   time.Time
	Entity string
	Id     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: id %d at %v", e.Entity, e.Id, e.When)
}
