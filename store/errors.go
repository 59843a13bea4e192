package store

import "fmt"

type (
	NotFound struct {
		Kind string
		ID   string
	}

	Conflict struct {
		Kind  string
		Field string
	}
)

func (n NotFound) Error() string {
	return fmt.Sprintf("%v %v not found", n.Kind, n.ID)
}

func (c Conflict) Error() string {
	return fmt.Sprintf("%v with the same %v already exists", c.Kind, c.Field)
}
