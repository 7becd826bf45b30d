package model

import "deskbooker/shared/model"

const (
	TableName  = "desks"
	EntityName = "desk"

	FieldID       = "id"
	FieldName     = "name"
	FieldLocation = "location"
	FieldActive   = "active"
)

type Desk struct {
	ID       int    `db:"id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Active   bool   `db:"active"`
	model.Metadata
}
