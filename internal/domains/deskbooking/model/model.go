package model

import (
	"deskbooker/shared/model"
	"time"
)

const (
	TableName  = "desk_bookings"
	EntityName = "desk_booking"

	FieldID        = "id"
	FieldDeskID    = "desk_id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldDate      = "booking_date"
)

// DeskBooking is a persisted reservation of one desk for one calendar date.
// ID stays zero until the booking store assigns it.
type DeskBooking struct {
	ID        int       `db:"id"`
	DeskID    int       `db:"desk_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	Date      time.Time `db:"booking_date"`
	model.Metadata
}
