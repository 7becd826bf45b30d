package model

import "time"

// DeskBookingRequest is what a person asks for: a desk on Date.
type DeskBookingRequest struct {
	FirstName string
	LastName  string
	Email     string
	Date      time.Time
}

// DeskBookingResultCode reports how a booking request ended.
type DeskBookingResultCode string

const (
	DeskBookingResultCodeSuccess         DeskBookingResultCode = "success"
	DeskBookingResultCodeNoDeskAvailable DeskBookingResultCode = "no_desk_available"
)

// DeskBookingResult echoes the request and carries the outcome.
// DeskBookingID is set only when Code is DeskBookingResultCodeSuccess.
type DeskBookingResult struct {
	FirstName     string
	LastName      string
	Email         string
	Date          time.Time
	Code          DeskBookingResultCode
	DeskBookingID *int
}

// NewDeskBookingResult copies the personal fields and date from request.
func NewDeskBookingResult(request DeskBookingRequest, code DeskBookingResultCode, deskBookingID *int) DeskBookingResult {
	return DeskBookingResult{
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		Date:          request.Date,
		Code:          code,
		DeskBookingID: deskBookingID,
	}
}
