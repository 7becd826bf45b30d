package dto

import (
	"deskbooker/internal/domains/deskbooking/model"
	"deskbooker/shared"
	"deskbooker/shared/constant"
	gDto "deskbooker/shared/dto"
	"deskbooker/shared/failure"
	"deskbooker/shared/timezone"
)

type CreateDeskBookingRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Date      string `json:"date"       validate:"required,calendardate"`
}

func (c *CreateDeskBookingRequest) ToModel() (model.DeskBookingRequest, error) {
	date, err := timezone.ParseDate(c.Date)
	if err != nil {
		return model.DeskBookingRequest{}, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	return model.DeskBookingRequest{
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Date:      date,
	}, nil
}

type DeskBookingResultResponse struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Code          string `json:"code"`
	DeskBookingID *int   `json:"desk_booking_id,omitempty"`
}

func (r *DeskBookingResultResponse) FromModel(result model.DeskBookingResult) {
	r.FirstName = result.FirstName
	r.LastName = result.LastName
	r.Email = result.Email
	r.Date = timezone.FormatDate(result.Date)
	r.Code = string(result.Code)
	r.DeskBookingID = result.DeskBookingID
}

type DeskBookingResponse struct {
	ID        int    `json:"id"`
	DeskID    int    `json:"desk_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Date      string `json:"date"`
	gDto.Metadata
}

func (r *DeskBookingResponse) FromModel(model model.DeskBooking) {
	r.ID = model.ID
	r.DeskID = model.DeskID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	// DATE columns come back as UTC midnight, so the day is formatted without conversion.
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.Metadata.FromModel(model.Metadata)
}

type GetDeskBookingsResponse struct {
	DeskBookings []DeskBookingResponse `json:"desk_bookings"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetDeskBookingsResponse) FromModels(models []model.DeskBooking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.DeskBookings = make([]DeskBookingResponse, len(models))
	for i, mod := range models {
		r.DeskBookings[i].FromModel(mod)
	}
}
