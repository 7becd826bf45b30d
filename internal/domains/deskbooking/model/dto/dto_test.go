package dto_test

import (
	"deskbooker/internal/domains/deskbooking/model"
	"deskbooker/internal/domains/deskbooking/model/dto"
	"deskbooker/shared/failure"
	"deskbooker/shared/timezone"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDeskBookingRequest_ToModel(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		req := dto.CreateDeskBookingRequest{
			FirstName: "Alan",
			LastName:  "Shearer",
			Email:     "AlanShearer@gmail.com",
			Date:      "2020-01-28",
		}

		res, err := req.ToModel()

		require.NoError(t, err)
		assert.Equal(t, model.DeskBookingRequest{
			FirstName: "Alan",
			LastName:  "Shearer",
			Email:     "AlanShearer@gmail.com",
			Date:      time.Date(2020, 1, 28, 0, 0, 0, 0, timezone.GetLocation()),
		}, res)
	})

	t.Run("invalid date", func(t *testing.T) {
		req := dto.CreateDeskBookingRequest{Date: "2020-13-01"}

		_, err := req.ToModel()

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestDeskBookingResultResponse_FromModel(t *testing.T) {
	date := time.Date(2020, 1, 28, 0, 0, 0, 0, timezone.GetLocation())
	id := 5

	tests := []struct {
		name     string
		result   model.DeskBookingResult
		expected string
	}{
		{
			name: "success carries the booking id",
			result: model.DeskBookingResult{
				FirstName: "Alan", LastName: "Shearer", Email: "AlanShearer@gmail.com", Date: date,
				Code: model.DeskBookingResultCodeSuccess, DeskBookingID: &id,
			},
			expected: `{"first_name":"Alan","last_name":"Shearer","email":"AlanShearer@gmail.com","date":"2020-01-28","code":"success","desk_booking_id":5}`,
		},
		{
			name: "no desk available omits the booking id",
			result: model.DeskBookingResult{
				FirstName: "Alan", LastName: "Shearer", Email: "AlanShearer@gmail.com", Date: date,
				Code: model.DeskBookingResultCodeNoDeskAvailable,
			},
			expected: `{"first_name":"Alan","last_name":"Shearer","email":"AlanShearer@gmail.com","date":"2020-01-28","code":"no_desk_available"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := dto.DeskBookingResultResponse{}
			res.FromModel(tt.result)

			body, err := json.Marshal(res)

			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(body))
		})
	}
}

func TestGetDeskBookingsResponse_FromModels(t *testing.T) {
	bookings := []model.DeskBooking{
		{ID: 1, DeskID: 7, Email: "AlanShearer@gmail.com", Date: time.Date(2020, 1, 28, 0, 0, 0, 0, time.UTC)},
	}

	res := dto.GetDeskBookingsResponse{}
	res.FromModels(bookings, 1, 10)

	assert.Equal(t, 1, res.TotalPage)
	assert.Equal(t, "2020-01-28", res.DeskBookings[0].Date)
	assert.Equal(t, 7, res.DeskBookings[0].DeskID)
}
