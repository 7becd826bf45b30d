package deskbooking_test

import (
	"context"
	otelMock "deskbooker/infras/otel/mocks"
	"deskbooker/internal/domains/deskbooking/model"
	"deskbooker/internal/domains/deskbooking/model/dto"
	processorMock "deskbooker/internal/domains/deskbooking/processor/mocks"
	serviceMock "deskbooker/internal/domains/deskbooking/service/mocks"
	"deskbooker/internal/handlers/deskbooking"
	gDto "deskbooker/shared/dto"
	"deskbooker/shared/failure"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bookingBody = `{"first_name":"Alan","last_name":"Shearer","email":"AlanShearer@gmail.com","date":"2020-01-28"}`

func setup(t *testing.T) (*processorMock.MockProcessor, *serviceMock.MockDeskBooking, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	proc := processorMock.NewMockProcessor(ctrl)
	svc := serviceMock.NewMockDeskBooking(ctrl)

	handler := deskbooking.New(proc, svc, otelMock.NewOtel())
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return proc, svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	return rec
}

func TestBookDesk(t *testing.T) {
	bookingID := 5

	tests := []struct {
		name         string
		body         string
		result       model.DeskBookingResult
		err          error
		callsProc    bool
		expectedCode int
		expectedBody string
	}{
		{
			name:         "booked",
			body:         bookingBody,
			result:       model.DeskBookingResult{Code: model.DeskBookingResultCodeSuccess, DeskBookingID: &bookingID},
			callsProc:    true,
			expectedCode: http.StatusCreated,
			expectedBody: `"desk_booking_id":5`,
		},
		{
			name:         "no desk available",
			body:         bookingBody,
			result:       model.DeskBookingResult{Code: model.DeskBookingResultCodeNoDeskAvailable},
			callsProc:    true,
			expectedCode: http.StatusOK,
			expectedBody: `"code":"no_desk_available"`,
		},
		{
			name:         "desk taken meanwhile",
			body:         bookingBody,
			err:          failure.Conflict("desk is already booked for this date"),
			callsProc:    true,
			expectedCode: http.StatusConflict,
			expectedBody: "desk is already booked for this date",
		},
		{
			name:         "storage down",
			body:         bookingBody,
			err:          errors.New("connection refused"),
			callsProc:    true,
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "invalid email",
			body:         `{"first_name":"Alan","last_name":"Shearer","email":"alan","date":"2020-01-28"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: "email must be a valid email address",
		},
		{
			name:         "invalid date",
			body:         `{"first_name":"Alan","last_name":"Shearer","email":"AlanShearer@gmail.com","date":"28-01-2020"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:         "malformed body",
			body:         `{"first_name":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			proc, _, router := setup(t)

			if tt.callsProc {
				proc.EXPECT().
					BookDesk(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req *model.DeskBookingRequest) (model.DeskBookingResult, error) {
						assert.Equal(t, "Alan", req.FirstName)
						assert.Equal(t, "2020-01-28", req.Date.Format("2006-01-02"))

						result := tt.result
						result.FirstName = req.FirstName
						result.LastName = req.LastName
						result.Email = req.Email
						result.Date = req.Date

						return result, tt.err
					}).
					Times(1)
			}

			rec := serve(router, http.MethodPost, "/v1/desk-bookings/", tt.body)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
		})
	}
}

func TestGetDeskBookings(t *testing.T) {
	t.Run("passes filters to the service", func(t *testing.T) {
		_, svc, router := setup(t)

		svc.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDeskBookingsResponse, error) {
				where, args := filter.GetWhereClause()

				assert.Equal(t, 1, params.Page)
				assert.Equal(t, "(desk_bookings.email = :email AND desk_bookings.booking_date = :booking_date)", where)
				assert.Equal(t, "2020-01-28", args["booking_date"])

				return dto.GetDeskBookingsResponse{TotalData: 1, TotalPage: 1}, nil
			}).
			Times(1)

		rec := serve(router, http.MethodGet, "/v1/desk-bookings/?email=AlanShearer@gmail.com&date=2020-01-28", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_data":1`)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		_, _, router := setup(t)

		rec := serve(router, http.MethodGet, "/v1/desk-bookings/?date=yesterday", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a non numeric desk id", func(t *testing.T) {
		_, _, router := setup(t)

		rec := serve(router, http.MethodGet, "/v1/desk-bookings/?desk_id=seven", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetDeskBookingByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		_, svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), 5).Return(dto.DeskBookingResponse{ID: 5, DeskID: 7}, nil)

		rec := serve(router, http.MethodGet, "/v1/desk-bookings/5", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"desk_id":7`)
	})

	t.Run("not found", func(t *testing.T) {
		_, svc, router := setup(t)

		svc.EXPECT().Get(gomock.Any(), 9).Return(dto.DeskBookingResponse{}, failure.NotFound("desk booking not found"))

		rec := serve(router, http.MethodGet, "/v1/desk-bookings/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, _, router := setup(t)

		rec := serve(router, http.MethodGet, "/v1/desk-bookings/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
