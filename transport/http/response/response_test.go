package response_test

import (
	"deskbooker/shared/failure"
	"deskbooker/transport/http/response"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "invalid argument names the parameter",
			err:          failure.InvalidArgument("request"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"request must not be nil","param":"request"}`,
		},
		{
			name:         "conflict",
			err:          failure.Conflict("desk is already booked for this date"),
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"desk is already booked for this date"}`,
		},
		{
			name:         "unexpected error is hidden",
			err:          errors.New("pq: password authentication failed"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"desk_booking_id": 5})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"desk_booking_id":5}}`, rec.Body.String())
}
