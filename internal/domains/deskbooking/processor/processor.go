package processor

//go:generate go run go.uber.org/mock/mockgen -source=./processor.go -destination=./mocks/processor_mock.go -package=mocks

import (
	"context"
	"deskbooker/infras/otel"
	deskModel "deskbooker/internal/domains/desk/model"
	"deskbooker/internal/domains/deskbooking/model"
	"deskbooker/shared/constant"
	"deskbooker/shared/failure"
	gModel "deskbooker/shared/model"
	"deskbooker/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const paramRequest = "request"

// DeskAvailability lists the desks free on a date. The order of the returned desks decides which one is booked.
type DeskAvailability interface {
	GetAvailableDesks(ctx context.Context, date time.Time) ([]deskModel.Desk, error)
}

// BookingStore persists a booking and sets its ID.
type BookingStore interface {
	Save(ctx context.Context, booking *model.DeskBooking) error
}

type Processor interface {
	BookDesk(ctx context.Context, request *model.DeskBookingRequest) (model.DeskBookingResult, error)
}

type processorImpl struct {
	availability DeskAvailability
	store        BookingStore
	otel         otel.Otel
}

func New(availability DeskAvailability, store BookingStore, otel otel.Otel) Processor {
	return &processorImpl{
		availability: availability,
		store:        store,
		otel:         otel,
	}
}

// BookDesk books the first desk available on request.Date.
// When no desk is free the result code is DeskBookingResultCodeNoDeskAvailable and nothing is saved.
// Errors from the collaborators are returned as they are.
func (p *processorImpl) BookDesk(ctx context.Context, request *model.DeskBookingRequest) (model.DeskBookingResult, error) {
	if request == nil {
		return model.DeskBookingResult{}, failure.InvalidArgument(paramRequest) // nolint:wrapcheck
	}

	ctx, scope := p.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BookDesk")
	defer scope.End()

	desks, err := p.availability.GetAvailableDesks(ctx, request.Date)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available desks")
		scope.TraceError(err)

		return model.DeskBookingResult{}, err // nolint:wrapcheck
	}

	if len(desks) == 0 {
		scope.AddEvent("no desk available")

		return model.NewDeskBookingResult(*request, model.DeskBookingResultCodeNoDeskAvailable, nil), nil
	}

	booking := model.DeskBooking{
		DeskID:    desks[0].ID,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Date:      request.Date,
		Metadata:  gModel.NewMetadata(constant.ContextGuest, timezone.Now()),
	}

	if err = p.store.Save(ctx, &booking); err != nil {
		log.Error().Err(err).Int("desk_id", booking.DeskID).Msg("failed to save desk booking")
		scope.TraceError(err)

		return model.DeskBookingResult{}, err // nolint:wrapcheck
	}

	scope.SetAttribute("desk_booking.id", booking.ID)

	return model.NewDeskBookingResult(*request, model.DeskBookingResultCodeSuccess, &booking.ID), nil
}
