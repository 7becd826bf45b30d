package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deskbooker/infras/otel"
	"deskbooker/infras/postgres"
	"deskbooker/internal/domains/deskbooking/model"
	"deskbooker/shared/constant"
	gDto "deskbooker/shared/dto"
	"deskbooker/shared/failure"
	gRepo "deskbooker/shared/repository"
	"errors"

	"github.com/lib/pq"
)

type DeskBooking interface {
	Save(ctx context.Context, booking *model.DeskBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.DeskBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DeskBooking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DeskBooking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DeskBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DeskBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// Save inserts booking and writes the generated id back into it.
// A second booking of the same desk on the same date fails with a conflict.
func (r *repositoryImpl) Save(ctx context.Context, booking *model.DeskBooking) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".desk_booking.Save")
	defer scope.End()

	id, err := r.InsertReturningID(ctx, *booking)
	if err != nil {
		scope.TraceError(err)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case constant.PqErrorCodeUniqueViolation:
				return failure.Conflict("desk is already booked for this date") // nolint:wrapcheck
			case constant.PqErrorCodeFkViolation:
				return failure.BadRequestFromString("desk does not exist") // nolint:wrapcheck
			}
		}

		return err
	}

	booking.ID = id
	scope.SetAttribute("desk_booking.id", id)

	return nil
}
