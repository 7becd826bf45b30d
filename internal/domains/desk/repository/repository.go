package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deskbooker/infras/otel"
	"deskbooker/infras/postgres"
	"deskbooker/internal/domains/desk/model"
	bookingModel "deskbooker/internal/domains/deskbooking/model"
	"deskbooker/shared/constant"
	gDto "deskbooker/shared/dto"
	gRepo "deskbooker/shared/repository"
	"fmt"
	"time"
)

type Desk interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Desk, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Desk, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetAvailableDesks(ctx context.Context, date time.Time) ([]model.Desk, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Desk]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Desk {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Desk](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// GetAvailableDesks returns the active desks without a booking on date, lowest id first.
// The calendar day is taken from the wall clock of date, the same day lib/pq writes
// for a booking_date bound as time.Time.
func (r *repositoryImpl) GetAvailableDesks(ctx context.Context, date time.Time) ([]model.Desk, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".desk.GetAvailableDesks")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s.%s = TRUE AND NOT EXISTS (SELECT 1 FROM %s WHERE %s.%s = %s.%s AND %s.%s = :%s) ORDER BY %s.%s ASC",
		r.SelectColumns(), model.TableName,
		model.TableName, model.FieldActive,
		bookingModel.TableName,
		bookingModel.TableName, bookingModel.FieldDeskID, model.TableName, model.FieldID,
		bookingModel.TableName, bookingModel.FieldDate, bookingModel.FieldDate,
		model.TableName, model.FieldID,
	)

	desks, err := r.Select(ctx, query, map[string]any{
		bookingModel.FieldDate: date.Format(constant.DateOnlyFormat),
	})
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return desks, nil
}
