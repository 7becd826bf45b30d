package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deskbooker/config"
	"deskbooker/infras/otel"
	"deskbooker/internal/domains/deskbooking/model"
	"deskbooker/internal/domains/deskbooking/model/dto"
	"deskbooker/internal/domains/deskbooking/repository"
	"deskbooker/shared"
	"deskbooker/shared/cache"
	"deskbooker/shared/constant"
	gDto "deskbooker/shared/dto"
	"deskbooker/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

const cacheGetDeskBooking = "desk_booking:get"

type DeskBooking interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDeskBookingsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.DeskBookingResponse, error)
}

type serviceImpl struct {
	repo  repository.DeskBooking
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.DeskBooking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) DeskBooking {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetAll is read straight from the database; new bookings must show up immediately.
func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDeskBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk_booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get desk bookings")

		return res, fmt.Errorf("failed to get desk bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk_booking.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count desk bookings")

		return res, fmt.Errorf("failed to count desk bookings: %w", err)
	}

	return res, nil
}

// Get caches single bookings; they are never modified once saved.
func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.DeskBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk_booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetDeskBooking, id)

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (dto.DeskBookingResponse, error) {
		var res dto.DeskBookingResponse

		booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get desk booking")

			return res, fmt.Errorf("failed to get desk booking: %w", err)
		}

		if booking.ID == 0 {
			return res, failure.NotFound("desk booking not found") // nolint:wrapcheck
		}

		res.FromModel(booking)

		return res, nil
	})
}
