package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deskbooker/config"
	"deskbooker/infras/otel"
	"deskbooker/internal/domains/desk/model"
	"deskbooker/internal/domains/desk/model/dto"
	"deskbooker/internal/domains/desk/repository"
	"deskbooker/shared"
	"deskbooker/shared/cache"
	"deskbooker/shared/constant"
	gDto "deskbooker/shared/dto"
	"deskbooker/shared/failure"
	"deskbooker/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetDesk    = "desk:get"
	cacheGetAllDesk = "desk:gets"
	cacheCountDesk  = "desk:count"
)

type Desk interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDesksResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int) (dto.DeskResponse, error)
	GetAvailable(ctx context.Context, date string) (dto.AvailableDesksResponse, error)
}

type serviceImpl struct {
	repo  repository.Desk
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Desk, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Desk {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDesksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllDesk, req, filter)

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (dto.GetDesksResponse, error) {
		var res dto.GetDesksResponse

		total, err := s.Count(ctx, req, filter)
		if err != nil {
			return res, err
		}

		models, err := s.repo.GetAll(ctx, req, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get desks")

			return res, fmt.Errorf("failed to get desks: %w", err)
		}

		res.FromModels(models, total, req.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountDesk, req, filter)

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (int, error) {
		count, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count desks")

			return 0, fmt.Errorf("failed to count desks: %w", err)
		}

		return count, nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, id int) (res dto.DeskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetDesk, id)

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (dto.DeskResponse, error) {
		var res dto.DeskResponse

		desk, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get desk")

			return res, fmt.Errorf("failed to get desk: %w", err)
		}

		if desk.ID == 0 {
			return res, failure.NotFound("desk not found") // nolint:wrapcheck
		}

		res.FromModel(desk)

		return res, nil
	})
}

// GetAvailable is never cached, every booking changes its answer.
func (s *serviceImpl) GetAvailable(ctx context.Context, date string) (res dto.AvailableDesksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".desk.GetAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day, err := timezone.ParseDate(date)
	if err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	desks, err := s.repo.GetAvailableDesks(ctx, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available desks")

		return res, fmt.Errorf("failed to get available desks: %w", err)
	}

	res.FromModels(timezone.FormatDate(day), desks)

	return res, nil
}
