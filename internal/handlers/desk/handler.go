package desk

import (
	"deskbooker/infras/otel"
	"deskbooker/internal/domains/desk/model"
	"deskbooker/internal/domains/desk/service"
	"deskbooker/shared"
	"deskbooker/shared/constant"
	gDto "deskbooker/shared/dto"
	"deskbooker/shared/failure"
	"deskbooker/shared/logger"
	"deskbooker/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var sortableColumns = []string{model.FieldID, model.FieldName, model.FieldLocation}

type Handler struct {
	service service.Desk
	otel    otel.Otel
}

func New(service service.Desk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/desks", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetDesks)
		routerGroup.Get("/available", handler.GetAvailableDesks)
		routerGroup.Get("/{id}", handler.GetDeskByID)
	})
}

// GetDesks retrieves all desks based on query parameters.
// @Summary Get all desks
// @Tags Desk
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param location query string false "Filter by location"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetDesksResponse] "List of desks"
// @Failure 500 {object} response.Error
// @Router /v1/desks [get]
func (handler *Handler) GetDesks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDesks")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, sortableColumns...)

	query := r.URL.Query()
	filter := gDto.NewFilterGroup(gDto.FilterGroupOperatorAnd)

	for _, field := range []string{model.FieldName, model.FieldLocation} {
		if value := query.Get(field); value != "" {
			filter.Filters = append(filter.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorLike,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	if active := shared.ConvertStringToBool(query.Get(model.FieldActive)); active != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	desks, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get desks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, desks)
}

// GetAvailableDesks lists the desks still free on a date, in booking order.
// @Summary Get available desks
// @Tags Desk
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailableDesksResponse] "Available desks"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/desks/available [get]
func (handler *Handler) GetAvailableDesks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableDesks")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	if date == "" {
		response.WithError(w, failure.BadRequestFromString("date is required"))

		return
	}

	desks, err := handler.service.GetAvailable(ctx, date)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get available desks")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, desks)
}

// GetDeskByID retrieves a desk by its ID.
// @Summary Get a desk by ID
// @Tags Desk
// @Produce json
// @Param id path integer true "Desk ID"
// @Success 200 {object} response.Data[dto.DeskResponse] "Desk details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/desks/{id} [get]
func (handler *Handler) GetDeskByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeskByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be a number"))

		return
	}

	desk, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get desk by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, desk)
}
