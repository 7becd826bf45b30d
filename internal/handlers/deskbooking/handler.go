package deskbooking

import (
	"deskbooker/infras/otel"
	"deskbooker/internal/domains/deskbooking/model"
	"deskbooker/internal/domains/deskbooking/model/dto"
	"deskbooker/internal/domains/deskbooking/processor"
	"deskbooker/internal/domains/deskbooking/service"
	"deskbooker/shared/constant"
	gDto "deskbooker/shared/dto"
	"deskbooker/shared/failure"
	"deskbooker/shared/logger"
	"deskbooker/shared/validator"
	"deskbooker/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var sortableColumns = []string{model.FieldID, model.FieldDate, model.FieldEmail, constant.FieldCreatedAt}

type Handler struct {
	processor processor.Processor
	service   service.DeskBooking
	otel      otel.Otel
}

func New(processor processor.Processor, service service.DeskBooking, otel otel.Otel) Handler {
	return Handler{
		processor: processor,
		service:   service,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/desk-bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookDesk)
		routerGroup.Get("/", handler.GetDeskBookings)
		routerGroup.Get("/{id}", handler.GetDeskBookingByID)
	})
}

// BookDesk books the first free desk for the requested date.
// @Summary Book a desk
// @Description Book a desk for one calendar date. When every desk is taken the result code is no_desk_available.
// @Tags DeskBooking
// @Accept json
// @Produce json
// @Param request body dto.CreateDeskBookingRequest true "Booking request"
// @Success 201 {object} response.Data[dto.DeskBookingResultResponse] "Desk booked"
// @Success 200 {object} response.Data[dto.DeskBookingResultResponse] "No desk available"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/desk-bookings [post]
func (handler *Handler) BookDesk(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookDesk")
	defer scope.End()

	log := logger.FromContext(ctx)

	var req dto.CreateDeskBookingRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	bookingRequest, err := req.ToModel()
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	result, err := handler.processor.BookDesk(ctx, &bookingRequest)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book desk")

		response.WithError(w, err)

		return
	}

	res := dto.DeskBookingResultResponse{}
	res.FromModel(result)

	if result.Code != model.DeskBookingResultCodeSuccess {
		scope.AddEvent("No desk available on " + res.Date)
		response.WithJSON(w, http.StatusOK, res)

		return
	}

	scope.AddEvent("Desk booked successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetDeskBookings lists bookings.
// @Summary Get all desk bookings
// @Tags DeskBooking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param desk_id query integer false "Filter by desk"
// @Param email query string false "Filter by email"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetDeskBookingsResponse] "List of desk bookings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/desk-bookings [get]
func (handler *Handler) GetDeskBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeskBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true, sortableColumns...)

	query := r.URL.Query()

	if err := validator.ValidateVar(query.Get(model.FieldDeskID), "omitempty,number"); err != nil {
		response.WithError(w, err)

		return
	}

	if err := validator.ValidateVar(query.Get(constant.RequestParamDate), "omitempty,calendardate"); err != nil {
		response.WithError(w, err)

		return
	}

	filter := gDto.NewFilterGroup(gDto.FilterGroupOperatorAnd)
	filter.AddIfPresent(model.TableName, model.FieldDeskID, query.Get(model.FieldDeskID))
	filter.AddIfPresent(model.TableName, model.FieldEmail, query.Get(model.FieldEmail))
	filter.AddIfPresent(model.TableName, model.FieldDate, query.Get(constant.RequestParamDate))

	bookings, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get desk bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetDeskBookingByID retrieves a booking by its ID.
// @Summary Get a desk booking by ID
// @Tags DeskBooking
// @Produce json
// @Param id path integer true "Desk booking ID"
// @Success 200 {object} response.Data[dto.DeskBookingResponse] "Desk booking details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/desk-bookings/{id} [get]
func (handler *Handler) GetDeskBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDeskBookingByID")
	defer scope.End()

	id, err := strconv.Atoi(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("id must be a number"))

		return
	}

	booking, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		logger.FromContext(ctx).Error().Err(err).Msg("failed to get desk booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}
