package booking

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"tourbook/infras/otel"
	"tourbook/internal/domains/booking/model/dto"
	"tourbook/internal/domains/booking/service"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	"tourbook/shared/validator"
	"tourbook/transport/http/middleware"
	"tourbook/transport/http/response"
)

type Handler struct {
	service service.Booking
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Booking, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Use(handler.auth.Auth)

		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetMyBookings)
	})
}

// writeError answers with err when it already carries a status, and with the
// generic message otherwise.
func writeError(writer http.ResponseWriter, err error, generic string) {
	if !failure.IsFailure(err) {
		response.WithUnexpectedError(writer, err, generic)

		return
	}

	response.WithError(writer, err)
}

// recoverWith turns a panic further down the pipeline into a 500 with message.
func recoverWith(writer http.ResponseWriter, message string) {
	if rec := recover(); rec != nil {
		response.WithUnexpectedError(writer, rec, message)
	}
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a booking
// @Description Create a booking for the authenticated user. The booking number and owner are assigned by the server.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 200 {object} dto.BookingResponse "Created booking with its tour"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()
	defer recoverWith(writer, constant.MessageFailedCreateBooking)

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		writeError(writer, err, constant.MessageFailedCreateBooking)

		return
	}

	scope.AddEvent("Booking " + booking.BookingNumber + " created by user " + booking.UserID)

	response.WithJSON(writer, http.StatusOK, booking)
}

// GetMyBookings lists the bookings of the authenticated user.
// @Summary Get my bookings
// @Description Retrieve the authenticated user's bookings with their tours, newest first.
// @Tags Booking
// @Produce json
// @Success 200 {array} dto.BookingResponse "User's bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()
	defer recoverWith(writer, constant.MessageFailedFetchBookings)

	bookings, err := handler.service.GetMine(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user bookings")

		writeError(writer, err, constant.MessageFailedFetchBookings)

		return
	}

	scope.SetAttribute("bookings.count", len(bookings))

	response.WithJSON(writer, http.StatusOK, bookings)
}
