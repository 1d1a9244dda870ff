package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"tourbook/infras/otel"
	"tourbook/internal/domains/booking/model/dto"
	"tourbook/internal/domains/booking/repository"
	notification "tourbook/internal/domains/notification/service"
	"tourbook/shared/constant"
	"tourbook/shared/failure"
	gRepo "tourbook/shared/repository"
)

type Booking interface {
	// Create runs number generation, insert and confirmation for the caller in ctx.
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	// GetMine lists the caller's bookings, newest first.
	GetMine(ctx context.Context) ([]dto.BookingResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	notifier notification.Notifier
	otel     otel.Otel
}

func New(repo repository.Booking, notifier notification.Notifier, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		otel:     otel,
	}
}

func userFromContext(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return constant.Empty, failure.ErrUnauthorized
	}

	return userID, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := userFromContext(ctx)
	if err != nil {
		return res, err
	}

	number, err := s.repo.GenerateNumber(ctx)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to generate booking number")

		return res, failure.Dependency(err)
	}

	if number == constant.Empty {
		log.Error().Str("user_id", userID).Msg("numbering function returned an empty booking number")

		return res, failure.InternalErrorFromString(constant.MessageFailedCreateBooking)
	}

	row, err := req.ToModel(userID, number)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	created, err := s.repo.Create(ctx, row)
	if errors.Is(err, gRepo.ErrNoRows) {
		log.Error().Str("booking_number", number).Msg("insert returned no row")

		return res, failure.InternalErrorFromString(constant.MessageFailedCreateBooking)
	}

	if err != nil {
		log.Error().Err(err).Str("booking_number", number).Msg("failed to create booking")

		return res, failure.Dependency(err)
	}

	res.FromModel(created)

	scope.SetAttribute("booking.number", res.BookingNumber)

	// The booking is committed at this point; confirmation is best effort.
	if notifyErr := s.notifier.SendBookingConfirmation(ctx, res); notifyErr != nil {
		log.Warn().Err(notifyErr).Str("booking_number", res.BookingNumber).Msg("failed to dispatch booking confirmation")
	}

	return res, nil
}

func (s *serviceImpl) GetMine(ctx context.Context) (res []dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, err := userFromContext(ctx)
	if err != nil {
		return nil, err
	}

	models, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get bookings")

		return nil, failure.Dependency(err)
	}

	return dto.FromModels(models), nil
}
