package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"tourbook/infras/otel"
	"tourbook/infras/postgres"
	"tourbook/internal/domains/booking/model"
	"tourbook/shared"
	"tourbook/shared/constant"
	gDto "tourbook/shared/dto"
	gRepo "tourbook/shared/repository"
)

type Booking interface {
	GenerateNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, booking model.Booking) (model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

// GenerateNumber asks the store's numbering function for the next booking number.
func (r *repositoryImpl) GenerateNumber(ctx context.Context) (number string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GenerateNumber")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.CallFunction(ctx, model.FunctionGenerateBookingNumber, &number); err != nil {
		return constant.Empty, err
	}

	return number, nil
}

// Create inserts booking and returns the stored row with its tour.
func (r *repositoryImpl) Create(ctx context.Context, booking model.Booking) (model.Booking, error) {
	return r.InsertReturning(ctx, booking)
}

// ListByUser returns userID's bookings, newest first.
func (r *repositoryImpl) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	params, filter := listByUserQuery(userID)

	return r.GetAll(ctx, params, filter)
}

// listByUserQuery orders by creation time with the id breaking ties, so two
// listings with no create in between return the same sequence.
func listByUserQuery(userID string) (gDto.QueryParams, gDto.FilterGroup) {
	params := gDto.QueryParams{
		SortBy:   fmt.Sprintf("%s.%s", model.TableName, model.FieldCreatedAt),
		TieBreak: fmt.Sprintf("%s.%s", model.TableName, model.FieldID),
		SortDir:  gDto.SortDirDesc,
	}

	return params, shared.FilterByField(model.FieldUserID, userID, model.TableName)
}
