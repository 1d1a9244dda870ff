package service

//go:generate go run go.uber.org/mock/mockgen -source=./worker.go -destination=../mocks/worker_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"tourbook/config"
	"tourbook/infras/email"
	"tourbook/infras/kafka"
	"tourbook/infras/otel"
	"tourbook/infras/s3"
	"tourbook/internal/domains/notification/model"
	"tourbook/shared/constant"
	"tourbook/shared/validator"
)

// Worker delivers booking confirmations consumed from Kafka.
type Worker interface {
	Handle(ctx context.Context, msg kafkaGo.Message) error
}

type workerImpl struct {
	email  email.Client
	s3     s3.S3
	bucket string
	otel   otel.Otel
}

func NewWorker(cfg *config.Config, emailClient email.Client, s3Client s3.S3, otel otel.Otel) Worker {
	return &workerImpl{
		email:  emailClient,
		s3:     s3Client,
		bucket: cfg.External.S3.BucketName,
		otel:   otel,
	}
}

// Handle sends the confirmation email for one event and archives it. Undecodable
// or invalid events and delivery failures are logged and skipped so one bad
// message does not stall the partition.
func (w *workerImpl) Handle(ctx context.Context, msg kafkaGo.Message) error {
	ctx, scope := w.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".HandleBookingConfirmation")
	defer scope.End()

	event, err := kafka.DecodeKafkaMessage[model.BookingConfirmation](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Int64("offset", msg.Offset).Msg("failed to decode booking confirmation, skipping")
		scope.TraceError(err)

		return nil
	}

	if err := validator.ValidateStruct(&event); err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("invalid booking confirmation, skipping")
		scope.TraceError(err)

		return nil
	}

	scope.SetAttributes(map[string]any{
		"event.id":       event.EventID,
		"booking.number": event.BookingNumber,
	})

	message := ConfirmationEmail(event)

	if err := w.email.Send(ctx, message); err != nil {
		log.Error().Err(err).Str("booking_number", event.BookingNumber).Msg("failed to send booking confirmation email")
		scope.TraceError(err)

		return nil
	}

	log.Info().Str("booking_number", event.BookingNumber).Str("event_id", event.EventID).Msg("booking confirmation sent")

	w.archive(ctx, event.BookingNumber, message)

	return nil
}

func (w *workerImpl) archive(ctx context.Context, bookingNumber string, message email.Message) {
	if w.bucket == "" {
		return
	}

	body, err := json.Marshal(message)
	if err != nil {
		log.Error().Err(err).Str("booking_number", bookingNumber).Msg("failed to marshal confirmation for archive")

		return
	}

	key, err := w.s3.UploadFileBytes(ctx, w.bucket, constant.S3PrefixConfirmations, fmt.Sprintf("%s.json", bookingNumber), constant.ContentTypeJSON, body)
	if err != nil {
		log.Error().Err(err).Str("booking_number", bookingNumber).Msg("failed to archive booking confirmation")

		return
	}

	log.Debug().Str("key", key).Msg("booking confirmation archived")
}
