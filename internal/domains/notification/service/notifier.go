package service

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=../mocks/notifier_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tourbook/config"
	"tourbook/infras/email"
	"tourbook/infras/kafka"
	"tourbook/infras/otel"
	bookingDto "tourbook/internal/domains/booking/model/dto"
	"tourbook/internal/domains/notification/model"
	"tourbook/shared"
	"tourbook/shared/constant"
	"tourbook/shared/timezone"
	"tourbook/shared/validator"
)

var ErrNoRecipient = errors.New("booking has no contact email and caller has no email")

// defaultPublishTimeout bounds a publish when none is configured.
const defaultPublishTimeout = 3 * time.Second

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, booking bookingDto.BookingResponse) error
}

// New returns the Kafka dispatcher when brokers are configured, otherwise a
// notifier that calls the email API inline.
func New(cfg *config.Config, kafkaClient kafka.Client, emailClient email.Client, otel otel.Otel) Notifier {
	if len(cfg.Kafka.Brokers) > 0 {
		log.Info().Str("topic", cfg.Kafka.Topic.BookingConfirmation).Msg("booking confirmations are dispatched through Kafka")

		timeout := time.Duration(cfg.Kafka.PublishTimeoutSeconds) * time.Second

		return NewKafkaDispatcher(kafkaClient, cfg.Kafka.Topic.BookingConfirmation, timeout, otel)
	}

	log.Info().Msg("booking confirmations are sent directly to the email api")

	return NewEmailNotifier(emailClient, otel)
}

// NewConfirmation builds the event for booking. The recipient is the booking's
// contact email, falling back to the caller's account email.
func NewConfirmation(ctx context.Context, booking bookingDto.BookingResponse) (model.BookingConfirmation, error) {
	recipient := shared.Deref(booking.ContactEmail)
	if recipient == "" {
		recipient, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	}

	event := model.BookingConfirmation{
		EventID:       uuid.NewString(),
		Type:          constant.EventTypeBookingConfirmation,
		OccurredAt:    timezone.Now(),
		BookingNumber: booking.BookingNumber,
		Recipient:     recipient,
		Booking:       booking,
	}

	if recipient == "" {
		return event, ErrNoRecipient
	}

	if err := validator.ValidateStruct(&event); err != nil {
		return event, fmt.Errorf("invalid booking confirmation: %w", err)
	}

	return event, nil
}

// ConfirmationEmail renders the email API request for event.
func ConfirmationEmail(event model.BookingConfirmation) email.Message {
	return email.Message{
		To:       event.Recipient,
		Template: constant.EmailTemplateBookingConfirm,
		Subject:  fmt.Sprintf("Booking confirmed: %s", event.BookingNumber),
		Data:     event.Booking,
	}
}

type kafkaDispatcher struct {
	client  kafka.Client
	topic   string
	timeout time.Duration
	otel    otel.Otel
}

// NewKafkaDispatcher publishes confirmations to topic. Each publish gets its own
// deadline of timeout so an unreachable broker cannot hold the create response
// for longer than that.
func NewKafkaDispatcher(client kafka.Client, topic string, timeout time.Duration, otel otel.Otel) Notifier {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}

	return &kafkaDispatcher{
		client:  client,
		topic:   topic,
		timeout: timeout,
		otel:    otel,
	}
}

func (d *kafkaDispatcher) SendBookingConfirmation(ctx context.Context, booking bookingDto.BookingResponse) (err error) {
	ctx, scope := d.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".SendBookingConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := NewConfirmation(ctx, booking)
	if err != nil {
		return err
	}

	scope.SetAttributes(map[string]any{
		"event.id":       event.EventID,
		"booking.number": event.BookingNumber,
	})

	publishCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err = d.client.SendMessages(publishCtx, d.topic, kafka.Message{
		Key:   event.BookingNumber,
		Value: event,
	})
	if err != nil {
		return fmt.Errorf("failed to publish booking confirmation: %w", err)
	}

	return nil
}

type emailNotifier struct {
	client email.Client
	otel   otel.Otel
}

func NewEmailNotifier(client email.Client, otel otel.Otel) Notifier {
	return &emailNotifier{
		client: client,
		otel:   otel,
	}
}

func (n *emailNotifier) SendBookingConfirmation(ctx context.Context, booking bookingDto.BookingResponse) (err error) {
	ctx, scope := n.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".SendBookingConfirmation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := NewConfirmation(ctx, booking)
	if err != nil {
		return err
	}

	if err = n.client.Send(ctx, ConfirmationEmail(event)); err != nil {
		return fmt.Errorf("failed to send booking confirmation: %w", err)
	}

	return nil
}
