package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourbook/config"
	"tourbook/infras/email"
	emailMocks "tourbook/infras/email/mocks"
	"tourbook/infras/kafka"
	kafkaMocks "tourbook/infras/kafka/mocks"
	"tourbook/infras/otel/mocks"
	bookingDto "tourbook/internal/domains/booking/model/dto"
	"tourbook/internal/domains/notification/model"
	"tourbook/internal/domains/notification/service"
	"tourbook/shared/constant"
)

func strPtr(s string) *string { return &s }

func sampleBooking() bookingDto.BookingResponse {
	return bookingDto.BookingResponse{
		ID:            "b-1",
		BookingNumber: "BK-20260101-000001",
		UserID:        "U1",
		TourID:        "T1",
		ContactEmail:  strPtr("guest@example.com"),
		Status:        "pending",
		Tour:          bookingDto.TourResponse{ID: "T1", Title: "Komodo Island Hopping"},
	}
}

func TestNewConfirmation(t *testing.T) {
	withEmail := context.WithValue(context.Background(), constant.ContextKeyUserEmail, "u1@example.com")

	noContact := sampleBooking()
	noContact.ContactEmail = nil

	badContact := sampleBooking()
	badContact.ContactEmail = strPtr("not-an-email")

	tests := []struct {
		name          string
		ctx           context.Context
		booking       bookingDto.BookingResponse
		wantRecipient string
		wantErr       bool
	}{
		{name: "contact email wins", ctx: withEmail, booking: sampleBooking(), wantRecipient: "guest@example.com"},
		{name: "falls back to caller email", ctx: withEmail, booking: noContact, wantRecipient: "u1@example.com"},
		{name: "no recipient at all", ctx: context.Background(), booking: noContact, wantErr: true},
		{name: "malformed contact email", ctx: withEmail, booking: badContact, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := service.NewConfirmation(tt.ctx, tt.booking)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantRecipient, event.Recipient)
			assert.Equal(t, constant.EventTypeBookingConfirmation, event.Type)
			assert.Equal(t, "BK-20260101-000001", event.BookingNumber)
			assert.NotEmpty(t, event.EventID)
			assert.False(t, event.OccurredAt.IsZero())
			assert.Equal(t, tt.booking, event.Booking)
		})
	}
}

func TestConfirmationEmail(t *testing.T) {
	event := model.BookingConfirmation{
		BookingNumber: "BK-20260101-000001",
		Recipient:     "guest@example.com",
		Booking:       sampleBooking(),
	}

	msg := service.ConfirmationEmail(event)

	assert.Equal(t, email.Message{
		To:       "guest@example.com",
		Template: "booking-confirmation",
		Subject:  "Booking confirmed: BK-20260101-000001",
		Data:     sampleBooking(),
	}, msg)
}

func TestKafkaDispatcher_SendBookingConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	notifier := service.NewKafkaDispatcher(mockKafka, "booking.confirmation", 2*time.Second, mocks.NewOtel())

	tests := []struct {
		name      string
		booking   bookingDto.BookingResponse
		setupMock func()
		wantErr   bool
	}{
		{
			name:    "publishes keyed by booking number",
			booking: sampleBooking(),
			setupMock: func() {
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "booking.confirmation", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, msgs ...kafka.Message) error {
						assert.Len(t, msgs, 1)
						assert.Equal(t, "BK-20260101-000001", msgs[0].Key)

						event, ok := msgs[0].Value.(model.BookingConfirmation)
						assert.True(t, ok)
						assert.Equal(t, "guest@example.com", event.Recipient)

						return nil
					})
			},
		},
		{
			name:    "broker failure",
			booking: sampleBooking(),
			setupMock: func() {
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "booking.confirmation", gomock.Any()).
					Return(errors.New("leader not available"))
			},
			wantErr: true,
		},
		{
			name: "no recipient never reaches the broker",
			booking: func() bookingDto.BookingResponse {
				b := sampleBooking()
				b.ContactEmail = nil
				return b
			}(),
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := notifier.SendBookingConfirmation(context.Background(), tt.booking)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaDispatcher_PublishDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)

	tests := []struct {
		name    string
		timeout time.Duration
		want    time.Duration
	}{
		{name: "configured timeout", timeout: 2 * time.Second, want: 2 * time.Second},
		{name: "unset falls back to default", timeout: 0, want: 3 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := service.NewKafkaDispatcher(mockKafka, "booking.confirmation", tt.timeout, mocks.NewOtel())

			mockKafka.EXPECT().
				SendMessages(gomock.Any(), "booking.confirmation", gomock.Any()).
				DoAndReturn(func(ctx context.Context, _ string, _ ...kafka.Message) error {
					deadline, ok := ctx.Deadline()
					assert.True(t, ok)
					assert.WithinDuration(t, time.Now().Add(tt.want), deadline, time.Second)

					return nil
				})

			assert.NoError(t, notifier.SendBookingConfirmation(context.Background(), sampleBooking()))
		})
	}
}

func TestKafkaDispatcher_SlowBrokerReturnsWithinTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	notifier := service.NewKafkaDispatcher(mockKafka, "booking.confirmation", 50*time.Millisecond, mocks.NewOtel())

	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "booking.confirmation", gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ ...kafka.Message) error {
			<-ctx.Done()

			return ctx.Err()
		})

	start := time.Now()
	err := notifier.SendBookingConfirmation(context.Background(), sampleBooking())

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), time.Second)
}

func TestEmailNotifier_SendBookingConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEmail := emailMocks.NewMockClient(ctrl)
	notifier := service.NewEmailNotifier(mockEmail, mocks.NewOtel())

	mockEmail.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg email.Message) error {
			assert.Equal(t, "guest@example.com", msg.To)
			assert.Equal(t, "booking-confirmation", msg.Template)

			return nil
		})

	assert.NoError(t, notifier.SendBookingConfirmation(context.Background(), sampleBooking()))

	mockEmail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errors.New("email api responded 500"))

	assert.Error(t, notifier.SendBookingConfirmation(context.Background(), sampleBooking()))
}

func TestNew_SelectsTransport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockEmail := emailMocks.NewMockClient(ctrl)

	t.Run("kafka when brokers configured", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Kafka.Brokers = []string{"localhost:9092"}
		cfg.Kafka.Topic.BookingConfirmation = "booking.confirmation"

		mockKafka.EXPECT().SendMessages(gomock.Any(), "booking.confirmation", gomock.Any()).Return(nil)

		notifier := service.New(cfg, mockKafka, mockEmail, mocks.NewOtel())
		assert.NoError(t, notifier.SendBookingConfirmation(context.Background(), sampleBooking()))
	})

	t.Run("email api without brokers", func(t *testing.T) {
		cfg := &config.Config{}

		mockEmail.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

		notifier := service.New(cfg, mockKafka, mockEmail, mocks.NewOtel())
		assert.NoError(t, notifier.SendBookingConfirmation(context.Background(), sampleBooking()))
	})
}
