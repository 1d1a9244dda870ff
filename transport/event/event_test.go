package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"tourbook/config"
	kafkaMocks "tourbook/infras/kafka/mocks"
	otelMocks "tourbook/infras/otel/mocks"
	notificationMocks "tourbook/internal/domains/notification/mocks"
	"tourbook/transport/event"
)

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	worker := notificationMocks.NewMockWorker(ctrl)

	tests := []struct {
		name      string
		brokers   []string
		setupMock func()
		wantErr   error
	}{
		{
			name:      "no brokers",
			setupMock: func() {},
			wantErr:   event.ErrNoBrokers,
		},
		{
			name:    "consumes the confirmation topic",
			brokers: []string{"localhost:9092"},
			setupMock: func() {
				client.EXPECT().Consume(gomock.Any(), "tourbook-notifier", "booking.confirmation", gomock.Any()).Return(nil)
			},
		},
		{
			name:    "reader failure",
			brokers: []string{"localhost:9092"},
			setupMock: func() {
				client.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))
			},
			wantErr: errors.New("broker unreachable"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			cfg := &config.Config{}
			cfg.Kafka.Brokers = tt.brokers
			cfg.Kafka.ConsumerGroup = "tourbook-notifier"
			cfg.Kafka.Topic.BookingConfirmation = "booking.confirmation"

			err := event.New(cfg, client, worker, otelMocks.NewOtel()).Run(context.Background())

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestConsumer_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := kafkaMocks.NewMockClient(ctrl)
	client.EXPECT().Close().Return(nil)

	event.New(&config.Config{}, client, notificationMocks.NewMockWorker(ctrl), otelMocks.NewOtel()).Close(context.Background())
}
