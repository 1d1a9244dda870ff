package event

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"tourbook/config"
	"tourbook/infras/kafka"
	"tourbook/infras/otel"
	notification "tourbook/internal/domains/notification/service"
)

var ErrNoBrokers = errors.New("no kafka brokers configured")

// Consumer feeds booking confirmation events to the notification worker.
type Consumer struct {
	Config *config.Config
	Kafka  kafka.Client
	Worker notification.Worker
	Otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, worker notification.Worker, ot otel.Otel) *Consumer {
	return &Consumer{
		Config: cfg,
		Kafka:  client,
		Worker: worker,
		Otel:   ot,
	}
}

// Run blocks until ctx is cancelled or the reader fails.
func (c *Consumer) Run(ctx context.Context) error {
	if len(c.Config.Kafka.Brokers) == 0 {
		return ErrNoBrokers
	}

	topic := c.Config.Kafka.Topic.BookingConfirmation
	group := c.Config.Kafka.ConsumerGroup

	log.Info().Str("topic", topic).Str("group", group).Msg("Starting booking confirmation consumer.")

	if err := c.Kafka.Consume(ctx, group, topic, c.Worker.Handle); err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Msg("Booking confirmation consumer stopped.")

	return nil
}

// Close releases the kafka connections and flushes traces.
func (c *Consumer) Close(ctx context.Context) {
	if err := c.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close kafka client")
	}

	if err := c.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
