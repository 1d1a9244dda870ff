package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"tourbook/config"
	"tourbook/di"
	"tourbook/shared/logger"
	"tourbook/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg.Server.Env)

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := di.InitializeWorker()

	err := consumer.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.Shutdown.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	consumer.Close(shutdownCtx)

	if err != nil {
		log.Fatal().Err(err).Msg("Booking confirmation consumer stopped")
	}
}
