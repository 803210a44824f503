// Command eventtail prints every marketplace domain event published to the
// configured RabbitMQ exchange, one line per event.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"marketplace-api/config"
	"marketplace-api/internal/infrastructure/mq"
	"marketplace-api/pkg/rmqconsumer"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	mqCfg, err := config.LoadMQ(ctx)
	if err != nil {
		logger.Fatal("config error", zap.Error(err))
	}
	dsn, err := config.Config{MQ: mqCfg}.AMQPDSN()
	if err != nil {
		logger.Fatal("RabbitMQ config error", zap.Error(err))
	}

	consumer := rmqconsumer.New(mqCfg, logger, os.Stdout)
	if err = consumer.Connect(dsn); err != nil {
		logger.Fatal("failed to connect rabbitMQ consumer", zap.Error(err))
	}
	defer consumer.Close()

	if err = consumer.Init(mq.BindingKeys); err != nil {
		logger.Fatal("failed to init rabbitMQ consumer", zap.Error(err))
	}

	if err = consumer.DeliveryWorker(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("event tail stopped", zap.Error(err))
		consumer.Close()
		os.Exit(1)
	}
}
