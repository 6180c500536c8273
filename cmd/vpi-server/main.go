package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/tuanvumaihuynh/parts-inventory/internal/config"
	"github.com/tuanvumaihuynh/parts-inventory/internal/event"
	"github.com/tuanvumaihuynh/parts-inventory/internal/http"
	"github.com/tuanvumaihuynh/parts-inventory/internal/log"
	"github.com/tuanvumaihuynh/parts-inventory/internal/model"
	"github.com/tuanvumaihuynh/parts-inventory/internal/repository"
	"github.com/tuanvumaihuynh/parts-inventory/internal/service"
	"github.com/tuanvumaihuynh/parts-inventory/internal/storage/mq"
	"github.com/tuanvumaihuynh/parts-inventory/internal/telemetry"
	"github.com/tuanvumaihuynh/parts-inventory/pkg/cmdutil"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("error running parts inventory server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	time.Local = time.UTC

	type Config struct {
		Log       config.Log
		HTTP      config.HTTP
		Cors      config.Cors
		Inventory config.Inventory
		Kafka     config.Kafka
		Otel      config.Otel
	}
	cfg, err := config.New[Config]()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	cleanupTracer, err := telemetry.InitTracer(ctx, cfg.Otel)
	if err != nil {
		return fmt.Errorf("error initializing tracer: %w", err)
	}
	defer func() {
		if err := cleanupTracer(ctx); err != nil {
			logger.ErrorContext(ctx, "error cleaning up tracer", slog.Any("error", err))
		}
	}()

	var seed []model.Part
	if cfg.Inventory.SeedExampleParts {
		seed = repository.ExampleParts()
	}
	partRepository, err := repository.NewPartRepository(seed...)
	if err != nil {
		return fmt.Errorf("error creating part repository: %w", err)
	}

	serviceOpts := []service.Option{
		service.WithDefaultMinStockLevel(cfg.Inventory.DefaultMinStockLevel),
	}

	var kafkaConsumer *mq.KafkaConsumer
	if cfg.Kafka.Enabled {
		kafkaProducer, err := mq.NewKafkaProducer(ctx, cfg.Kafka)
		if err != nil {
			return fmt.Errorf("error creating kafka producer: %w", err)
		}
		defer kafkaProducer.Close()

		kafkaConsumer, err = mq.NewKafkaConsumer(ctx, cfg.Kafka, logger)
		if err != nil {
			return fmt.Errorf("error creating kafka consumer: %w", err)
		}
		defer kafkaConsumer.Close()

		serviceOpts = append(serviceOpts,
			service.WithPublisher(event.NewMQPublisher(kafkaProducer, cfg.Kafka.AlertTopic)))
	}

	partService := service.NewPartService(logger, partRepository, serviceOpts...)

	httpService, err := http.New(cfg.HTTP, cfg.Cors, logger, partService)
	if err != nil {
		return fmt.Errorf("error creating http service: %w", err)
	}

	interruptChan := cmdutil.InterruptChan()
	errChan := make(chan error, 2)
	var wg sync.WaitGroup

	if kafkaConsumer != nil {
		svc := event.New(logger, kafkaConsumer, cfg.Kafka.AlertTopic)
		cleanup, err := svc.Run(ctx)
		if err != nil {
			return fmt.Errorf("error running event service: %w", err)
		}
		logger.InfoContext(ctx, "event service started", slog.String("topic", cfg.Kafka.AlertTopic))

		wg.Go(func() {
			<-interruptChan

			logger.InfoContext(ctx, "event service is shutting down")
			cleanup()

			logger.InfoContext(ctx, "event service is stopped")
		})
	}

	cleanupHTTP, err := httpService.Run(ctx)
	if err != nil {
		return fmt.Errorf("error running http service: %w", err)
	}
	logger.InfoContext(ctx, "http service started", slog.String("address", httpService.Addr()))

	wg.Go(func() {
		<-interruptChan

		logger.InfoContext(ctx, "http service is shutting down")
		if err := cleanupHTTP(ctx); err != nil {
			errChan <- fmt.Errorf("error shutting down http service: %w", err)
		}

		logger.InfoContext(ctx, "http service is stopped")
	})

	wg.Wait()
	close(errChan)

	return <-errChan
}
