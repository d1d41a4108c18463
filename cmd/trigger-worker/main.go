package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/client"
	"orbiont.com/meetmetrics/internal/config"
	"orbiont.com/meetmetrics/internal/core/domain"
	"orbiont.com/meetmetrics/internal/core/service"
	"orbiont.com/meetmetrics/internal/handler"
	"orbiont.com/meetmetrics/internal/infrastructure/amqp"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.AMQPURL == "" {
		log.Fatal("AMQP_URL is required for the trigger worker")
	}

	ctx := context.Background()

	reportsHTTP, err := client.NewGoogleHTTPClient(ctx, cfg, client.ScopeReportsReadonly)
	if err != nil {
		log.Fatalf("Failed to create reports client: %v", err)
	}
	calendarHTTP, err := client.NewGoogleHTTPClient(ctx, cfg, client.ScopeCalendarReadonly)
	if err != nil {
		log.Fatalf("Failed to create calendar client: %v", err)
	}

	reportsClient := client.NewReportsClient(reportsHTTP, cfg.GoogleReportsURL)
	calendarClient := client.NewCalendarClient(calendarHTTP, cfg.GoogleCalendarURL)
	tinybirdClient := client.NewTinybirdClient(cfg)

	// Create AMQP client
	amqpClient, err := amqp.NewClient(cfg.AMQPURL)
	if err != nil {
		log.Fatalf("Failed to create AMQP client: %v", err)
	}
	defer amqpClient.Close()

	// Set up topology (exchanges, queues, bindings)
	topologyManager := amqp.NewTopologyManager(amqpClient)
	if err := topologyManager.Setup(); err != nil {
		log.Fatalf("Failed to setup AMQP topology: %v", err)
	}

	notifier := client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))

	enricher := service.NewEnricher(calendarClient, cfg.CalendarTimeout)
	pipelineService := service.NewPipeline(reportsClient, tinybirdClient, notifier, enricher, cfg.EnrichConcurrency)

	validate := validator.New()
	messageHandler := handler.NewAMQPConsumer(
		pipelineService,
		validate,
		cfg.TriggerWorkers,
		cfg.TriggerWorkers*2,
	)

	consumer := amqp.NewConsumer(amqpClient, messageHandler, cfg.TriggerWorkers)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messageHandler.Start(ctx)

	if err := consumer.Consume(ctx, domain.MeetTriggerQueue); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	log.Info("Trigger worker started successfully")
	log.Infof("Consuming messages from queue: %s", domain.MeetTriggerQueue)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down trigger worker...")

	// Let in-flight jobs drain before cancelling the worker context
	drainCtx, drainCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer drainCancel()
	messageHandler.Stop(drainCtx)
	cancel()
}
