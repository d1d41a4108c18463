package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/client"
	"orbiont.com/meetmetrics/internal/config"
	"orbiont.com/meetmetrics/internal/core/port"
	"orbiont.com/meetmetrics/internal/core/service"
	"orbiont.com/meetmetrics/internal/infrastructure/amqp"
	"orbiont.com/meetmetrics/internal/server"
)

func main() {
	// Initialize logger
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Google clients share a service-account token source; the admin
	// scopes differ per API so each gets its own HTTP client.
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
	directoryClient := client.NewPeopleForceClient(cfg)

	// The ingestion notification is optional: without a broker the
	// pipeline still pushes batches, it just tells nobody.
	var notifier port.NotifierClient
	if cfg.AMQPURL != "" {
		amqpClient, err := amqp.NewClient(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to create AMQP client: %v", err)
		}
		defer amqpClient.Close()

		topologyManager := amqp.NewTopologyManager(amqpClient)
		if err := topologyManager.Setup(); err != nil {
			log.Fatalf("Failed to setup AMQP topology: %v", err)
		}

		notifier = client.NewAMQPNotifier(amqp.NewPublisher(amqpClient))
	}

	enricher := service.NewEnricher(calendarClient, cfg.CalendarTimeout)
	pipelineService := service.NewPipeline(reportsClient, tinybirdClient, notifier, enricher, cfg.EnrichConcurrency)
	employeeSyncService := service.NewEmployeeSync(directoryClient, tinybirdClient)

	httpServer := server.NewHTTPServer(pipelineService, employeeSyncService)

	go func() {
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	log.Info("Meet metrics API started successfully")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down meet metrics API...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
