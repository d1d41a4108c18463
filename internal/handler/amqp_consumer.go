package handler

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"

	"orbiont.com/meetmetrics/internal/core/domain"
	"orbiont.com/meetmetrics/internal/core/port"
)

type fetchJob struct {
	message domain.FetchRequestedMessage
}

type AMQPConsumer struct {
	pipelineService port.PipelineService
	validate        *validator.Validate
	jobQueue        chan fetchJob
	wg              sync.WaitGroup
	numWorkers      int
}

func NewAMQPConsumer(
	pipelineService port.PipelineService,
	validate *validator.Validate,
	numWorkers int,
	queueSize int,
) *AMQPConsumer {
	return &AMQPConsumer{
		pipelineService: pipelineService,
		validate:        validate,
		jobQueue:        make(chan fetchJob, queueSize),
		numWorkers:      numWorkers,
	}
}

// Start launches the worker pool. Call this before consuming messages.
func (c *AMQPConsumer) Start(ctx context.Context) {
	for i := 0; i < c.numWorkers; i++ {
		c.wg.Add(1)
		go c.worker(ctx, i)
	}
	log.Infof("Started %d fetch workers", c.numWorkers)
}

// Stop gracefully shuts down workers after draining the queue.
func (c *AMQPConsumer) Stop(ctx context.Context) {
	close(c.jobQueue)

	workersDone := make(chan struct{})
	go func() {
		c.wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		log.Info("All fetch workers stopped after drained.")
	case <-ctx.Done():
		log.Info("Fetch workers stopped before draining the queue.")
	}
}

func (c *AMQPConsumer) worker(ctx context.Context, workerID int) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			log.Warnf("[FetchWorker %d] Context cancelled, stopping", workerID)
			return
		case job, ok := <-c.jobQueue:
			if !ok {
				log.Infof("[FetchWorker %d] Queue closed, stopping", workerID)
				return
			}
			c.runJob(ctx, job)
		}
	}
}

func (c *AMQPConsumer) runJob(ctx context.Context, job fetchJob) {
	jobCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
	defer cancel()

	day := resolveDate(job.message.Date)

	count, err := c.pipelineService.ProcessDate(jobCtx, day)
	if err != nil {
		log.WithError(err).WithField("date", day.Format(dateLayout)).Error("Triggered fetch failed")
		return
	}

	log.WithFields(log.Fields{
		"date":        day.Format(dateLayout),
		"recordCount": count,
		"requestedBy": job.message.RequestedBy,
	}).Info("Triggered fetch completed")
}

// resolveDate maps an empty trigger date to yesterday, matching the
// midnight schedule.
func resolveDate(raw string) time.Time {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
	}
	day, _ := time.ParseInLocation(dateLayout, raw, time.UTC)
	return day
}

func (c *AMQPConsumer) Handle(ctx context.Context, delivery *amqp.Delivery) {
	var err error

	switch delivery.RoutingKey {
	case domain.RoutingKeyFetchRequested:
		err = c.handleFetchRequestedMessage(ctx, delivery)
	default:
		log.Errorf("unsupported routing key %s", delivery.RoutingKey)
	}

	if err != nil {
		delivery.Nack(false, false) // Send to a retry / dead-letter queue instead
		return
	}
	delivery.Ack(false)
}

func (c *AMQPConsumer) handleFetchRequestedMessage(_ context.Context, delivery *amqp.Delivery) error {
	var message domain.FetchRequestedMessage

	if err := json.Unmarshal(delivery.Body, &message); err != nil {
		log.Errorf("failed to unmarshal fetch request: %v", err)
		return err
	}

	if err := c.validate.Struct(message); err != nil {
		log.Errorf("fetch request validation failed: %v", err)
		return err
	}

	log.WithFields(log.Fields{
		"date":        message.Date,
		"requestedBy": message.RequestedBy,
	}).Info("Received fetch request")

	// Submit to worker pool (blocks if queue is full, providing backpressure)
	c.jobQueue <- fetchJob{message: message}

	return nil
}
