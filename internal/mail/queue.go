package mail

import (
	"context"
	"time"

	"github.com/google/uuid"

	"orghub-backend/internal/logger"
)

type job struct {
	id      string
	msg     Message
	retries int
}

// Queue sends emails asynchronously through a bounded channel and a worker
// pool. Enqueue never blocks and never fails the caller: delivery is
// fire-and-forget, with retries and a final drop on exhaustion.
type Queue struct {
	sender     Sender
	jobs       chan job
	workers    int
	maxRetries int
}

func NewQueue(sender Sender, workers, queueSize, maxRetries int) *Queue {
	return &Queue{
		sender:     sender,
		jobs:       make(chan job, queueSize),
		workers:    workers,
		maxRetries: maxRetries,
	}
}

// Start launches the worker pool. Workers run until the context is done.
func (q *Queue) Start(ctx context.Context) {
	for i := 0; i < q.workers; i++ {
		go q.worker(ctx, i)
	}
}

// Enqueue hands a message to the pool. When the queue is full the message
// is dropped with a log line; correctness never depends on delivery.
func (q *Queue) Enqueue(msg Message) {
	j := job{id: uuid.NewString(), msg: msg}
	select {
	case q.jobs <- j:
	default:
		logger.Warn("Email queue full, dropping message", "to", msg.To, "subject", msg.Subject)
	}
}

func (q *Queue) worker(ctx context.Context, id int) {
	logger.Debug("Email worker started", "worker", id)
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Email worker stopping", "worker", id)
			return
		case j := <-q.jobs:
			q.process(j)
		}
	}
}

func (q *Queue) process(j job) {
	err := q.sender.Send(j.msg)
	if err == nil {
		return
	}
	logger.Error("Failed to send email", "job", j.id, "to", j.msg.To, "error", err)

	if j.retries >= q.maxRetries {
		logger.Error("Email dropped after retries", "job", j.id, "to", j.msg.To, "attempts", j.retries)
		return
	}

	// Quadratic backoff before requeueing.
	j.retries++
	backoff := time.Duration(j.retries*j.retries) * time.Second
	time.AfterFunc(backoff, func() {
		select {
		case q.jobs <- j:
		default:
			logger.Error("Email queue full on retry, dropping message", "job", j.id, "to", j.msg.To)
		}
	})
}
