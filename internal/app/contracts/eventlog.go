package contracts

import (
	"context"

	"followupplan-service/internal/app/models"
)

// QueuedSubmission pairs a fetched submission with its delivery tag so the
// worker can acknowledge it after processing.
type QueuedSubmission struct {
	DeliveryTag uint64
	Submission  models.RawSubmission
}

// EventLogClient is the inbound side of the pipeline: a non-blocking batch
// fetch with explicit acknowledgement, at-least-once.
type EventLogClient interface {
	FetchBatch(ctx context.Context, max int) ([]QueuedSubmission, error)
	Ack(ctx context.Context, deliveryTag uint64) error
}
