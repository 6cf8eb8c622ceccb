package planqueue

import (
	"context"
	"fmt"
	"sync"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service owns the AMQP channel shared by the inbound submission queue and
// the two outbound notification queues. All three queues are durable;
// publishes wait for broker confirms.
type Service struct {
	ch       *amqp.Channel
	log      *zap.Logger
	queues   config.Queues
	confirms chan amqp.Confirmation
	mu       sync.Mutex
}

func NewService(conn *amqp.Connection, log *zap.Logger, queues config.Queues) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	for _, name := range []string{queues.Submission, queues.Benefits, queues.Physician} {
		_, err = ch.QueueDeclare(
			name,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,   // args
		)
		if err != nil {
			return nil, err
		}
	}

	prefetch := queues.Prefetch
	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:       ch,
		log:      log,
		queues:   queues,
		confirms: ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// FetchBatch retrieves up to max submissions using basic.get without
// auto-ack. An empty queue yields a shorter (possibly empty) batch, never an
// error.
func (s *Service) FetchBatch(ctx context.Context, max int) ([]contracts.QueuedSubmission, error) {
	if max <= 0 {
		max = 1
	}
	items := make([]contracts.QueuedSubmission, 0, max)

	for i := 0; i < max; i++ {
		d, ok, err := s.ch.Get(s.queues.Submission, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQFetchMessage(err, s.queues.Submission)
		}
		if !ok {
			break
		}
		var submission models.RawSubmission
		if err := json.Unmarshal(d.Body, &submission); err != nil {
			// Undecodable envelope: ack and drop so a poison message cannot
			// wedge the queue.
			s.log.Error("planqueue.FetchBatch dropping undecodable submission",
				zap.Uint64("delivery_tag", d.DeliveryTag),
				zap.Error(err))
			_ = d.Ack(false)
			continue
		}
		submission.SourceQueue = s.queues.Submission
		items = append(items, contracts.QueuedSubmission{DeliveryTag: d.DeliveryTag, Submission: submission})
	}

	return items, nil
}

// Ack acknowledges a submission by delivery tag.
func (s *Service) Ack(ctx context.Context, deliveryTag uint64) error {
	if err := s.ch.Ack(deliveryTag, false); err != nil {
		return exceptions.ErrRabbitMQFetchMessage(err, s.queues.Submission)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, queue string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}

	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), queue)
	}
	return nil
}
