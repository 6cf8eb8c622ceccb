package planqueue

import (
	"context"

	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type benefitsChannel struct {
	svc *Service
}

func NewBenefitsChannel(svc *Service) contracts.BenefitsChannel {
	return &benefitsChannel{svc: svc}
}

func (c *benefitsChannel) Publish(ctx context.Context, notification *requests.BenefitsNotification) error {
	err := c.svc.publish(ctx, c.svc.queues.Benefits, notification)
	if err != nil {
		return err
	}
	c.svc.log.Info("benefitsChannel.Publish message confirmed",
		zap.String(constvars.LoggingQueueKey, c.svc.queues.Benefits),
		zap.String(constvars.LoggingMessageIDKey, notification.MessageID),
		zap.String(constvars.LoggingArchiveReferenceKey, notification.ArchiveReference),
	)
	return nil
}

type physicianChannel struct {
	svc *Service
}

func NewPhysicianChannel(svc *Service) contracts.PhysicianChannel {
	return &physicianChannel{svc: svc}
}

func (c *physicianChannel) Publish(ctx context.Context, notification *requests.PhysicianNotification) error {
	err := c.svc.publish(ctx, c.svc.queues.Physician, notification)
	if err != nil {
		return err
	}
	c.svc.log.Info("physicianChannel.Publish message confirmed",
		zap.String(constvars.LoggingQueueKey, c.svc.queues.Physician),
		zap.String(constvars.LoggingMessageIDKey, notification.MessageID),
		zap.String(constvars.LoggingArchiveReferenceKey, notification.ArchiveReference),
	)
	return nil
}
