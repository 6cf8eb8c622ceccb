package dispatch

import (
	"context"

	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BenefitsDispatcher notifies the benefits case system that a plan has been
// archived for its subject.
type BenefitsDispatcher struct {
	channel contracts.BenefitsChannel
	log     *zap.Logger
}

func NewBenefitsDispatcher(channel contracts.BenefitsChannel, log *zap.Logger) *BenefitsDispatcher {
	return &BenefitsDispatcher{channel: channel, log: log}
}

func (d *BenefitsDispatcher) Dispatch(ctx context.Context, intent models.DispatchIntent) models.DispatchOutcome {
	fields := intent.Fields

	notification := &requests.BenefitsNotification{
		MessageID:           uuid.NewString(),
		ArchiveReference:    fields.ArchiveReference,
		SenderOrgID:         fields.SenderOrgID,
		SenderOrgName:       fields.SenderOrgName,
		SenderSystemName:    fields.SenderSystemName,
		SenderSystemVersion: fields.SenderSystemVersion,
		SubjectPersonID:     fields.SubjectPersonID,
		Assistance:          fields.Assistance,
	}

	if err := d.channel.Publish(ctx, notification); err != nil {
		d.log.Error("BenefitsDispatcher.Dispatch failed to publish notification",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Error(err))
		return models.OutcomeFailed(intent.Kind, err.Error())
	}
	return models.OutcomeSucceeded(intent.Kind)
}
