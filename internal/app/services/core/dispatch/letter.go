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

// LetterDispatcher produces a physical letter when no electronic path is
// available. Letters addressed to the physician's office resolve the office
// through the physician registry; everything else goes to the sender
// organization's registered address. After production the benefits system is
// notified that a letter went out.
type LetterDispatcher struct {
	orgs       contracts.OrganizationRegistryClient
	physicians contracts.PhysicianRegistryClient
	letters    contracts.DocumentProductionClient
	benefits   contracts.BenefitsChannel
	content    string
	log        *zap.Logger
}

func NewLetterDispatcher(
	orgs contracts.OrganizationRegistryClient,
	physicians contracts.PhysicianRegistryClient,
	letters contracts.DocumentProductionClient,
	benefits contracts.BenefitsChannel,
	content string,
	log *zap.Logger,
) *LetterDispatcher {
	return &LetterDispatcher{
		orgs:       orgs,
		physicians: physicians,
		letters:    letters,
		benefits:   benefits,
		content:    content,
		log:        log,
	}
}

func (d *LetterDispatcher) Dispatch(ctx context.Context, intent models.DispatchIntent) models.DispatchOutcome {
	fields := intent.Fields

	if intent.LetterTarget == models.LetterTargetPhysicianOffice {
		association, err := d.physicians.GetPhysicianAssociation(ctx, fields.SubjectPersonID)
		if err != nil {
			d.log.Warn("LetterDispatcher.Dispatch physician lookup failed, addressing sender organization",
				zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
				zap.Error(err))
		}
		if association != nil {
			return d.sendToOffice(ctx, intent.Kind, fields, association)
		}
	}

	return d.sendToSenderOrg(ctx, intent.Kind, fields)
}

// sendToOffice addresses the letter with the office details carried by the
// physician association.
func (d *LetterDispatcher) sendToOffice(ctx context.Context, kind models.IntentKind, fields models.CanonicalFields, association *models.PhysicianAssociation) models.DispatchOutcome {
	return d.produce(ctx, kind, fields, &requests.LetterRequest{
		ArchiveReference:  fields.ArchiveReference,
		SenderOrgID:       fields.SenderOrgID,
		SenderOrgName:     fields.SenderOrgName,
		ReceiverOrgNumber: association.OfficeOrgNumber,
		ReceiverOrgName:   association.OfficeName,
		PostalCode:        association.OfficePostalCode,
		City:              association.OfficeCity,
		Content:           d.content,
	})
}

// sendToSenderOrg resolves the sender organization's mailing address through
// the registry's two-call chain: record by number, then summary by name.
func (d *LetterDispatcher) sendToSenderOrg(ctx context.Context, kind models.IntentKind, fields models.CanonicalFields) models.DispatchOutcome {
	name, err := d.orgs.GetOrganizationName(ctx, fields.SenderOrgID)
	if err != nil {
		d.log.Error("LetterDispatcher.sendToSenderOrg organization lookup failed",
			zap.String(constvars.LoggingSenderOrgIDKey, fields.SenderOrgID),
			zap.Error(err))
		return models.OutcomeFailed(kind, err.Error())
	}

	address, err := d.orgs.FindOrganizationSummary(ctx, name)
	if err != nil {
		d.log.Error("LetterDispatcher.sendToSenderOrg organization summary lookup failed",
			zap.String(constvars.LoggingSenderOrgIDKey, fields.SenderOrgID),
			zap.Error(err))
		return models.OutcomeFailed(kind, err.Error())
	}

	return d.produce(ctx, kind, fields, &requests.LetterRequest{
		ArchiveReference:  fields.ArchiveReference,
		SenderOrgID:       fields.SenderOrgID,
		SenderOrgName:     fields.SenderOrgName,
		ReceiverOrgNumber: address.OrgNumber,
		ReceiverOrgName:   address.Name,
		PostalCode:        address.PostalCode,
		City:              address.City,
		Content:           d.content,
	})
}

func (d *LetterDispatcher) produce(ctx context.Context, kind models.IntentKind, fields models.CanonicalFields, letter *requests.LetterRequest) models.DispatchOutcome {
	if err := d.letters.ProduceLetter(ctx, letter); err != nil {
		d.log.Error("LetterDispatcher.produce letter production failed",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Error(err))
		return models.OutcomeFailed(kind, err.Error())
	}

	d.log.Info("LetterDispatcher.produce letter sent",
		zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
		zap.String("receiver_org_number", letter.ReceiverOrgNumber))

	notification := &requests.BenefitsNotification{
		MessageID:           uuid.NewString(),
		ArchiveReference:    fields.ArchiveReference,
		SenderOrgID:         fields.SenderOrgID,
		SenderOrgName:       fields.SenderOrgName,
		SenderSystemName:    fields.SenderSystemName,
		SenderSystemVersion: fields.SenderSystemVersion,
		SubjectPersonID:     fields.SubjectPersonID,
		Assistance:          fields.Assistance,
		LetterSent:          true,
	}
	if err := d.benefits.Publish(ctx, notification); err != nil {
		d.log.Error("LetterDispatcher.produce failed to publish letter-sent notification",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Error(err))
		return models.OutcomeFailed(kind, err.Error())
	}

	return models.OutcomeSucceeded(kind)
}
