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

// PhysicianDispatcher attempts electronic delivery to the subject's
// registered physician. The chain is: physician association, office identity
// in the address registry, transport partner capabilities for the office,
// and a capability matching the office's registry id. Any miss or lookup
// failure degrades to a physical letter; only the final publish itself can
// fail the dispatch.
type PhysicianDispatcher struct {
	physicians contracts.PhysicianRegistryClient
	addresses  contracts.AddressRegistryClient
	partners   contracts.PartnerRegistryClient
	channel    contracts.PhysicianChannel
	letters    *LetterDispatcher
	log        *zap.Logger
}

func NewPhysicianDispatcher(
	physicians contracts.PhysicianRegistryClient,
	addresses contracts.AddressRegistryClient,
	partners contracts.PartnerRegistryClient,
	channel contracts.PhysicianChannel,
	letters *LetterDispatcher,
	log *zap.Logger,
) *PhysicianDispatcher {
	return &PhysicianDispatcher{
		physicians: physicians,
		addresses:  addresses,
		partners:   partners,
		channel:    channel,
		letters:    letters,
		log:        log,
	}
}

func (d *PhysicianDispatcher) Dispatch(ctx context.Context, intent models.DispatchIntent) models.DispatchOutcome {
	fields := intent.Fields

	association, err := d.physicians.GetPhysicianAssociation(ctx, fields.SubjectPersonID)
	if err != nil {
		d.log.Warn("PhysicianDispatcher.Dispatch physician lookup failed, falling back to letter",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Error(err))
		return d.letters.sendToSenderOrg(ctx, intent.Kind, fields)
	}
	if association == nil {
		// Without an association there is no office address either, so the
		// letter goes to the sender organization.
		d.log.Info("PhysicianDispatcher.Dispatch subject has no registered physician, falling back to letter",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference))
		return d.letters.sendToSenderOrg(ctx, intent.Kind, fields)
	}

	identity, err := d.addresses.GetOrganizationIdentity(ctx, association.RegistryID)
	if err != nil || identity == nil {
		d.log.Warn("PhysicianDispatcher.Dispatch office identity unresolved, falling back to letter",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Int("physician_registry_id", association.RegistryID),
			zap.Error(err))
		return d.letters.sendToOffice(ctx, intent.Kind, fields, association)
	}

	capabilities, err := d.partners.GetPartnerCapabilities(ctx, identity.OrgNumber)
	if err != nil {
		d.log.Warn("PhysicianDispatcher.Dispatch partner capability lookup failed, falling back to letter",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Error(err))
		return d.letters.sendToOffice(ctx, intent.Kind, fields, association)
	}

	partner, ok := matchCapability(capabilities, identity.RegistryID)
	if !ok {
		d.log.Info("PhysicianDispatcher.Dispatch office has no matching transport capability, falling back to letter",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Int("office_registry_id", identity.RegistryID))
		return d.letters.sendToOffice(ctx, intent.Kind, fields, association)
	}

	notification := &requests.PhysicianNotification{
		MessageID:           uuid.NewString(),
		ArchiveReference:    fields.ArchiveReference,
		SenderOrgID:         fields.SenderOrgID,
		SenderOrgName:       fields.SenderOrgName,
		SubjectPersonID:     fields.SubjectPersonID,
		SubjectGivenName:    fields.SubjectGivenName,
		SubjectFamilyName:   fields.SubjectFamilyName,
		PhysicianName:       association.FullName(),
		PhysicianNationalID: association.NationalID,
		PhysicianRegistryID: association.RegistryID,
		OfficeOrgNumber:     identity.OrgNumber,
		OfficeName:          identity.Name,
		TransportPartnerID:  partner.PartnerID,
	}
	if err := d.channel.Publish(ctx, notification); err != nil {
		d.log.Error("PhysicianDispatcher.Dispatch failed to publish dialog notification",
			zap.String(constvars.LoggingArchiveReferenceKey, fields.ArchiveReference),
			zap.Error(err))
		return models.OutcomeFailed(intent.Kind, err.Error())
	}
	return models.OutcomeSucceeded(intent.Kind)
}

// matchCapability picks the transport partner registered for the office's
// own registry id; capabilities registered for other ids under the same
// organization number do not qualify.
func matchCapability(capabilities []models.PartnerCapability, registryID int) (models.PartnerCapability, bool) {
	for _, capability := range capabilities {
		if capability.RegistryID == registryID {
			return capability, true
		}
	}
	return models.PartnerCapability{}, false
}
