package extractor

import (
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/pkg/dto/forms"
)

type metadataFormExtractor struct{}

// The legacy metadata form carries routing data only; the plan itself is the
// submission attachment.
func (metadataFormExtractor) Extract(submission models.RawSubmission) (models.CanonicalFields, error) {
	doc, err := forms.ParseMetadataForm(submission.FormData)
	if err != nil {
		return models.CanonicalFields{}, err
	}

	toArchive, toPhysician := receiverFlags(doc.Receiver)
	equipment := flag(doc.EquipmentNeeded)
	return models.CanonicalFields{
		ArchiveReference:    submission.ArchiveReference,
		SenderOrgID:         doc.Employer.OrgNumber,
		SenderOrgName:       doc.Employer.OrgName,
		SenderSystemName:    doc.SenderSystem.Name,
		SenderSystemVersion: doc.SenderSystem.Version,
		SubjectPersonID:     doc.PersonID,
		SendToArchive:       toArchive,
		SendToPhysician:     toPhysician,
		Assistance:          models.AssistanceFlags{Equipment: equipment},
		// Plans requesting equipment assistance do not use the standard
		// template and are skipped by routing.
		UsesNavTemplate: !equipment,
	}, nil
}
