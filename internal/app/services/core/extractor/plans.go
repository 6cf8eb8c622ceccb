package extractor

import (
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/pkg/dto/forms"
)

func flag(v *bool) bool {
	if v == nil {
		return false
	}
	return *v
}

func receiverFlags(r *forms.ReceiverInfo) (toArchive, toPhysician bool) {
	if r == nil {
		return false, false
	}
	return flag(r.SendToCaseSystem), flag(r.SendToPhysician)
}

func assistanceFlags(a *forms.AssistanceNeeds) models.AssistanceFlags {
	if a == nil {
		return models.AssistanceFlags{}
	}
	return models.AssistanceFlags{
		Equipment:         flag(a.Equipment),
		Guidance:          flag(a.Guidance),
		DialogueMeeting:   flag(a.DialogueMeeting),
		WorkplaceMeasures: flag(a.WorkplaceMeasures),
	}
}

type plan2012Extractor struct{}

func (plan2012Extractor) Extract(submission models.RawSubmission) (models.CanonicalFields, error) {
	doc, err := forms.ParsePlan2012(submission.FormData)
	if err != nil {
		return models.CanonicalFields{}, err
	}

	content := doc.Content
	toArchive, toPhysician := receiverFlags(content.Receiver)
	return models.CanonicalFields{
		ArchiveReference:    submission.ArchiveReference,
		SenderOrgID:         content.Employer.OrgNumber,
		SenderOrgName:       content.Employer.OrgName,
		SenderSystemName:    content.SenderSystem.Name,
		SenderSystemVersion: content.SenderSystem.Version,
		SubjectPersonID:     content.Employee.PersonID,
		SubjectGivenName:    content.Employee.GivenName,
		SubjectFamilyName:   content.Employee.FamilyName,
		SendToArchive:       toArchive,
		SendToPhysician:     toPhysician,
		Assistance:          assistanceFlags(content.Assistance),
	}, nil
}

type plan2014Extractor struct{}

func (plan2014Extractor) Extract(submission models.RawSubmission) (models.CanonicalFields, error) {
	doc, err := forms.ParsePlan2014(submission.FormData)
	if err != nil {
		return models.CanonicalFields{}, err
	}

	content := doc.Content
	fields := models.CanonicalFields{
		ArchiveReference:    submission.ArchiveReference,
		SenderOrgID:         content.Employer.OrgNumber,
		SenderOrgName:       content.Employer.OrgName,
		SenderSystemName:    content.SenderSystem.Name,
		SenderSystemVersion: content.SenderSystem.Version,
		SubjectPersonID:     content.Employee.PersonID,
		SubjectGivenName:    content.Employee.GivenName,
		SubjectFamilyName:   content.Employee.FamilyName,
	}
	if content.Dispatch != nil {
		fields.SendToArchive, fields.SendToPhysician = receiverFlags(content.Dispatch.Receiver)
		fields.Assistance = assistanceFlags(content.Dispatch.Assistance)
	}
	return fields, nil
}

type plan2016Extractor struct{}

func (plan2016Extractor) Extract(submission models.RawSubmission) (models.CanonicalFields, error) {
	doc, err := forms.ParsePlan2016(submission.FormData)
	if err != nil {
		return models.CanonicalFields{}, err
	}

	content := doc.Content
	toArchive, toPhysician := receiverFlags(content.Receiver)
	return models.CanonicalFields{
		ArchiveReference:    submission.ArchiveReference,
		SenderOrgID:         content.Employer.OrgNumber,
		SenderOrgName:       content.Employer.OrgName,
		SenderSystemName:    content.SenderSystem.Name,
		SenderSystemVersion: content.SenderSystem.Version,
		SubjectPersonID:     content.Employee.PersonID,
		SubjectGivenName:    content.Employee.GivenName,
		SubjectFamilyName:   content.Employee.FamilyName,
		SendToArchive:       toArchive,
		SendToPhysician:     toPhysician,
		Assistance:          assistanceFlags(content.Assistance),
	}, nil
}
