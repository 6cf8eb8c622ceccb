package requests

import "followupplan-service/internal/app/models"

// BenefitsNotification is placed on the benefits-case channel when a plan is
// archived, and again (as a letter-sent notice) after physical-letter
// production.
type BenefitsNotification struct {
	MessageID           string                 `json:"id"`
	ArchiveReference    string                 `json:"archive_reference"`
	SenderOrgID         string                 `json:"sender_org_id"`
	SenderOrgName       string                 `json:"sender_org_name"`
	SenderSystemName    string                 `json:"sender_system_name"`
	SenderSystemVersion string                 `json:"sender_system_version"`
	SubjectPersonID     string                 `json:"subject_person_id"`
	Assistance          models.AssistanceFlags `json:"assistance"`
	LetterSent          bool                   `json:"letter_sent"`
}

// PhysicianNotification is the structured dialog message delivered over the
// physician channel when electronic delivery is possible.
type PhysicianNotification struct {
	MessageID            string `json:"id"`
	ArchiveReference     string `json:"archive_reference"`
	SenderOrgID          string `json:"sender_org_id"`
	SenderOrgName        string `json:"sender_org_name"`
	SubjectPersonID      string `json:"subject_person_id"`
	SubjectGivenName     string `json:"subject_given_name"`
	SubjectFamilyName    string `json:"subject_family_name"`
	PhysicianName        string `json:"physician_name"`
	PhysicianNationalID  string `json:"physician_national_id"`
	PhysicianRegistryID  int    `json:"physician_registry_id"`
	OfficeOrgNumber      string `json:"office_org_number"`
	OfficeName           string `json:"office_name"`
	TransportPartnerID   string `json:"transport_partner_id"`
}
