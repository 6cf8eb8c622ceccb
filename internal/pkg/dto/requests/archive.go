package requests

// ArchiveRequest is the record handed to the document archive service.
type ArchiveRequest struct {
	ArchiveReference    string `json:"archive_reference"`
	SenderOrgID         string `json:"sender_org_id"`
	SenderOrgName       string `json:"sender_org_name"`
	SubjectPersonID     string `json:"subject_person_id"`
	DocumentContentType string `json:"document_content_type"`
	Document            []byte `json:"document"`
}

// PlanReport is the domain object the PDF rendering service turns into the
// archived plan document for the versioned schemas.
type PlanReport struct {
	ArchiveReference    string `json:"archive_reference"`
	SenderOrgID         string `json:"sender_org_id"`
	SenderOrgName       string `json:"sender_org_name"`
	SenderSystemName    string `json:"sender_system_name"`
	SenderSystemVersion string `json:"sender_system_version"`
	SubjectPersonID     string `json:"subject_person_id"`
}
