package models

// SchemaVersion tags which of the versioned form schemas produced a
// submission's payload. Unrecognized service/edition pairs stay Unclassified
// and take the safety-net path.
type SchemaVersion string

const (
	SchemaPlan2012     SchemaVersion = "plan-2012"
	SchemaPlan2014     SchemaVersion = "plan-2014"
	SchemaPlan2016     SchemaVersion = "plan-2016"
	SchemaMetadataPlan SchemaVersion = "metadata-plan"
	SchemaUnclassified SchemaVersion = "unclassified"
)

// IsVersionedPlan reports whether the tag is one of the full plan schemas, as
// opposed to the legacy metadata form or the unclassified passthrough.
func (v SchemaVersion) IsVersionedPlan() bool {
	return v == SchemaPlan2012 || v == SchemaPlan2014 || v == SchemaPlan2016
}

// RawSubmission is the envelope read off the event log. It is immutable once
// fetched; everything downstream works on values derived from it.
type RawSubmission struct {
	ServiceCode      string `json:"service_code"`
	EditionCode      string `json:"edition_code"`
	ArchiveReference string `json:"archive_reference"`
	FormData         string `json:"form_data"`
	Attachment       []byte `json:"attachment"`
	SourceQueue      string `json:"source_queue"`
}

// AssistanceFlags are the four requested support categories carried through
// to the benefits notification.
type AssistanceFlags struct {
	Equipment         bool `json:"equipment"`
	Guidance          bool `json:"guidance"`
	DialogueMeeting   bool `json:"dialogue_meeting"`
	WorkplaceMeasures bool `json:"workplace_measures"`
}

// CanonicalFields is the version-independent record extracted from a parsed
// form. It never holds raw payload bytes.
type CanonicalFields struct {
	ArchiveReference    string
	SenderOrgID         string
	SenderOrgName       string
	SenderSystemName    string
	SenderSystemVersion string
	SubjectPersonID     string
	SubjectGivenName    string
	SubjectFamilyName   string
	SendToArchive       bool
	SendToPhysician     bool
	Assistance          AssistanceFlags
	// UsesNavTemplate gates routing for legacy metadata-form submissions only.
	UsesNavTemplate bool
}
