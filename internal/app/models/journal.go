package models

import "time"

// DispatchRecord is the journal document written for every intent outcome.
type DispatchRecord struct {
	SubmissionID     string    `bson:"submissionId"`
	ArchiveReference string    `bson:"archiveReference"`
	SenderOrgID      string    `bson:"senderOrgId"`
	SchemaVersion    string    `bson:"schemaVersion"`
	Intent           string    `bson:"intent"`
	Succeeded        bool      `bson:"succeeded"`
	Reason           string    `bson:"reason,omitempty"`
	ProcessedAt      time.Time `bson:"processedAt"`
}
