package constvars

const (
	LoggingSubmissionIDKey     = "submission_id"
	LoggingArchiveReferenceKey = "archive_reference"
	LoggingSenderOrgIDKey      = "sender_org_id"
	LoggingSourceQueueKey      = "source_queue"
	LoggingSchemaVersionKey    = "schema_version"
	LoggingIntentKey           = "intent"
	LoggingQueueKey            = "queue"
	LoggingMessageIDKey        = "message_id"
)
