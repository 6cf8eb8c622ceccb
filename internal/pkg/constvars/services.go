package constvars

const (
	// Queue names. The submission queue is the inbound event log; the two
	// notification queues are the outbound channels.
	SubmissionQueueName           = "followup_plan_submission_queue"
	BenefitsNotificationQueueName = "benefits_case_notification_queue"
	PhysicianNotificationQueue    = "physician_dialog_notification_queue"

	// Mongo collections.
	MongoCollectionDispatchJournal = "dispatch_journal"

	// HTTP plumbing shared by the remote service clients.
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	MIMEApplicationJSON = "application/json"
	MIMEApplicationPDF  = "application/pdf"
	MethodGet           = "GET"
	MethodPost          = "POST"
)
