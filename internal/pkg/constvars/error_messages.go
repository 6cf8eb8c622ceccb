package constvars

// Client messages are what an operator sees in the journal; dev messages
// carry the detail the log needs.
const (
	ErrClientCannotProcessSubmission = "Submission could not be processed"
	ErrClientRemoteServiceFailed     = "A remote service call failed"

	ErrDevBuildRequest             = "Failed to build HTTP request"
	ErrDevSendHTTPRequest          = "Failed to send HTTP request"
	ErrDevDecodeResponse           = "Failed to decode response from %s"
	ErrDevUnexpectedStatus         = "Unexpected HTTP status %d from %s"
	ErrDevCannotMarshalJSON        = "Failed to marshal data into JSON"
	ErrDevCannotUnmarshalXML       = "Failed to unmarshal form payload for schema %s"
	ErrDevRabbitMQPublishMessage   = "Failed to publish message to queue %s"
	ErrDevRabbitMQFetchMessage     = "Failed to fetch message from queue %s"
	ErrDevMongoDBInsertDocument    = "Failed to insert document into MongoDB"
	ErrDevRedisSet                 = "Failed to set value in Redis"
	ErrDevRedisGet                 = "Failed to get value from Redis for key %s"
	ErrDevMinioCreateObject        = "Failed to create object in bucket %s"
	ErrDevOrganizationValidation   = "Organization validation call failed for org %s"
	ErrDevPhysicianLookup          = "Physician association lookup failed for subject"
	ErrDevAddressRegistryLookup    = "Address registry lookup failed for registry id %d"
	ErrDevPartnerRegistryLookup    = "Partner registry lookup failed for org %s"
	ErrDevOrganizationLookup       = "Organization lookup failed for org %s"
	ErrDevDocumentProduction       = "Document production call failed"
	ErrDevArchiveDocument          = "Archive call failed for reference %s"
	ErrDevPdfRender                = "PDF rendering failed for template %s"
	ErrDevTokenGenerate            = "Failed to sign service token"

	ResponseUnknown = "unknown"
)
