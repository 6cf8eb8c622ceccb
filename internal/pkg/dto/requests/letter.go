package requests

// LetterRequest asks the document production service to render and send a
// physical letter.
type LetterRequest struct {
	ArchiveReference  string `json:"archive_reference"`
	SenderOrgID       string `json:"sender_org_id"`
	SenderOrgName     string `json:"sender_org_name"`
	ReceiverOrgNumber string `json:"receiver_org_number"`
	ReceiverOrgName   string `json:"receiver_org_name"`
	PostalCode        string `json:"postal_code"`
	City              string `json:"city"`
	// Content is the letter body. The upstream system never shipped real
	// body content on this path; the value comes from configuration.
	Content string `json:"content"`
}
