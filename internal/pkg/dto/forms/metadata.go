package forms

import (
	"encoding/xml"

	"followupplan-service/internal/pkg/exceptions"
)

// MetadataForm is the structurally different legacy schema: the plan itself
// travels as an attachment and the form only carries routing metadata.
type MetadataForm struct {
	XMLName         xml.Name      `xml:"followupPlanMetadata"`
	Employer        Employer      `xml:"employer"`
	SenderSystem    SenderSystem  `xml:"senderSystem"`
	PersonID        string        `xml:"personNumber"`
	Receiver        *ReceiverInfo `xml:"receiverInformation"`
	EquipmentNeeded *bool         `xml:"equipmentAssistance"`
}

func ParseMetadataForm(payload string) (*MetadataForm, error) {
	var doc MetadataForm
	if err := xml.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, exceptions.ErrCannotUnmarshalForm(err, "metadata-plan")
	}
	return &doc, nil
}
