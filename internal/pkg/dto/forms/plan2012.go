package forms

import (
	"encoding/xml"

	"followupplan-service/internal/pkg/exceptions"
)

// Plan2012 is the oldest full plan schema. Receiver intent and assistance
// flags live directly under the form content.
type Plan2012 struct {
	XMLName xml.Name        `xml:"followupPlan2012"`
	Content Plan2012Content `xml:"formContent"`
}

type Plan2012Content struct {
	Employer     Employer         `xml:"employer"`
	SenderSystem SenderSystem     `xml:"senderSystem"`
	Employee     Employee         `xml:"sickListedEmployee"`
	Receiver     *ReceiverInfo    `xml:"receiverInformation"`
	Assistance   *AssistanceNeeds `xml:"assistance"`
}

func ParsePlan2012(payload string) (*Plan2012, error) {
	var doc Plan2012
	if err := xml.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, exceptions.ErrCannotUnmarshalForm(err, "plan-2012")
	}
	return &doc, nil
}
