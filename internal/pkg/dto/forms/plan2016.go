package forms

import (
	"encoding/xml"

	"followupplan-service/internal/pkg/exceptions"
)

// Plan2016 is the current full plan schema, with the supplementary-info
// wrapper the 2016 revision introduced.
type Plan2016 struct {
	XMLName xml.Name        `xml:"followupPlan2016"`
	Content Plan2016Content `xml:"supplementaryInfo"`
}

type Plan2016Content struct {
	Employer     Employer         `xml:"employer"`
	SenderSystem SenderSystem     `xml:"senderSystem"`
	Employee     Employee         `xml:"sickListedEmployee"`
	Receiver     *ReceiverInfo    `xml:"receiverInformation"`
	Assistance   *AssistanceNeeds `xml:"assistanceNeeds"`
}

func ParsePlan2016(payload string) (*Plan2016, error) {
	var doc Plan2016
	if err := xml.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, exceptions.ErrCannotUnmarshalForm(err, "plan-2016")
	}
	return &doc, nil
}
