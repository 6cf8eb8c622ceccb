package forms

import (
	"encoding/xml"

	"followupplan-service/internal/pkg/exceptions"
)

// Plan2014 moved receiver intent into a dedicated dispatch block.
type Plan2014 struct {
	XMLName xml.Name        `xml:"followupPlan2014"`
	Content Plan2014Content `xml:"formContent"`
}

type Plan2014Content struct {
	Employer     Employer          `xml:"employer"`
	SenderSystem SenderSystem      `xml:"senderSystem"`
	Employee     Employee          `xml:"sickListedEmployee"`
	Dispatch     *Plan2014Dispatch `xml:"dispatchInformation"`
}

type Plan2014Dispatch struct {
	Receiver   *ReceiverInfo    `xml:"receiverInformation"`
	Assistance *AssistanceNeeds `xml:"assistance"`
}

func ParsePlan2014(payload string) (*Plan2014, error) {
	var doc Plan2014
	if err := xml.Unmarshal([]byte(payload), &doc); err != nil {
		return nil, exceptions.ErrCannotUnmarshalForm(err, "plan-2014")
	}
	return &doc, nil
}
