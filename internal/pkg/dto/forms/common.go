package forms

// Shared blocks reused across the versioned plan schemas. Optional nodes are
// pointers so that "absent" stays distinguishable from "explicitly false".

type Employer struct {
	OrgName   string `xml:"orgName"`
	OrgNumber string `xml:"orgNumber"`
}

type SenderSystem struct {
	Name    string `xml:"systemName"`
	Version string `xml:"systemVersion"`
}

type Employee struct {
	PersonID   string `xml:"personNumber"`
	GivenName  string `xml:"givenName"`
	FamilyName string `xml:"familyName"`
}

type ReceiverInfo struct {
	SendToCaseSystem *bool `xml:"planSentToCaseSystem"`
	SendToPhysician  *bool `xml:"planSentToPhysician"`
}

type AssistanceNeeds struct {
	Equipment         *bool `xml:"equipmentAssistance"`
	Guidance          *bool `xml:"guidanceAssistance"`
	DialogueMeeting   *bool `xml:"dialogueMeetingAssistance"`
	WorkplaceMeasures *bool `xml:"workplaceMeasuresAssistance"`
}
