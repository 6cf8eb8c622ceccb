package constvars

const (
	// Altinn service/edition codes for the follow-up plan forms.
	ServiceCodeFollowupPlan    = "2913"
	ServiceEditionPlan2012     = "2"
	ServiceEditionPlan2014     = "3"
	ServiceEditionPlan2016     = "4"
	ServiceCodeMetadataPlan    = "5062"
	ServiceEditionMetadataPlan = "1"

	// PDF template identifiers understood by the rendering service.
	PdfTemplatePlanReport = "plan_report"

	// Content types used for archived documents.
	DocumentContentTypePDF = "application/pdf"
	DocumentContentTypeXML = "application/xml"
)
