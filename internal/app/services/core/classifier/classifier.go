package classifier

import (
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/pkg/constvars"
)

type serviceEdition struct {
	serviceCode string
	editionCode string
}

// The classification table maps each known (serviceCode, editionCode) pair to
// exactly one schema version. Everything else is Unclassified.
var classificationTable = map[serviceEdition]models.SchemaVersion{
	{constvars.ServiceCodeFollowupPlan, constvars.ServiceEditionPlan2012}:     models.SchemaPlan2012,
	{constvars.ServiceCodeFollowupPlan, constvars.ServiceEditionPlan2014}:     models.SchemaPlan2014,
	{constvars.ServiceCodeFollowupPlan, constvars.ServiceEditionPlan2016}:     models.SchemaPlan2016,
	{constvars.ServiceCodeMetadataPlan, constvars.ServiceEditionMetadataPlan}: models.SchemaMetadataPlan,
}

// Classify maps the envelope's service/edition identifiers to a schema
// version tag. Pure lookup; no failure mode beyond Unclassified.
func Classify(serviceCode, editionCode string) models.SchemaVersion {
	if tag, ok := classificationTable[serviceEdition{serviceCode, editionCode}]; ok {
		return tag
	}
	return models.SchemaUnclassified
}
