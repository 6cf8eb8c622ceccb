package extractor

import (
	"followupplan-service/internal/app/models"
)

// Extractor turns one schema version's payload into the canonical field set.
// Implementations never mutate the submission; missing optional nodes
// resolve to false so that "no declared intent" routes nowhere instead of
// failing.
type Extractor interface {
	Extract(submission models.RawSubmission) (models.CanonicalFields, error)
}

// Set holds the constructed extractor per schema version. It is built once
// and injected into the pipeline; there is no package-level parser state.
type Set struct {
	extractors map[models.SchemaVersion]Extractor
}

func NewSet() *Set {
	return &Set{
		extractors: map[models.SchemaVersion]Extractor{
			models.SchemaPlan2012:     plan2012Extractor{},
			models.SchemaPlan2014:     plan2014Extractor{},
			models.SchemaPlan2016:     plan2016Extractor{},
			models.SchemaMetadataPlan: metadataFormExtractor{},
		},
	}
}

// Extract dispatches on the classifier tag. Unclassified submissions get no
// field extraction at all: the safety-net path archives the raw attachment,
// so only the envelope metadata is carried forward.
func (s *Set) Extract(submission models.RawSubmission, tag models.SchemaVersion) (models.CanonicalFields, error) {
	if tag == models.SchemaUnclassified {
		return models.CanonicalFields{ArchiveReference: submission.ArchiveReference}, nil
	}
	return s.extractors[tag].Extract(submission)
}
