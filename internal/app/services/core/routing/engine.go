package routing

import (
	"followupplan-service/internal/app/models"
)

// Decide maps a classified, extracted submission to the set of dispatch
// intents that fire for it. The paths are not mutually exclusive; one
// submission may produce several intents. Rules, in precedence order:
//
//  1. Unclassified submissions always archive the raw attachment and notify
//     the benefits system, with no validation gate. This is the safety net
//     for unrecognized service/edition pairs.
//  2. Everything else is gated on organization validity; an invalid sender
//     organization drops the submission (the caller logs the rejection).
//  3. Declared archive intent emits archive + benefits notification.
//  4. Declared physician intent emits the physician notification; without it
//     a physical letter goes to the sender organization instead, so the plan
//     reaches someone even with no physician routing.
//
// Legacy metadata-form submissions gate rules 3 and 4 on the derived
// template flag, and their letters go to the physician's office when the
// plan declared physician intent.
func Decide(fields models.CanonicalFields, tag models.SchemaVersion, orgValid bool, attachment []byte) []models.DispatchIntent {
	if tag == models.SchemaUnclassified {
		return []models.DispatchIntent{
			{Kind: models.IntentArchiveDocument, Fields: fields, Payload: attachment},
			{Kind: models.IntentNotifyBenefits, Fields: fields},
		}
	}

	if !orgValid {
		return nil
	}

	if tag == models.SchemaMetadataPlan {
		return decideMetadataPlan(fields, attachment)
	}

	intents := make([]models.DispatchIntent, 0, 2)
	if fields.SendToArchive {
		intents = append(intents,
			models.DispatchIntent{Kind: models.IntentArchiveDocument, Fields: fields},
			models.DispatchIntent{Kind: models.IntentNotifyBenefits, Fields: fields},
		)
	}
	if fields.SendToPhysician {
		intents = append(intents, models.DispatchIntent{Kind: models.IntentNotifyPhysician, Fields: fields})
	} else {
		intents = append(intents, models.DispatchIntent{
			Kind:         models.IntentFallbackLetter,
			Fields:       fields,
			LetterTarget: models.LetterTargetSenderOrg,
		})
	}
	return intents
}

func decideMetadataPlan(fields models.CanonicalFields, attachment []byte) []models.DispatchIntent {
	// Legacy plans outside the standard template were never processed by the
	// upstream system; preserved as a logged skip.
	if !fields.UsesNavTemplate {
		return nil
	}

	intents := make([]models.DispatchIntent, 0, 2)
	if fields.SendToArchive {
		// The legacy plan document is the attachment itself; no rendering.
		intents = append(intents,
			models.DispatchIntent{Kind: models.IntentArchiveDocument, Fields: fields, Payload: attachment},
			models.DispatchIntent{Kind: models.IntentNotifyBenefits, Fields: fields},
		)
	}
	if fields.SendToPhysician {
		// Legacy submissions have no electronic physician channel; the
		// letter goes to the registered physician's office.
		intents = append(intents, models.DispatchIntent{
			Kind:         models.IntentFallbackLetter,
			Fields:       fields,
			LetterTarget: models.LetterTargetPhysicianOffice,
		})
	} else {
		intents = append(intents, models.DispatchIntent{
			Kind:         models.IntentFallbackLetter,
			Fields:       fields,
			LetterTarget: models.LetterTargetSenderOrg,
		})
	}
	return intents
}
