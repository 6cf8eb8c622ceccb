package routing

import (
	"testing"

	"followupplan-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func kinds(intents []models.DispatchIntent) []models.IntentKind {
	out := make([]models.IntentKind, 0, len(intents))
	for _, intent := range intents {
		out = append(out, intent.Kind)
	}
	return out
}

func TestDecideUnclassified(t *testing.T) {
	attachment := []byte("raw document")

	t.Run("Always Archives And Notifies", func(t *testing.T) {
		intents := Decide(models.CanonicalFields{ArchiveReference: "AR-1"}, models.SchemaUnclassified, false, attachment)

		assert.Equal(t, []models.IntentKind{models.IntentArchiveDocument, models.IntentNotifyBenefits}, kinds(intents))
		assert.Equal(t, attachment, intents[0].Payload, "archive intent should carry the raw document")
	})

	t.Run("Never Contacts Physician Or Sends Letters", func(t *testing.T) {
		fields := models.CanonicalFields{ArchiveReference: "AR-1", SendToPhysician: true}
		intents := Decide(fields, models.SchemaUnclassified, true, attachment)

		assert.NotContains(t, kinds(intents), models.IntentNotifyPhysician)
		assert.NotContains(t, kinds(intents), models.IntentFallbackLetter)
	})
}

func TestDecideInvalidOrganization(t *testing.T) {
	fields := models.CanonicalFields{
		ArchiveReference: "AR-2",
		SenderOrgID:      "987654321",
		SendToArchive:    true,
		SendToPhysician:  true,
	}

	for _, tag := range []models.SchemaVersion{
		models.SchemaPlan2012,
		models.SchemaPlan2014,
		models.SchemaPlan2016,
		models.SchemaMetadataPlan,
	} {
		assert.Empty(t, Decide(fields, tag, false, nil), "tag %s should route nowhere with an invalid org", tag)
	}
}

func TestDecideVersionedPlans(t *testing.T) {
	t.Run("Archive And Physician", func(t *testing.T) {
		fields := models.CanonicalFields{SendToArchive: true, SendToPhysician: true}
		intents := Decide(fields, models.SchemaPlan2016, true, nil)

		assert.Equal(t, []models.IntentKind{
			models.IntentArchiveDocument,
			models.IntentNotifyBenefits,
			models.IntentNotifyPhysician,
		}, kinds(intents))
		assert.Nil(t, intents[0].Payload, "versioned plans are rendered at dispatch time")
	})

	t.Run("Archive Without Physician Falls Back To Letter", func(t *testing.T) {
		fields := models.CanonicalFields{SendToArchive: true}
		intents := Decide(fields, models.SchemaPlan2014, true, nil)

		assert.Equal(t, []models.IntentKind{
			models.IntentArchiveDocument,
			models.IntentNotifyBenefits,
			models.IntentFallbackLetter,
		}, kinds(intents))
		assert.Equal(t, models.LetterTargetSenderOrg, intents[2].LetterTarget)
	})

	t.Run("No Declared Intent Still Sends Letter", func(t *testing.T) {
		intents := Decide(models.CanonicalFields{}, models.SchemaPlan2012, true, nil)

		assert.Equal(t, []models.IntentKind{models.IntentFallbackLetter}, kinds(intents))
	})
}

func TestDecideMetadataPlan(t *testing.T) {
	attachment := []byte("legacy plan pdf")

	t.Run("Standard Template With Both Intents", func(t *testing.T) {
		fields := models.CanonicalFields{
			SendToArchive:   true,
			SendToPhysician: true,
			UsesNavTemplate: true,
		}
		intents := Decide(fields, models.SchemaMetadataPlan, true, attachment)

		assert.Equal(t, []models.IntentKind{
			models.IntentArchiveDocument,
			models.IntentNotifyBenefits,
			models.IntentFallbackLetter,
		}, kinds(intents))
		assert.Equal(t, attachment, intents[0].Payload, "legacy plans archive the attachment as-is")
		assert.Equal(t, models.LetterTargetPhysicianOffice, intents[2].LetterTarget,
			"physician intent on the legacy path becomes a letter to the office")
	})

	t.Run("Physician Intent Never Becomes Dialog Message", func(t *testing.T) {
		fields := models.CanonicalFields{SendToPhysician: true, UsesNavTemplate: true}
		intents := Decide(fields, models.SchemaMetadataPlan, true, attachment)

		assert.NotContains(t, kinds(intents), models.IntentNotifyPhysician)
	})

	t.Run("Non Standard Template Routes Nowhere", func(t *testing.T) {
		fields := models.CanonicalFields{
			SendToArchive:   true,
			SendToPhysician: true,
			UsesNavTemplate: false,
		}

		assert.Empty(t, Decide(fields, models.SchemaMetadataPlan, true, attachment))
	})

	t.Run("No Physician Intent Letters The Sender", func(t *testing.T) {
		fields := models.CanonicalFields{UsesNavTemplate: true}
		intents := Decide(fields, models.SchemaMetadataPlan, true, attachment)

		assert.Equal(t, []models.IntentKind{models.IntentFallbackLetter}, kinds(intents))
		assert.Equal(t, models.LetterTargetSenderOrg, intents[0].LetterTarget)
	})
}
