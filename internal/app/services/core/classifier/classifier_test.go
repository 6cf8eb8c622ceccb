package classifier

import (
	"testing"

	"followupplan-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Run("Known Service Edition Pairs", func(t *testing.T) {
		assert.Equal(t, models.SchemaPlan2012, Classify("2913", "2"))
		assert.Equal(t, models.SchemaPlan2014, Classify("2913", "3"))
		assert.Equal(t, models.SchemaPlan2016, Classify("2913", "4"))
		assert.Equal(t, models.SchemaMetadataPlan, Classify("5062", "1"))
	})

	t.Run("Unknown Edition Of Known Service", func(t *testing.T) {
		assert.Equal(t, models.SchemaUnclassified, Classify("2913", "1"))
		assert.Equal(t, models.SchemaUnclassified, Classify("2913", "5"))
	})

	t.Run("Unknown Service Code", func(t *testing.T) {
		assert.Equal(t, models.SchemaUnclassified, Classify("9999", "2"))
		assert.Equal(t, models.SchemaUnclassified, Classify("", ""))
	})

	t.Run("Codes Are Not Swappable", func(t *testing.T) {
		assert.Equal(t, models.SchemaUnclassified, Classify("2", "2913"))
	})
}
