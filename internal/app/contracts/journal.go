package contracts

import (
	"context"

	"followupplan-service/internal/app/models"
)

// DispatchJournal records one document per intent outcome.
type DispatchJournal interface {
	Record(ctx context.Context, record *models.DispatchRecord) error
}
