package contracts

import (
	"context"

	"followupplan-service/internal/pkg/dto/requests"
)

// ArchiveClient hands a constructed archive record to the archive service.
type ArchiveClient interface {
	Archive(ctx context.Context, request *requests.ArchiveRequest) error
}

// DocumentProductionClient renders and sends a physical letter.
type DocumentProductionClient interface {
	ProduceLetter(ctx context.Context, request *requests.LetterRequest) error
}

// PdfRenderClient renders a domain object into document bytes for the given
// template.
type PdfRenderClient interface {
	Render(ctx context.Context, template string, domainObject interface{}) ([]byte, error)
}

// BenefitsChannel is the outbound benefits-case notification queue.
type BenefitsChannel interface {
	Publish(ctx context.Context, notification *requests.BenefitsNotification) error
}

// PhysicianChannel is the outbound physician dialog-message queue.
type PhysicianChannel interface {
	Publish(ctx context.Context, notification *requests.PhysicianNotification) error
}
