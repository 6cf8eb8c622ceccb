package contracts

import (
	"context"

	"followupplan-service/internal/app/models"
)

// OrganizationRegistryClient talks to the organization directory: validation
// plus the two-call chain (record by number, then summary by name) used to
// resolve a mailing address.
type OrganizationRegistryClient interface {
	ValidateOrganization(ctx context.Context, orgID string) (bool, error)
	GetOrganizationName(ctx context.Context, orgNumber string) (string, error)
	FindOrganizationSummary(ctx context.Context, name string) (*models.OrganizationAddress, error)
}

// PhysicianRegistryClient resolves a subject's registered physician.
// A nil association with a nil error means "not found".
type PhysicianRegistryClient interface {
	GetPhysicianAssociation(ctx context.Context, personID string) (*models.PhysicianAssociation, error)
}

// AddressRegistryClient resolves the physician office's organizational
// identity from the association's registry id.
type AddressRegistryClient interface {
	GetOrganizationIdentity(ctx context.Context, registryID int) (*models.OrganizationIdentity, error)
}

// PartnerRegistryClient lists the transport partner capabilities registered
// for an organization number.
type PartnerRegistryClient interface {
	GetPartnerCapabilities(ctx context.Context, orgNumber string) ([]models.PartnerCapability, error)
}
