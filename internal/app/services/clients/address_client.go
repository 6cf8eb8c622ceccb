package clients

import (
	"context"
	"fmt"
	"net/http"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/app/services/shared/jwtmanager"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type addressRegistryClient struct {
	apiClient
}

func NewAddressRegistryClient(cfg *config.InternalConfig, log *zap.Logger, tokens *jwtmanager.JWTManager) contracts.AddressRegistryClient {
	return &addressRegistryClient{
		apiClient: newAPIClient(cfg.Remote.AddressRegistryURL, log, cfg, tokens),
	}
}

func (c *addressRegistryClient) GetOrganizationIdentity(ctx context.Context, registryID int) (*models.OrganizationIdentity, error) {
	requestURL := fmt.Sprintf("%s/parties/%d", c.BaseURL, registryID)

	resp, err := c.do(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		drainAndClose(resp)
		return nil, exceptions.ErrAddressRegistryLookup(
			fmt.Errorf("status %d", resp.StatusCode), registryID)
	}

	// The registry answers with the organizations registered for the party;
	// a physician office resolves to exactly one.
	var result struct {
		Organizations []models.OrganizationIdentity `json:"organizations"`
	}
	if err := decodeJSON(resp, "address registry", &result); err != nil {
		return nil, err
	}
	if len(result.Organizations) == 0 {
		return nil, exceptions.ErrAddressRegistryLookup(fmt.Errorf("no organizations for party"), registryID)
	}
	return &result.Organizations[0], nil
}
