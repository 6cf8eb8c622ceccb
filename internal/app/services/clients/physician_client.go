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

type physicianRegistryClient struct {
	apiClient
}

func NewPhysicianRegistryClient(cfg *config.InternalConfig, log *zap.Logger, tokens *jwtmanager.JWTManager) contracts.PhysicianRegistryClient {
	return &physicianRegistryClient{
		apiClient: newAPIClient(cfg.Remote.PhysicianRegistryURL, log, cfg, tokens),
	}
}

// GetPhysicianAssociation returns (nil, nil) when the subject has no
// registered physician; the caller treats that as a terminal outcome.
func (c *physicianRegistryClient) GetPhysicianAssociation(ctx context.Context, personID string) (*models.PhysicianAssociation, error) {
	requestURL := fmt.Sprintf("%s/patients/%s/physician", c.BaseURL, personID)

	resp, err := c.do(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		drainAndClose(resp)
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		drainAndClose(resp)
		return nil, exceptions.ErrPhysicianLookup(fmt.Errorf("status %d", resp.StatusCode))
	}

	var association models.PhysicianAssociation
	if err := decodeJSON(resp, "physician registry", &association); err != nil {
		return nil, err
	}
	return &association, nil
}
