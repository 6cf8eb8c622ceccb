package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/models"
	"followupplan-service/internal/app/services/shared/jwtmanager"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type partnerRegistryClient struct {
	apiClient
}

func NewPartnerRegistryClient(cfg *config.InternalConfig, log *zap.Logger, tokens *jwtmanager.JWTManager) contracts.PartnerRegistryClient {
	return &partnerRegistryClient{
		apiClient: newAPIClient(cfg.Remote.PartnerRegistryURL, log, cfg, tokens),
	}
}

func (c *partnerRegistryClient) GetPartnerCapabilities(ctx context.Context, orgNumber string) ([]models.PartnerCapability, error) {
	requestURL := fmt.Sprintf("%s/partners?org_number=%s", c.BaseURL, url.QueryEscape(orgNumber))

	resp, err := c.do(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		drainAndClose(resp)
		return nil, exceptions.ErrPartnerRegistryLookup(
			fmt.Errorf("status %d", resp.StatusCode), orgNumber)
	}

	var result struct {
		Capabilities []models.PartnerCapability `json:"capabilities"`
	}
	if err := decodeJSON(resp, "partner registry", &result); err != nil {
		return nil, err
	}
	return result.Capabilities, nil
}
