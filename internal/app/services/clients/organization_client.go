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

type organizationRegistryClient struct {
	apiClient
}

func NewOrganizationRegistryClient(cfg *config.InternalConfig, log *zap.Logger, tokens *jwtmanager.JWTManager) contracts.OrganizationRegistryClient {
	return &organizationRegistryClient{
		apiClient: newAPIClient(cfg.Remote.OrganizationRegistryURL, log, cfg, tokens),
	}
}

func (c *organizationRegistryClient) ValidateOrganization(ctx context.Context, orgID string) (bool, error) {
	requestURL := fmt.Sprintf("%s/organizations/%s/validation", c.BaseURL, orgID)

	resp, err := c.do(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return false, err
	}
	if resp.StatusCode != http.StatusOK {
		drainAndClose(resp)
		return false, exceptions.ErrOrganizationValidation(
			fmt.Errorf("status %d", resp.StatusCode), orgID)
	}

	var result struct {
		Valid bool `json:"valid"`
	}
	if err := decodeJSON(resp, "organization registry", &result); err != nil {
		return false, err
	}
	return result.Valid, nil
}

func (c *organizationRegistryClient) GetOrganizationName(ctx context.Context, orgNumber string) (string, error) {
	requestURL := fmt.Sprintf("%s/organizations/%s", c.BaseURL, orgNumber)

	resp, err := c.do(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		drainAndClose(resp)
		return "", exceptions.ErrOrganizationLookup(
			fmt.Errorf("status %d", resp.StatusCode), orgNumber)
	}

	var result struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(resp, "organization registry", &result); err != nil {
		return "", err
	}
	return result.Name, nil
}

func (c *organizationRegistryClient) FindOrganizationSummary(ctx context.Context, name string) (*models.OrganizationAddress, error) {
	requestURL := fmt.Sprintf("%s/organizations?name=%s", c.BaseURL, url.QueryEscape(name))

	resp, err := c.do(ctx, constvars.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		drainAndClose(resp)
		return nil, exceptions.ErrOrganizationLookup(
			fmt.Errorf("status %d", resp.StatusCode), name)
	}

	var result struct {
		Summaries []models.OrganizationAddress `json:"summaries"`
	}
	if err := decodeJSON(resp, "organization registry", &result); err != nil {
		return nil, err
	}
	if len(result.Summaries) == 0 {
		return nil, exceptions.ErrOrganizationLookup(fmt.Errorf("no summary for name"), name)
	}
	return &result.Summaries[0], nil
}
