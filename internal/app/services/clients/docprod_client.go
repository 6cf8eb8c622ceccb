package clients

import (
	"context"
	"fmt"
	"net/http"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/services/shared/jwtmanager"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/dto/requests"
	"followupplan-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type documentProductionClient struct {
	apiClient
}

func NewDocumentProductionClient(cfg *config.InternalConfig, log *zap.Logger, tokens *jwtmanager.JWTManager) contracts.DocumentProductionClient {
	return &documentProductionClient{
		apiClient: newAPIClient(cfg.Remote.DocumentProductionURL, log, cfg, tokens),
	}
}

func (c *documentProductionClient) ProduceLetter(ctx context.Context, request *requests.LetterRequest) error {
	requestURL := fmt.Sprintf("%s/letters", c.BaseURL)

	resp, err := c.do(ctx, constvars.MethodPost, requestURL, request)
	if err != nil {
		return err
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return exceptions.ErrDocumentProduction(fmt.Errorf("status %d", resp.StatusCode))
	}
	return nil
}
