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

type archiveClient struct {
	apiClient
}

func NewArchiveClient(cfg *config.InternalConfig, log *zap.Logger, tokens *jwtmanager.JWTManager) contracts.ArchiveClient {
	return &archiveClient{
		apiClient: newAPIClient(cfg.Remote.ArchiveServiceURL, log, cfg, tokens),
	}
}

func (c *archiveClient) Archive(ctx context.Context, request *requests.ArchiveRequest) error {
	requestURL := fmt.Sprintf("%s/documents", c.BaseURL)

	resp, err := c.do(ctx, constvars.MethodPost, requestURL, request)
	if err != nil {
		return err
	}
	defer drainAndClose(resp)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return exceptions.ErrArchiveDocument(
			fmt.Errorf("status %d", resp.StatusCode), request.ArchiveReference)
	}
	return nil
}
