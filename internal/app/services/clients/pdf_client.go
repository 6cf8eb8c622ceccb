package clients

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/contracts"
	"followupplan-service/internal/app/services/shared/jwtmanager"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type pdfRenderClient struct {
	apiClient
}

func NewPdfRenderClient(cfg *config.InternalConfig, log *zap.Logger, tokens *jwtmanager.JWTManager) contracts.PdfRenderClient {
	return &pdfRenderClient{
		apiClient: newAPIClient(cfg.Remote.PdfRendererURL, log, cfg, tokens),
	}
}

func (c *pdfRenderClient) Render(ctx context.Context, template string, domainObject interface{}) ([]byte, error) {
	requestURL := fmt.Sprintf("%s/api/v1/genpdf/followupplan/%s", c.BaseURL, template)

	resp, err := c.do(ctx, constvars.MethodPost, requestURL, domainObject)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, exceptions.ErrPdfRender(fmt.Errorf("status %d", resp.StatusCode), template)
	}

	document, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrPdfRender(err, template)
	}
	return document, nil
}
