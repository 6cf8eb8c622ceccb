package clients

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"followupplan-service/internal/app/config"
	"followupplan-service/internal/app/services/shared/jwtmanager"
	"followupplan-service/internal/pkg/constvars"
	"followupplan-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// apiClient is the shared plumbing for the remote registry/service clients:
// JSON requests with a bearer service token, bounded by the configured
// timeout.
type apiClient struct {
	BaseURL    string
	Log        *zap.Logger
	HTTPClient *http.Client
	Tokens     *jwtmanager.JWTManager
}

func newAPIClient(baseURL string, log *zap.Logger, cfg *config.InternalConfig, tokens *jwtmanager.JWTManager) apiClient {
	timeout := time.Duration(cfg.Remote.HTTPTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return apiClient{
		BaseURL:    baseURL,
		Log:        log,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
	}
}

func (c *apiClient) do(ctx context.Context, method, url string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	token, err := c.Tokens.CreateToken()
	if err != nil {
		return nil, err
	}
	req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

func decodeJSON(resp *http.Response, service string, out interface{}) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return exceptions.ErrDecodeResponse(err, service)
	}
	return nil
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
