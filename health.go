package prof

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/planet-nine-app/prof-go/internal/jsonx"
)

// HealthCheck probes the service's /health endpoint. It needs no signer.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	_, body, err := c.do(ctx, http.MethodGet, c.baseURL+"/health", "", nil)
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := jsonx.Unmarshal(body, &health); err != nil {
		return nil, &SerializationError{Err: err}
	}
	return &health, nil
}

// WaitUntilHealthy polls the health endpoint until it answers or the
// timeout elapses. Useful when the service is still starting up.
func (c *Client) WaitUntilHealthy(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		if _, err := c.HealthCheck(ctx); err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for service health: %w", ctx.Err())
		case <-ticker.C:
		}
	}
}
