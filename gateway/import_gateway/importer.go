package import_gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"bm/utils/errors"
	"bm/utils/logger"
	"bm/utils/rate_limiter"
)

// remoteClient is the outbound side shared by all import gateways:
// a private-network-refusing HTTP client, per-host rate limiting and
// a sanitizer for remote-controlled text.
type remoteClient struct {
	httpClient  *http.Client
	rateLimiter *rate_limiter.HostRateLimiter
	sanitizer   *bluemonday.Policy
}

func newRemoteClient(httpClient *http.Client, rateLimiter *rate_limiter.HostRateLimiter) *remoteClient {
	return &remoteClient{
		httpClient:  httpClient,
		rateLimiter: rateLimiter,
		sanitizer:   bluemonday.StrictPolicy(),
	}
}

type requestOptions struct {
	headers   map[string]string
	basicUser string
	basicPass string
}

// getJSON performs a rate-limited GET and decodes the body into out.
// The HTTP status is returned so callers can map auth failures.
func (c *remoteClient) getJSON(ctx context.Context, url string, opts requestOptions, out any) (int, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.WaitForHost(ctx, url); err != nil {
			return 0, fmt.Errorf("rate limiting failed: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	for key, value := range opts.headers {
		req.Header.Set(key, value)
	}
	if opts.basicUser != "" || opts.basicPass != "" {
		req.SetBasicAuth(opts.basicUser, opts.basicPass)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Logger.Error("remote fetch failed", "url", url, "error", err)
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Logger.Error("remote response decode failed", "url", url, "error", err)
		return resp.StatusCode, err
	}

	return resp.StatusCode, nil
}

func (c *remoteClient) clean(text string) string {
	return c.sanitizer.Sanitize(text)
}

func parseRemoteTime(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	return time.Now()
}

func missingCredential(component string) error {
	return errors.NewMissingCredentialContextError(
		"importer credential not configured", "gateway", component, "Import", nil)
}

func expiredCredential(component string, status int) error {
	return errors.NewExpiredCredentialContextError(
		"remote service rejected the stored credential", "gateway", component, "Import", nil,
		map[string]interface{}{"status": status})
}

func remoteFetchFailed(component string, cause error) error {
	return errors.NewRemoteFetchContextError(
		"failed to fetch from remote service", "gateway", component, "Import", cause, nil)
}
