package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"mytargets/domain"
	"mytargets/helpers"
	"mytargets/interfaces"
	"mytargets/service"
)

// serversStatusPath is appended to the registry base URL.
const serversStatusPath = "/api/servers/status"

// RegistryHTTP creates an interfaces.Registry that reads GET baseURL/api/servers/status.
// Panics on empty baseURL, nil client or non-positive timeout.
//
// Parameters: baseURL is the gateway base URL without trailing slash (e.g. http://host.docker.internal:8091/gateway);
// timeout bounds each request, independent of the client's own timeout.
//
// Called from cmd/main.
func RegistryHTTP(baseURL string, client *http.Client, timeout time.Duration) interfaces.Registry {
	return &registryHTTP{
		url:     helpers.StrPanic(baseURL, "adapters.registry.go: baseURL is required") + serversStatusPath,
		client:  helpers.NilPanic(client, "adapters.registry.go: http client is required"),
		timeout: helpers.PositivePanic(timeout, "adapters.registry.go: timeout must be positive"),
	}
}

type registryHTTP struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// FetchServers performs one GET against the registry.
//
// Returns: the decoded body on 200, success:false included (the caller decides what it means);
// timeout_error when the request outlives the timeout; network_error on transport failures;
// http_status_error on any non-200 status; decode_error when the body is not the expected JSON;
// ctx.Err() unchanged when ctx itself was cancelled.
func (r *registryHTTP) FetchServers(ctx context.Context) (*domain.RegistryResponse, error) {
	reqCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, r.url, nil)
	if err != nil {
		return nil, service.NewNetworkError("build registry request", fmt.Errorf("can't build request for %s, err: %w", r.url, err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, r.transportError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, service.NewHTTPStatusError(resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, r.transportError(ctx, err)
	}
	var out domain.RegistryResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, service.NewDecodeError("decode registry response", fmt.Errorf("can't decode body from %s, err: %w", r.url, err))
	}
	return &out, nil
}

func (r *registryHTTP) transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return service.NewTimeoutError(fmt.Sprintf("registry did not answer within %s", r.timeout), err)
	}
	return service.NewNetworkError("registry unreachable", err)
}
