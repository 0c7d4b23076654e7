package interfaces

import (
	"context"

	"mytargets/domain"
)

// Registry is the upstream source of backend servers: the gateway's server-status API.
//
// Implemented by adapters.RegistryHTTP. Called once per poll cycle from service.Poller.RunCycle.
//
//go:generate moq -stub -out mock/registry.go -pkg mock . Registry
type Registry interface {
	// FetchServers returns the decoded registry response.
	// Returns:
	// 1) (response, nil) on HTTP 200 with a JSON body, whatever its success flag says;
	// 2) (nil, network_error | timeout_error | http_status_error | decode_error) on failure;
	// 3) (nil, ctx.Err()) when ctx was cancelled by the caller (shutdown).
	FetchServers(ctx context.Context) (*domain.RegistryResponse, error)
}
