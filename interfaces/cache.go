package interfaces

import "context"

// Cache represents cache for storing contents.
//
// Used by service.Poller to publish the current domain.Snapshot for readers outside the process
// (dashboards, other tooling) and to withdraw it on shutdown.
//
//go:generate moq -stub -out mock/cache.go -pkg mock . Cache
type Cache[T any] interface {
	// WriteValue writes value in cache with the given TTL (ms).
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when marshalling fails or when the storage write fails.
	WriteValue(ctx context.Context, key string, item T, ttlMs int) error

	// DeleteValue deletes the value for the given key from the cache.
	// Returns:
	// 1) nil on success;
	// 2) internal_server_error when the storage delete fails.
	DeleteValue(ctx context.Context, key string) error
}
