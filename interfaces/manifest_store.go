package interfaces

import "context"

// ManifestStore persists an encoded manifest at the location Prometheus watches.
//
//go:generate moq -stub -out mock/manifest_store.go -pkg mock . ManifestStore
type ManifestStore interface {
	// Write replaces the whole manifest with data. The directory is created if missing.
	// Returns nil on success or filesystem_error.
	Write(ctx context.Context, data []byte) error

	// Location returns a human-readable destination, used in log lines.
	Location() string
}
