package interfaces

import "mytargets/domain"

// SnapshotProvider exposes what the poller last wrote and how its last cycle went.
//
// Implemented by service.Poller. Called from handlers.HTTPServer.
//
//go:generate moq -stub -out mock/snapshot_provider.go -pkg mock . SnapshotProvider
type SnapshotProvider interface {
	// Snapshot returns the current snapshot and false until the first cycle has finished.
	Snapshot() (domain.Snapshot, bool)
}
