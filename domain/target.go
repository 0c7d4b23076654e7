package domain

import "time"

// JobRESTServers is the job label attached to every target in the manifest.
const JobRESTServers = "rest-servers"

// ScrapeTarget is one element of a Prometheus file_sd manifest.
// Field order is part of the on-disk format: the fingerprint depends on it.
type ScrapeTarget struct {
	Targets []string     `json:"targets"`
	Labels  TargetLabels `json:"labels"`
}

// TargetLabels are the labels Prometheus attaches to every series scraped from the target.
// Instance keeps the host as the gateway reported it; Targets carries the reachable address.
type TargetLabels struct {
	Job        string `json:"job"`
	ServerID   string `json:"server_id"`
	ServerName string `json:"server_name"`
	Instance   string `json:"instance"`
}

// Manifest is the full content of the targets file. It is never nil so that it encodes as [].
type Manifest []ScrapeTarget

// Address returns the scrape address of the target ("" when Targets is empty).
func (t ScrapeTarget) Address() string {
	if len(t.Targets) == 0 {
		return ""
	}
	return t.Targets[0]
}

// WriteKind tells whether persisting a manifest touched the file.
type WriteKind string

const (
	WriteKindWritten WriteKind = "written"
	WriteKindSkipped WriteKind = "skipped"
)

// WriteOutcome is the result of persisting a manifest: Written{Count} or Skipped.
type WriteOutcome struct {
	Kind  WriteKind
	Count int
}

// CycleOutcome classifies a finished poll cycle.
type CycleOutcome string

const (
	// CycleWritten means a changed manifest was written.
	CycleWritten CycleOutcome = "written"
	// CycleSkipped means the manifest was unchanged and the file was left alone.
	CycleSkipped CycleOutcome = "skipped"
	// CyclePersistFailed means the manifest was built but could not be written.
	CyclePersistFailed CycleOutcome = "persist_failed"
	// CycleFallback means the registry could not be read and [] was written.
	CycleFallback CycleOutcome = "fallback"
	// CycleFallbackFailed means the registry could not be read and writing [] failed too.
	CycleFallbackFailed CycleOutcome = "fallback_failed"
	// CycleCancelled means the context was cancelled while fetching; nothing was written.
	CycleCancelled CycleOutcome = "cancelled"
)

// CycleResult describes one poll cycle. Err holds the fetch, registry or filesystem error, if any.
type CycleResult struct {
	ID         string
	Outcome    CycleOutcome
	Count      int
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Snapshot is what the adapter knows about the manifest currently on disk.
// It is served by the status API and published to Redis.
type Snapshot struct {
	Fingerprint string        `json:"fingerprint"`
	Targets     Manifest      `json:"targets"`
	UpdatedAt   time.Time     `json:"updated_at"`
	Healthy     bool          `json:"healthy"`
	LastCycle   CycleOutcome  `json:"last_cycle"`
	LastCycleAt time.Time     `json:"last_cycle_at"`
	LastError   string        `json:"last_error,omitempty"`
	Duration    time.Duration `json:"duration_ns"`
}
