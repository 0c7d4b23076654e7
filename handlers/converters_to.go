package handlers

import (
	"mytargets/domain"
	"mytargets/service"
)

// toScrapeTargets converts the manifest, keeping only serverID when it is set.
func toScrapeTargets(manifest domain.Manifest, serverID *string) []ScrapeTarget {
	out := make([]ScrapeTarget, 0, len(manifest))
	for _, t := range manifest {
		if serverID != nil && t.Labels.ServerID != *serverID {
			continue
		}
		out = append(out, ScrapeTarget{
			Targets: append([]string{}, t.Targets...),
			Labels: TargetLabels{
				Job:        t.Labels.Job,
				ServerId:   t.Labels.ServerID,
				ServerName: t.Labels.ServerName,
				Instance:   t.Labels.Instance,
			},
		})
	}
	return out
}

// toStatusResponse converts a snapshot. UpdatedAt stays empty until a file was written.
func toStatusResponse(s domain.Snapshot) StatusResponse {
	out := StatusResponse{
		Healthy:             s.Healthy,
		Fingerprint:         s.Fingerprint,
		TargetCount:         len(s.Targets),
		LastCycle:           string(s.LastCycle),
		LastCycleAt:         s.LastCycleAt,
		LastCycleDurationMs: s.Duration.Milliseconds(),
	}
	if !s.UpdatedAt.IsZero() {
		out.UpdatedAt = service.Ptr(s.UpdatedAt)
	}
	if s.LastError != "" {
		out.LastError = service.Ptr(s.LastError)
	}
	return out
}
