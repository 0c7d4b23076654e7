package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"sort"
	"strconv"

	"mytargets/domain"
)

// DefaultRegistryFailureMessage is reported when the registry answers success:false without a message.
const DefaultRegistryFailureMessage = "Gateway returned error"

// loopbackHosts are the hosts that are unreachable from inside the scraper's network namespace.
var loopbackHosts = map[string]struct{}{
	"localhost": {},
	"127.0.0.1": {},
}

// NormalizeHost swaps a loopback host for alias; any other host is returned unchanged.
func NormalizeHost(host string, alias string) string {
	if _, ok := loopbackHosts[host]; ok {
		return alias
	}
	return host
}

// RegistryFailure returns registry_reported_failure when resp says success:false, nil otherwise.
// A nil resp is a decode_error.
func RegistryFailure(resp *domain.RegistryResponse) error {
	if resp == nil {
		return NewDecodeError("empty registry response", nil)
	}
	if resp.Success {
		return nil
	}
	return NewRegistryReportedFailure(FirstNonZero(Value(resp.Message), DefaultRegistryFailureMessage))
}

// BuildManifest turns the eligible registry records into scrape targets, sorted by server id.
// Ineligible records (not ACTIVE, or without config) are skipped. The result is never nil.
func BuildManifest(resp *domain.RegistryResponse, hostAlias string) domain.Manifest {
	ids := make([]string, 0, len(resp.Servers))
	for id, record := range resp.Servers {
		if record.Eligible() {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	manifest := make(domain.Manifest, 0, len(ids))
	for _, id := range ids {
		cfg := resp.Servers[id].Config
		port := strconv.Itoa(cfg.Port)
		manifest = append(manifest, domain.ScrapeTarget{
			Targets: []string{net.JoinHostPort(NormalizeHost(cfg.Host, hostAlias), port)},
			Labels: domain.TargetLabels{
				Job:        domain.JobRESTServers,
				ServerID:   id,
				ServerName: FirstNonZero(Value(cfg.Name), id),
				Instance:   net.JoinHostPort(cfg.Host, port),
			},
		})
	}
	return manifest
}

// EncodeManifest serializes m the way it is stored on disk: a JSON array indented with two spaces,
// no HTML escaping, no trailing newline. An empty or nil manifest encodes to exactly "[]".
func EncodeManifest(m domain.Manifest) ([]byte, error) {
	if m == nil {
		m = domain.Manifest{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, NewInternalServerError("encode manifest", fmt.Errorf("can't encode %d targets, err: %w", len(m), err))
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Fingerprint is the hex SHA-256 of an encoded manifest.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// emptyManifest is what the failure path writes.
var emptyManifest = []byte("[]")
