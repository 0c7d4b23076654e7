package domain

// ServerStatus is the health state the gateway reports for a backend server.
type ServerStatus string

// ServerStatusActive is the only status that makes a server a scrape target.
const ServerStatusActive ServerStatus = "ACTIVE"

// RegistryResponse is the body of GET /api/servers/status on the gateway.
// Counters are informational; eligibility is decided per record.
type RegistryResponse struct {
	Success         bool                    `json:"success"`
	Message         *string                 `json:"message,omitempty"`
	Servers         map[string]ServerRecord `json:"servers"`
	TotalServers    int                     `json:"totalServers,omitempty"`
	ActiveServers   int                     `json:"activeServers,omitempty"`
	InactiveServers int                     `json:"inactiveServers,omitempty"`
}

// ServerRecord is one entry of RegistryResponse.Servers, keyed by server id.
type ServerRecord struct {
	Status     ServerStatus  `json:"status"`
	Config     *ServerConfig `json:"config,omitempty"`
	Collecting bool          `json:"collecting,omitempty"`
}

// ServerConfig is the gateway's static configuration of a backend server.
type ServerConfig struct {
	Host string  `json:"host"`
	Port int     `json:"port"`
	Name *string `json:"name,omitempty"`
}

// Eligible reports whether the record should be turned into a scrape target.
func (r ServerRecord) Eligible() bool {
	return r.Status == ServerStatusActive && r.Config != nil
}
