package domain

// Listener represents a node-local listener discovered via "srvctl status
// listener" and described by "srvctl config listener -l <name>".
//
// Address, IPv4 and IPv6 are populated only when NetworkID resolves against
// the VIP mapping built in the same collection run; otherwise they stay empty.
type Listener struct {
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	NetworkID string `json:"network,omitempty" yaml:"network,omitempty"`
	// Endpoints is the raw "End points:" spec, e.g. "TCP:1521/TCPS:1522".
	Endpoints string `json:"endpoints" yaml:"endpoints"`
	// ProtocolPorts maps lower-cased protocol names to port strings.
	ProtocolPorts map[string]string `json:"protocol_ports,omitempty" yaml:"protocol_ports,omitempty"`
	Address       string            `json:"address,omitempty" yaml:"address,omitempty"`
	IPv4          string            `json:"ipv4,omitempty" yaml:"ipv4,omitempty"`
	IPv6          string            `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
}

// ScanListener represents the SCAN listener configuration for one logical
// network. A record exists only for networks whose SCAN resolved in the same
// collection run.
type ScanListener struct {
	NetworkID     string            `json:"network" yaml:"network"`
	ScanAddress   string            `json:"scan_address" yaml:"scan_address"`
	Endpoints     string            `json:"endpoints" yaml:"endpoints"`
	ProtocolPorts map[string]string `json:"protocol_ports,omitempty" yaml:"protocol_ports,omitempty"`
	IPv4          []string          `json:"ipv4" yaml:"ipv4"`
	IPv6          []string          `json:"ipv6" yaml:"ipv6"`
}
