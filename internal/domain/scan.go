package domain

// SCAN represents a Single Client Access Name on one logical network. A SCAN
// may expose several addresses of each family, round-robined across the
// cluster; address order follows the CLI output. At most one SCAN exists per
// network identifier.
type SCAN struct {
	NetworkID string   `json:"network" yaml:"network"`
	Name      string   `json:"name" yaml:"name"`
	FQDN      string   `json:"fqdn" yaml:"fqdn"`
	IPv4      []string `json:"ipv4" yaml:"ipv4"`
	IPv6      []string `json:"ipv6" yaml:"ipv6"`
}
