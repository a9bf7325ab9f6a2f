package domain

// VIP represents the virtual IP bound to one logical network on the current
// node. At most one VIP exists per network identifier.
type VIP struct {
	NetworkID string `json:"network" yaml:"network"`
	Name      string `json:"name" yaml:"name"`
	// FQDN is derived from Name: used verbatim when Name already contains a
	// dot, otherwise resolved via host lookup.
	FQDN string `json:"fqdn" yaml:"fqdn"`
	IPv4 string `json:"ipv4,omitempty" yaml:"ipv4,omitempty"`
	IPv6 string `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
}
