package domain

// Network represents one logical cluster network.
//
// The identifier is a small non-negative integer serialized as a string, as
// printed by "srvctl config network". It is unique across all networks on the
// host and is the join key for VIPs, SCANs and listeners.
type Network struct {
	ID         string `json:"network" yaml:"network"`
	SubnetIPv4 string `json:"ipv4,omitempty" yaml:"ipv4,omitempty"`
	SubnetIPv6 string `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
}
