package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"gridfacts/internal/domain"
)

// AnsibleExporter renders the aggregate in the fact shape of the classic
// oracle_gi_facts Ansible module: a JSON envelope of
// {"ansible_facts": {"oracle_gi_facts": {...}}} with listener protocol ports
// flattened into top-level keys (e.g. "tcp": "1521"), which is what existing
// playbooks consume.
type AnsibleExporter struct{}

// NewAnsibleExporter creates a new Ansible facts exporter.
func NewAnsibleExporter() *AnsibleExporter {
	return &AnsibleExporter{}
}

// Format returns the exporter format identifier.
func (e *AnsibleExporter) Format() string {
	return "ansible"
}

// Export writes the aggregate as an Ansible facts envelope.
func (e *AnsibleExporter) Export(facts *domain.ClusterFacts, w io.Writer) error {
	payload := map[string]any{
		"clustername":     facts.ClusterName,
		"vip":             vipFacts(facts.VIPs),
		"network":         networkFacts(facts.Networks),
		"scan":            scanFacts(facts.SCANs),
		"local_listener":  listenerFacts(facts.Listeners),
		"scan_listener":   scanListenerFacts(facts.ScanListeners),
		"database_list":   facts.Databases,
		"oracle_crs_home": facts.CRSHome,
	}
	for key, value := range facts.Versions {
		payload[key] = value
	}

	envelope := map[string]any{
		"ansible_facts": map[string]any{
			"oracle_gi_facts": payload,
		},
		"changed": false,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(envelope); err != nil {
		return fmt.Errorf("failed to encode Ansible facts: %w", err)
	}

	return nil
}

func networkFacts(networks []domain.Network) []map[string]any {
	out := make([]map[string]any, 0, len(networks))
	for _, n := range networks {
		m := map[string]any{"network": n.ID}
		if n.SubnetIPv4 != "" {
			m["ipv4"] = n.SubnetIPv4
		}
		if n.SubnetIPv6 != "" {
			m["ipv6"] = n.SubnetIPv6
		}
		out = append(out, m)
	}
	return out
}

func vipFacts(vips []domain.VIP) []map[string]any {
	out := make([]map[string]any, 0, len(vips))
	for _, v := range vips {
		out = append(out, map[string]any{
			"network": v.NetworkID,
			"name":    v.Name,
			"fqdn":    v.FQDN,
			"ipv4":    v.IPv4,
			"ipv6":    v.IPv6,
		})
	}
	return out
}

func scanFacts(scans []domain.SCAN) []map[string]any {
	out := make([]map[string]any, 0, len(scans))
	for _, s := range scans {
		out = append(out, map[string]any{
			"network": s.NetworkID,
			"name":    s.Name,
			"fqdn":    s.FQDN,
			"ipv4":    s.IPv4,
			"ipv6":    s.IPv6,
		})
	}
	return out
}

func listenerFacts(listeners []domain.Listener) []map[string]any {
	out := make([]map[string]any, 0, len(listeners))
	for _, l := range listeners {
		m := map[string]any{
			"name":      l.Name,
			"type":      l.Type,
			"endpoints": l.Endpoints,
		}
		if l.NetworkID != "" {
			m["network"] = l.NetworkID
		}
		if l.Address != "" {
			m["address"] = l.Address
			m["ipv4"] = l.IPv4
			m["ipv6"] = l.IPv6
		}
		for proto, port := range l.ProtocolPorts {
			m[proto] = port
		}
		out = append(out, m)
	}
	return out
}

func scanListenerFacts(listeners []domain.ScanListener) []map[string]any {
	out := make([]map[string]any, 0, len(listeners))
	for _, l := range listeners {
		m := map[string]any{
			"network":      l.NetworkID,
			"scan_address": l.ScanAddress,
			"endpoints":    l.Endpoints,
			"ipv4":         l.IPv4,
			"ipv6":         l.IPv6,
		}
		for proto, port := range l.ProtocolPorts {
			m[proto] = port
		}
		out = append(out, m)
	}
	return out
}
