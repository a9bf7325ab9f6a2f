package codec

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridfacts/internal/domain"
)

func sampleFacts() *domain.ClusterFacts {
	return &domain.ClusterFacts{
		ClusterName: "rac-cluster",
		Versions:    map[string]string{"version": "19.0.0.0.0"},
		Networks: []domain.Network{
			{ID: "1", SubnetIPv4: "192.168.56.0/255.255.255.0/eth1, static"},
		},
		VIPs: []domain.VIP{
			{NetworkID: "1", Name: "rac01-vip", FQDN: "rac01-vip.example.com", IPv4: "192.168.56.31"},
		},
		SCANs: []domain.SCAN{
			{NetworkID: "1", Name: "rac-scan", FQDN: "rac-scan.example.com", IPv4: []string{"192.168.56.41"}},
		},
		Listeners: []domain.Listener{
			{
				Name:          "LISTENER",
				Type:          "Database Listener",
				NetworkID:     "1",
				Endpoints:     "TCP:1521/TCPS:1522",
				ProtocolPorts: map[string]string{"tcp": "1521", "tcps": "1522"},
				Address:       "rac01-vip.example.com",
				IPv4:          "192.168.56.31",
			},
		},
		ScanListeners: []domain.ScanListener{
			{
				NetworkID:     "1",
				ScanAddress:   "rac-scan.example.com",
				Endpoints:     "TCP:1521",
				ProtocolPorts: map[string]string{"tcp": "1521"},
				IPv4:          []string{"192.168.56.41"},
			},
		},
		Databases:       []string{"orclcdb"},
		CRSHome:         "/u01/app/19.0.0/grid",
		FullClusterMode: true,
	}
}

func TestForFormat(t *testing.T) {
	for _, format := range []string{"json", "yaml", "ansible"} {
		e, err := ForFormat(format)
		require.NoError(t, err)
		assert.Equal(t, format, e.Format())
	}

	e, err := ForFormat("")
	require.NoError(t, err)
	assert.Equal(t, "json", e.Format())

	_, err = ForFormat("xml")
	assert.Error(t, err)
}

func TestJSONExportRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONExporter().Export(sampleFacts(), &buf))

	var decoded domain.ClusterFacts
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleFacts(), decoded)
}

func TestYAMLExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLExporter().Export(sampleFacts(), &buf))

	out := buf.String()
	assert.Contains(t, out, "clustername: rac-cluster")
	assert.Contains(t, out, "oracle_crs_home: /u01/app/19.0.0/grid")
}

func TestAnsibleExportEnvelope(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAnsibleExporter().Export(sampleFacts(), &buf))

	var envelope struct {
		AnsibleFacts struct {
			Facts map[string]json.RawMessage `json:"oracle_gi_facts"`
		} `json:"ansible_facts"`
		Changed bool `json:"changed"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))

	assert.False(t, envelope.Changed)
	facts := envelope.AnsibleFacts.Facts
	require.NotNil(t, facts)

	for _, key := range []string{"clustername", "version", "vip", "network", "scan", "local_listener", "scan_listener", "database_list", "oracle_crs_home"} {
		assert.Contains(t, facts, key, "fact key %s", key)
	}
}

// Legacy playbooks read listener ports from flattened protocol keys.
func TestAnsibleExportFlattensProtocolPorts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewAnsibleExporter().Export(sampleFacts(), &buf))

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &envelope))

	facts := envelope["ansible_facts"].(map[string]any)["oracle_gi_facts"].(map[string]any)

	listeners := facts["local_listener"].([]any)
	require.Len(t, listeners, 1)
	listener := listeners[0].(map[string]any)
	assert.Equal(t, "1521", listener["tcp"])
	assert.Equal(t, "1522", listener["tcps"])
	assert.Equal(t, "rac01-vip.example.com", listener["address"])

	scanListeners := facts["scan_listener"].([]any)
	require.Len(t, scanListeners, 1)
	assert.Equal(t, "1521", scanListeners[0].(map[string]any)["tcp"])
}

func TestAnsibleExportOmitsEmptyOptionalFields(t *testing.T) {
	facts := sampleFacts()
	facts.Listeners = []domain.Listener{{Name: "LISTENER_ASM", Type: "ASM Listener", Endpoints: "TCP:1526"}}

	var buf bytes.Buffer
	require.NoError(t, NewAnsibleExporter().Export(facts, &buf))

	out := buf.String()
	assert.False(t, strings.Contains(out, `"network": ""`), "unresolved listener network must be omitted")
	assert.False(t, strings.Contains(out, `"address": ""`))
}
