package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridfacts/internal/domain"
)

// appendDomain stands in for DNS resolution in tests.
func appendDomain(name string) string {
	return name + ".example.com"
}

func TestVIPs(t *testing.T) {
	tests := map[string]struct {
		input []string
		want  map[string]domain.VIP
	}{
		"single vip": {
			input: []string{
				"VIP exists: network number 1, hosting node rac01",
				"VIP Name: rac01-vip",
				"VIP IPv4 Address: 192.168.56.31",
				"VIP IPv6 Address:",
				"VIP is enabled.",
				"VIP is individually enabled on nodes:",
			},
			want: map[string]domain.VIP{
				"1": {
					NetworkID: "1",
					Name:      "rac01-vip",
					FQDN:      "rac01-vip.example.com",
					IPv4:      "192.168.56.31",
				},
			},
		},
		"dotted name kept by resolver": {
			input: []string{
				"VIP exists: network number 2, hosting node rac01",
				"VIP Name: rac01-vip2.example.com",
				"VIP IPv6 Address: 2001:db8::31",
			},
			want: map[string]domain.VIP{
				"2": {
					NetworkID: "2",
					Name:      "rac01-vip2.example.com",
					FQDN:      "rac01-vip2.example.com",
					IPv6:      "2001:db8::31",
				},
			},
		},
		"two vips on distinct networks": {
			input: []string{
				"VIP exists: network number 1, hosting node rac01",
				"VIP Name: rac01-vip",
				"VIP IPv4 Address: 192.168.56.31",
				"VIP exists: network number 2, hosting node rac01",
				"VIP Name: rac01-vip2",
				"VIP IPv4 Address: 172.16.0.31",
			},
			want: map[string]domain.VIP{
				"1": {NetworkID: "1", Name: "rac01-vip", FQDN: "rac01-vip.example.com", IPv4: "192.168.56.31"},
				"2": {NetworkID: "2", Name: "rac01-vip2", FQDN: "rac01-vip2.example.com", IPv4: "172.16.0.31"},
			},
		},
		"no output": {
			input: []string{""},
			want:  map[string]domain.VIP{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			resolve := func(name string) string {
				if name == "rac01-vip2.example.com" {
					return name
				}
				return appendDomain(name)
			}
			got, err := VIPs(tt.input, "srvctl config vip", resolve)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVIPsMalformedNetworkNumber(t *testing.T) {
	input := []string{
		"VIP exists: for node rac01",
		"VIP Name: rac01-vip",
	}

	_, err := VIPs(input, "srvctl config vip", appendDomain)
	require.Error(t, err)

	var malformed *domain.MalformedRecordError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, "srvctl config vip", malformed.Command)
	assert.Equal(t, "VIP exists: for node rac01", malformed.Line)
}

func TestVIPsIdempotent(t *testing.T) {
	input := []string{
		"VIP exists: network number 1, hosting node rac01",
		"VIP Name: rac01-vip",
		"VIP IPv4 Address: 192.168.56.31",
	}

	first, err := VIPs(input, "srvctl config vip", appendDomain)
	require.NoError(t, err)
	second, err := VIPs(input, "srvctl config vip", appendDomain)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
