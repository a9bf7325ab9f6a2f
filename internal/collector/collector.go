// Package collector orchestrates the administrative tools into one
// ClusterFacts aggregate: resolve the Grid Infrastructure home, detect the
// operating mode, then run and parse the topology queries in dependency
// order (networks and VIPs/SCANs before the listeners that join against
// them).
package collector

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"gridfacts/internal/domain"
	"gridfacts/internal/parser"
	"gridfacts/internal/runner"
)

// Collector assembles ClusterFacts from one collection pass. It holds no
// mutable state across passes; every Collect call starts from fresh CLI
// output.
type Collector struct {
	tools   Tools
	runner  runner.Runner
	logger  *zap.Logger
	node    string
	resolve parser.HostResolver
}

// Option customizes a Collector.
type Option func(*Collector)

// WithNodeName overrides the short host name used to scope VIP and listener
// queries to the current node.
func WithNodeName(name string) Option {
	return func(c *Collector) { c.node = name }
}

// WithHostResolver overrides FQDN derivation; tests use this to avoid DNS.
func WithHostResolver(resolve parser.HostResolver) Option {
	return func(c *Collector) { c.resolve = resolve }
}

// WithLogger sets the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Collector) { c.logger = logger }
}

// New creates a Collector over the given tool paths and runner.
func New(tools Tools, r runner.Runner, opts ...Option) *Collector {
	c := &Collector{
		tools:   tools,
		runner:  r,
		logger:  zap.NewNop(),
		node:    ShortHostname(),
		resolve: HostnameToFQDN,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collect runs one full collection pass.
//
// Entity resolution failures do not abort the pass: whatever resolved before
// and after the failing entity stays in the returned aggregate, and the
// failures come back joined in err. Only precondition failures (handled by
// ResolveHome / Tools.Verify before a Collector exists) abort outright.
func (c *Collector) Collect(ctx context.Context) (*domain.ClusterFacts, error) {
	fullCluster := c.detectFullClusterMode(ctx)
	c.logger.Info("detected operating mode",
		zap.Bool("full_cluster", fullCluster),
		zap.String("node", c.node))

	facts := &domain.ClusterFacts{
		ClusterName:     c.runner.Run(ctx, c.tools.Cemutlo, "-n").First(),
		Versions:        c.resolveVersions(ctx, fullCluster),
		CRSHome:         c.tools.Home,
		FullClusterMode: fullCluster,
	}

	var errs []error

	networks := parser.Networks(c.runner.Run(ctx, c.tools.Srvctl, "config", "network").Lines)

	vips, err := parser.VIPs(
		c.runner.Run(ctx, c.tools.Srvctl, "config", "vip", "-n", c.node).Lines,
		"srvctl config vip", c.resolve)
	if err != nil {
		errs = append(errs, fmt.Errorf("resolve vips: %w", err))
		vips = map[string]domain.VIP{}
	}

	scans := parser.SCANs(c.runner.Run(ctx, c.tools.Srvctl, "config", "scan", "-all").Lines, c.resolve)

	c.logger.Debug("resolved topology mappings",
		zap.Int("networks", len(networks)),
		zap.Int("vips", len(vips)),
		zap.Int("scans", len(scans)))

	facts.Networks = networkList(networks)
	facts.VIPs = vipList(vips)
	facts.SCANs = scanList(scans)

	facts.Listeners = c.localListeners(ctx, fullCluster, vips)
	if fullCluster {
		facts.ScanListeners = c.scanListeners(ctx, networks, scans)
	} else {
		facts.ScanListeners = []domain.ScanListener{}
	}

	facts.Databases = c.runner.Run(ctx, c.tools.Srvctl, "config", "database").NonEmpty()

	return facts, errors.Join(errs...)
}

// localListeners discovers enabled listeners and resolves each one's
// configuration, joining the network identifier against the VIP mapping.
func (c *Collector) localListeners(ctx context.Context, fullCluster bool, vips map[string]domain.VIP) []domain.Listener {
	argv := []string{c.tools.Srvctl, "status", "listener"}
	if fullCluster {
		argv = append(argv, "-n", c.node)
	}
	names := parser.EnabledListeners(c.runner.Run(ctx, argv...).Lines)

	listeners := make([]domain.Listener, 0, len(names))
	for _, name := range names {
		res := c.runner.Run(ctx, c.tools.Srvctl, "config", "listener", "-l", name)
		l := parser.ListenerConfig(res.Lines)
		if vip, ok := vips[l.NetworkID]; l.NetworkID != "" && ok {
			l.Address = vip.FQDN
			l.IPv4 = vip.IPv4
			l.IPv6 = vip.IPv6
		}
		listeners = append(listeners, l)
	}
	return listeners
}

// scanListeners resolves the SCAN listener for every known network. Networks
// without a resolvable SCAN are skipped.
func (c *Collector) scanListeners(ctx context.Context, networks map[string]domain.Network, scans map[string]domain.SCAN) []domain.ScanListener {
	out := make([]domain.ScanListener, 0, len(networks))
	for _, id := range sortedIDs(keysOf(networks)) {
		res := c.runner.Run(ctx, c.tools.Srvctl, "config", "scan_listener", "-k", id)
		spec, ok := parser.ScanListenerEndpoints(res.Lines)
		if !ok {
			continue
		}
		scan, ok := scans[id]
		if !ok {
			c.logger.Debug("scan listener without scan", zap.String("network", id))
			continue
		}
		out = append(out, domain.ScanListener{
			NetworkID:     id,
			ScanAddress:   scan.FQDN,
			Endpoints:     spec,
			ProtocolPorts: parser.Endpoints(spec),
			IPv4:          scan.IPv4,
			IPv6:          scan.IPv6,
		})
	}
	return out
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// sortedIDs orders network identifiers numerically, falling back to lexical
// order for non-numeric ones.
func sortedIDs(ids []string) []string {
	sort.Slice(ids, func(i, j int) bool {
		a, aerr := strconv.Atoi(ids[i])
		b, berr := strconv.Atoi(ids[j])
		if aerr == nil && berr == nil {
			return a < b
		}
		return ids[i] < ids[j]
	})
	return ids
}

func networkList(m map[string]domain.Network) []domain.Network {
	out := make([]domain.Network, 0, len(m))
	for _, id := range sortedIDs(keysOf(m)) {
		out = append(out, m[id])
	}
	return out
}

func vipList(m map[string]domain.VIP) []domain.VIP {
	out := make([]domain.VIP, 0, len(m))
	for _, id := range sortedIDs(keysOf(m)) {
		out = append(out, m[id])
	}
	return out
}

func scanList(m map[string]domain.SCAN) []domain.SCAN {
	out := make([]domain.SCAN, 0, len(m))
	for _, id := range sortedIDs(keysOf(m)) {
		out = append(out, m[id])
	}
	return out
}
