package collector

import (
	"context"

	"go.uber.org/zap"

	"gridfacts/internal/parser"
)

// restartVersionQueries are the crsctl sub-queries issued in Oracle Restart
// mode, in precedence order for the backward-compatible "version" alias.
var restartVersionQueries = []string{
	"releaseversion",
	"releasepatch",
	"softwareversion",
	"softwarepatch",
}

// detectFullClusterMode reports whether the host runs full cluster-ready-
// services mode. An empty or failed node list means single-node restart mode.
func (c *Collector) detectFullClusterMode(ctx context.Context) bool {
	return !c.runner.Run(ctx, c.tools.Olsnodes).Empty()
}

// resolveVersions queries the software version strings for the detected mode.
//
// In cluster mode the active CRS version line is stored raw under "version".
// In restart mode each sub-query stores its bracket-extracted token, or the
// raw line when no trailing bracket group is present; the first successful
// extraction also sets the "version" alias. Version resolution never fails
// the run.
func (c *Collector) resolveVersions(ctx context.Context, fullCluster bool) map[string]string {
	versions := make(map[string]string)

	if fullCluster {
		if res := c.runner.Run(ctx, c.tools.Crsctl, "query", "crs", "activeversion"); !res.Empty() {
			versions["version"] = res.First()
		}
		return versions
	}

	for _, query := range restartVersionQueries {
		line := c.runner.Run(ctx, c.tools.Crsctl, "query", "has", query).First()
		v, ok := parser.BracketVersion(line)
		if !ok {
			versions[query] = line
			continue
		}
		versions[query] = v
		if _, set := versions["version"]; !set {
			versions["version"] = v
		}
	}

	c.logger.Debug("resolved versions", zap.Int("keys", len(versions)))
	return versions
}
