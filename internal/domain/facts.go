package domain

// ClusterFacts is the aggregate assembled by one collection pass. It is the
// sole output of the collector; nothing mutates it after assembly.
type ClusterFacts struct {
	ClusterName string `json:"clustername" yaml:"clustername"`
	// Versions holds labeled version strings. In full cluster mode the single
	// key is "version" (active CRS version). In restart mode there is one key
	// per sub-query (releaseversion, releasepatch, softwareversion,
	// softwarepatch) plus a backward-compatible "version" alias set from the
	// first sub-query whose output carried a parseable bracket token.
	Versions      map[string]string `json:"versions" yaml:"versions"`
	VIPs          []VIP             `json:"vip" yaml:"vip"`
	Networks      []Network         `json:"network" yaml:"network"`
	SCANs         []SCAN            `json:"scan" yaml:"scan"`
	Listeners     []Listener        `json:"local_listener" yaml:"local_listener"`
	ScanListeners []ScanListener    `json:"scan_listener" yaml:"scan_listener"`
	Databases     []string          `json:"database_list" yaml:"database_list"`
	CRSHome       string            `json:"oracle_crs_home" yaml:"oracle_crs_home"`
	// FullClusterMode is true when the host runs full cluster-ready-services
	// mode, false on single-node Oracle Restart.
	FullClusterMode bool `json:"is_crs" yaml:"is_crs"`
}
