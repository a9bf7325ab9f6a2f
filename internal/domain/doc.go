// Package domain defines the core domain types for the gridfacts Oracle Grid
// Infrastructure topology collector.
//
// This package contains the entities assembled from administrative CLI output,
// cross-linked by logical network identifier.
//
// # Core Types
//
// Network represents one logical cluster network (IPv4/IPv6 subnets) keyed by
// a small integer identifier serialized as a string.
//
// VIP represents the virtual IP bound to a network on the current node, with
// its resolved FQDN.
//
// SCAN represents a Single Client Access Name: one floating name exposing one
// or more IPv4/IPv6 addresses round-robined across the cluster.
//
// Listener and ScanListener represent client endpoint acceptors; both derive
// address fields by resolving their network identifier against the VIP and
// SCAN mappings built in the same collection run.
//
// ClusterFacts is the aggregate root: everything one collection pass learned
// about the stack. All entities are constructed once per collection and never
// mutated afterwards.
//
// # Errors
//
// MalformedRecordError reports a line that must carry structure but does not
// (for example a "VIP exists:" line without a network number). PreconditionError
// reports a failure that aborts collection before any parsing starts, such as
// an unresolvable Grid Infrastructure home.
package domain
