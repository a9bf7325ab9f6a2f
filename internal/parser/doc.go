// Package parser turns line-oriented srvctl/crsctl output into domain
// records.
//
// The output formats are undocumented and drift across product versions
// (12c/18c/19c), so every parser is defensive: lines that match no known
// pattern are ignored, and only structurally mandatory patterns (a record
// opener without its identifier) raise an error. Parsers do no I/O; where a
// record needs a host name resolved to an FQDN the caller injects a
// HostResolver.
package parser
