// Package genconfig defines the feature configuration that describes one
// generation run, along with its JSON load/dump round-trip. Loaded snapshots
// are checked for unknown keys (with an error enumerating the valid field
// names) and validated against an embedded JSON Schema that rejects
// out-of-range enum values.
package genconfig
