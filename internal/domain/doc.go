// Package domain defines the core types for the netupdate inventory tool.
//
// This package holds the in-memory inventory and the records a single update
// session produces. It has no I/O and no external dependencies.
//
// # Core Types
//
// DeviceClass tags a device as a router or a switch. The class comes from the
// table a device was found in, never from its name.
//
// DeviceTable is an ordered name to IP mapping. It backs both inventory tables
// and the set of updates applied during a session. Overwriting a key keeps its
// original position.
//
// Inventory pairs the router and switch tables. Its keys are fixed once loaded;
// only existing entries can change.
//
// Report is what a finished session hands to the output writers: the updated
// devices, the rejected IP literals in order, and the two counters.
//
// # Validation
//
// ValidateIPLiteral checks a dotted-quad literal syntactically. Octets are
// parsed with strconv.Atoi, so leading zeros and a leading sign are accepted.
package domain
