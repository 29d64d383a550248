// Package journal persists committed finalizer mutations to a local SQLite
// database. The journal is an optional debugging aid for cleanup controllers:
// it answers "who added or removed which token, when, and at which
// resourceVersion" after the fact, without a running cluster.
//
// The database file is guarded by a cross-process file lock so that multiple
// reconciler processes pointed at the same journal path do not interleave
// writes. Journal failures never fail the mutation that triggered them.
package journal
