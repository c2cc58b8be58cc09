// Package library is the resolution-and-generation core: a symbol table over
// classified declarations, a transitive dependency collector rooted at the
// exported function set, a specializer that monomorphizes parameterized
// aliases, and a deterministic ordering and emission pass.
//
// # Lifecycle
//
// Load ingests declaration manifests into a Library in a single pass. The
// Library is never mutated afterward; Build derives a BuiltLibrary from it,
// and BuiltLibrary.Write serializes that result exactly once.
//
// # Failure policy
//
// Per-item failures (unsupported construct, wrong specialization arity,
// unresolved dependency name) are reported to the diagnostic sink and the
// item is omitted; they never abort a run. The only hard errors are walker
// I/O failures and output sink failures. A Specialization entity reaching the
// emitter is an internal invariant violation and panics.
package library
