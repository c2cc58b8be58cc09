// Package convert turns manifest declaration records into entities.
//
// Each converter handles one declaration shape and fails with a descriptive,
// per-item error when the declaration is not representable in C. Converters
// never touch the symbol table and never report diagnostics themselves; the
// ingest loop decides what a failure means (skip, or fall back to an opaque
// placeholder for structs).
package convert
