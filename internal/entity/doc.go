// Package entity defines the closed set of declaration kinds that can appear
// in a generated header, plus the C type expression tree they are built from.
//
// # Data model
//
// Entity is a closed sum over six kinds: Enum, Struct, OpaqueStruct, Typedef,
// Specialization and Prebuilt. The set is intentionally sealed (unexported
// marker method); consumers dispatch with exhaustive type switches so that
// adding a kind breaks every switch loudly instead of falling through.
//
// Every entity has a unique name — the cross-kind primary key used by the
// symbol table — and can append the names of entities it references to a
// caller-supplied accumulator (Enum, OpaqueStruct and Prebuilt reference
// nothing).
//
// Type is the C type expression tree used in struct fields, typedef targets
// and function signatures. A Named node with type arguments is a generic
// instantiation; it is a valid graph node but must be specialized away before
// rendering.
//
// # Rendering
//
// EmitC renders one entity as C source. A Specialization reaching EmitC is an
// internal contract violation (the build step resolves them all) and panics.
package entity
