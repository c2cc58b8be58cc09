package library

import (
	"sort"

	"cbind/internal/entity"
)

// Library is the symbol table: one name-keyed collection per entity kind plus
// the exported function set. Within one collection names are unique; a later
// insertion with a duplicate name overwrites the earlier one (last write
// wins, surfaced as a warning during ingestion).
type Library struct {
	enums           map[string]*entity.Enum
	structs         map[string]*entity.Struct
	opaques         map[string]*entity.OpaqueStruct
	typedefs        map[string]*entity.Typedef
	specializations map[string]*entity.Specialization
	prebuilts       map[string]*entity.Prebuilt
	functions       map[string]*entity.Function
}

func newLibrary() *Library {
	return &Library{
		enums:           make(map[string]*entity.Enum),
		structs:         make(map[string]*entity.Struct),
		opaques:         make(map[string]*entity.OpaqueStruct),
		typedefs:        make(map[string]*entity.Typedef),
		specializations: make(map[string]*entity.Specialization),
		prebuilts:       make(map[string]*entity.Prebuilt),
		functions:       make(map[string]*entity.Function),
	}
}

// insert applies the last-write-wins policy and reports whether an earlier
// entry was replaced.
func insert[T any](m map[string]*T, name string, v *T) (overwrote bool) {
	_, overwrote = m[name]
	m[name] = v
	return overwrote
}

// Resolve looks a name up across all collections with fixed precedence:
// prebuilt, enum, struct, opaque struct, typedef, specialization. Prebuilts
// come first so a caller-supplied override shadows any derived entity.
// A miss is not an error; callers log a warning and treat the dependency as
// a silent gap.
func (l *Library) Resolve(name string) (entity.Entity, bool) {
	if v, ok := l.prebuilts[name]; ok {
		return v, true
	}
	if v, ok := l.enums[name]; ok {
		return v, true
	}
	if v, ok := l.structs[name]; ok {
		return v, true
	}
	if v, ok := l.opaques[name]; ok {
		return v, true
	}
	if v, ok := l.typedefs[name]; ok {
		return v, true
	}
	if v, ok := l.specializations[name]; ok {
		return v, true
	}
	return nil, false
}

func sortedKeys[T any](m map[string]*T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Functions returns the exported functions in ascending name order. This
// order fixes both the dependency-collection root order and the function
// section of the output.
func (l *Library) Functions() []*entity.Function {
	out := make([]*entity.Function, 0, len(l.functions))
	for _, name := range sortedKeys(l.functions) {
		out = append(out, l.functions[name])
	}
	return out
}

// Entities returns every entity, kind by kind in Kind order, each kind in
// ascending name order. Used by the msgpack dump, not by the build.
func (l *Library) Entities() []entity.Entity {
	var out []entity.Entity
	for _, name := range sortedKeys(l.enums) {
		out = append(out, l.enums[name])
	}
	for _, name := range sortedKeys(l.structs) {
		out = append(out, l.structs[name])
	}
	for _, name := range sortedKeys(l.opaques) {
		out = append(out, l.opaques[name])
	}
	for _, name := range sortedKeys(l.typedefs) {
		out = append(out, l.typedefs[name])
	}
	for _, name := range sortedKeys(l.specializations) {
		out = append(out, l.specializations[name])
	}
	for _, name := range sortedKeys(l.prebuilts) {
		out = append(out, l.prebuilts[name])
	}
	return out
}
