// Package dump exports an ingested library as a versioned msgpack snapshot
// for external tooling. It is a one-shot export of what ingestion classified,
// written before build-time pruning, so tools can see entities that the
// generated header legitimately omits.
package dump

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"cbind/internal/entity"
	"cbind/internal/library"
)

// SchemaVersion is incremented whenever the Payload format changes.
const SchemaVersion uint16 = 1

// Payload is the serialized snapshot: every collection in name order, plus
// the exported functions.
type Payload struct {
	Schema uint16

	Enums           []*entity.Enum
	Structs         []*entity.Struct
	OpaqueStructs   []*entity.OpaqueStruct
	Typedefs        []*entity.Typedef
	Specializations []*entity.Specialization
	Prebuilts       []*entity.Prebuilt
	Functions       []*entity.Function
}

// Snapshot captures the library's current contents.
func Snapshot(lib *library.Library) *Payload {
	p := &Payload{Schema: SchemaVersion}
	for _, e := range lib.Entities() {
		switch v := e.(type) {
		case *entity.Enum:
			p.Enums = append(p.Enums, v)
		case *entity.Struct:
			p.Structs = append(p.Structs, v)
		case *entity.OpaqueStruct:
			p.OpaqueStructs = append(p.OpaqueStructs, v)
		case *entity.Typedef:
			p.Typedefs = append(p.Typedefs, v)
		case *entity.Specialization:
			p.Specializations = append(p.Specializations, v)
		case *entity.Prebuilt:
			p.Prebuilts = append(p.Prebuilts, v)
		}
	}
	p.Functions = lib.Functions()
	return p
}

// WriteFile serializes the snapshot to path.
func WriteFile(path string, lib *library.Library) error {
	data, err := msgpack.Marshal(Snapshot(lib))
	if err != nil {
		return fmt.Errorf("failed to encode library dump: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

// ReadFile loads a snapshot back, validating the schema version.
func ReadFile(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	var p Payload
	if err := msgpack.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("%s: failed to decode library dump: %w", path, err)
	}
	if p.Schema != SchemaVersion {
		return nil, fmt.Errorf("%s: dump schema %d, want %d", path, p.Schema, SchemaVersion)
	}
	return &p, nil
}
