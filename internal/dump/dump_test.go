package dump

import (
	"os"
	"path/filepath"
	"testing"

	"cbind/internal/diag"
	"cbind/internal/library"
)

func loadFixture(t *testing.T) *library.Library {
	t.Helper()
	dir := t.TempDir()
	manifest := `
module: geometry
decls:
  - kind: enum
    name: ShapeKind
    repr: u32
    variants:
      - name: Circle
      - name: Rect
  - kind: struct
    name: Point
    layout: fixed
    fields:
      - name: x
        type: i32
  - kind: struct
    name: Canvas
  - kind: alias
    name: Handle
    target: "*mut Canvas"
  - kind: function
    name: canvas_new
    exported: true
    convention: c
    destructor_safe: true
    returns: Handle
`
	if err := os.WriteFile(filepath.Join(dir, "geometry.decl.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	lib, err := library.Load(dir, nil, nil, nil, diag.NopReporter{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return lib
}

func TestDumpRoundTrip(t *testing.T) {
	lib := loadFixture(t)
	path := filepath.Join(t.TempDir(), "lib.mp")

	if err := WriteFile(path, lib); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if p.Schema != SchemaVersion {
		t.Fatalf("schema = %d", p.Schema)
	}
	if len(p.Enums) != 1 || p.Enums[0].Name != "ShapeKind" {
		t.Fatalf("enums = %+v", p.Enums)
	}
	if len(p.Structs) != 1 || len(p.OpaqueStructs) != 1 || len(p.Typedefs) != 1 {
		t.Fatalf("payload = %+v", p)
	}
	if len(p.Functions) != 1 || !p.Functions[0].DestructorSafe {
		t.Fatalf("functions = %+v", p.Functions)
	}
}

func TestDumpSchemaMismatch(t *testing.T) {
	lib := loadFixture(t)
	path := filepath.Join(t.TempDir(), "lib.mp")
	if err := WriteFile(path, lib); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Corrupting the payload wholesale must not decode as a valid dump.
	if err := os.WriteFile(path, []byte("not msgpack"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path); err == nil {
		t.Fatal("expected decode failure")
	}
}
