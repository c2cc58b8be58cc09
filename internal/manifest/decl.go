// Package manifest reads declaration manifests: YAML files describing the
// annotated surface of a native library, one file per module. The walker is
// the only component that touches the filesystem during ingestion; it turns
// source text into typed Decl records and hands them to a callback, module by
// module, in deterministic order.
package manifest

// DeclKind is the declaration shape as spelled in the manifest.
type DeclKind string

const (
	DeclFunction DeclKind = "function"
	DeclStruct   DeclKind = "struct"
	DeclEnum     DeclKind = "enum"
	DeclAlias    DeclKind = "alias"
)

// File is one parsed manifest: a module name plus its declarations.
type File struct {
	Module string `yaml:"module"`
	Decls  []Decl `yaml:"decls"`
}

// Decl is one declaration record. Kind selects which field groups are
// meaningful; type expressions stay as strings here and are parsed by the
// converters.
type Decl struct {
	Kind DeclKind `yaml:"kind"`
	Name string   `yaml:"name"`

	// Function annotations and signature.
	Exported       bool        `yaml:"exported"`        // stable linkage name
	Convention     string      `yaml:"convention"`      // calling convention, "c" for accepted
	DestructorSafe bool        `yaml:"destructor_safe"` // conversion metadata, not rendered
	Params         []ParamDecl `yaml:"params"`
	Returns        string      `yaml:"returns"`

	// Struct shape.
	Layout    string      `yaml:"layout"` // "fixed" means C-compatible layout
	Fields    []FieldDecl `yaml:"fields"`
	Generics  []string    `yaml:"generics"`
	Lifetimes []string    `yaml:"lifetimes"`

	// Enum shape.
	Repr     string        `yaml:"repr"` // "u32" is the only accepted repr
	Variants []VariantDecl `yaml:"variants"`

	// Alias target (type X = ...).
	Target string `yaml:"target"`
}

// ParamDecl is one function parameter.
type ParamDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// FieldDecl is one struct field.
type FieldDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// VariantDecl is one enum variant. Value is optional: a missing value means
// previous + 1, starting at zero, mirroring C enumeration rules.
type VariantDecl struct {
	Name  string `yaml:"name"`
	Value *int64 `yaml:"value"`
}
