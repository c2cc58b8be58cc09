package entity

import "fmt"

// Entity is the closed sum of declaration kinds. Only the types in this
// package implement it.
type Entity interface {
	entity()
}

// EnumValue is one enum variant with its explicit discriminant.
type EnumValue struct {
	Name  string
	Value uint32
}

// Enum is a C enum with a fixed 32-bit representation. Enums never carry
// generic parameters; the classifier rejects parameterized ones outright.
type Enum struct {
	Name   string
	Values []EnumValue
}

// Field is one struct field.
type Field struct {
	Name string
	Type Type
}

// Struct is a fixed-layout struct. A non-empty GenericParams list makes it a
// template: a valid dependency-graph node that is never itself emitted.
type Struct struct {
	Name          string
	Fields        []Field
	GenericParams []string
}

// IsTemplate reports whether the struct still has unresolved parameters.
func (s *Struct) IsTemplate() bool { return len(s.GenericParams) > 0 }

// OpaqueStruct stands in for a declaration whose layout is not representable.
// It is emitted as an incomplete type, usable only behind a pointer.
type OpaqueStruct struct {
	Name string
}

// Typedef is a non-parameterized alias.
type Typedef struct {
	Name       string
	Underlying Type
}

// Specialization is a parameterized alias: alias name, target template and
// the concrete arguments to instantiate it with. Build resolves every
// specialization into a concrete entity; none survive into output.
type Specialization struct {
	Name   string
	Target string
	Args   []Type
}

// Prebuilt is caller-supplied literal source. It overrides any derived
// entity of the same name.
type Prebuilt struct {
	Name   string
	Source string
}

func (*Enum) entity()           {}
func (*Struct) entity()         {}
func (*OpaqueStruct) entity()   {}
func (*Typedef) entity()        {}
func (*Specialization) entity() {}
func (*Prebuilt) entity()       {}

// Name returns the cross-kind primary key of an entity.
func Name(e Entity) string {
	switch v := e.(type) {
	case *Enum:
		return v.Name
	case *Struct:
		return v.Name
	case *OpaqueStruct:
		return v.Name
	case *Typedef:
		return v.Name
	case *Specialization:
		return v.Name
	case *Prebuilt:
		return v.Name
	}
	panic(fmt.Sprintf("entity: unknown entity %T", e))
}

// KindOf returns the Kind tag of an entity.
func KindOf(e Entity) Kind {
	switch e.(type) {
	case *Enum:
		return KindEnum
	case *Struct:
		return KindStruct
	case *OpaqueStruct:
		return KindOpaqueStruct
	case *Typedef:
		return KindTypedef
	case *Specialization:
		return KindSpecialization
	case *Prebuilt:
		return KindPrebuilt
	}
	panic(fmt.Sprintf("entity: unknown entity %T", e))
}

// ReferencedNames appends the names of entities e references to out. Enum,
// OpaqueStruct and Prebuilt reference nothing. A template struct's own
// generic parameters are not references; they are skipped so the collector
// does not chase placeholder names.
func ReferencedNames(e Entity, out *[]string) {
	switch v := e.(type) {
	case *Enum, *OpaqueStruct, *Prebuilt:
	case *Struct:
		if len(v.GenericParams) == 0 {
			for _, f := range v.Fields {
				f.Type.ReferencedNames(out)
			}
			return
		}
		params := make(map[string]struct{}, len(v.GenericParams))
		for _, p := range v.GenericParams {
			params[p] = struct{}{}
		}
		var raw []string
		for _, f := range v.Fields {
			f.Type.ReferencedNames(&raw)
		}
		for _, name := range raw {
			if _, ok := params[name]; !ok {
				*out = append(*out, name)
			}
		}
	case *Typedef:
		v.Underlying.ReferencedNames(out)
	case *Specialization:
		*out = append(*out, v.Target)
		for _, a := range v.Args {
			a.ReferencedNames(out)
		}
	default:
		panic(fmt.Sprintf("entity: unknown entity %T", e))
	}
}
