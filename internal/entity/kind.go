package entity

// Kind identifies one variant of the Entity sum.
type Kind uint8

const (
	// KindEnum is a fixed-repr C enum.
	KindEnum Kind = iota
	// KindStruct is a struct with a known, fixed layout.
	KindStruct
	// KindOpaqueStruct is a forward declaration without a visible layout.
	KindOpaqueStruct
	// KindTypedef is a non-parameterized type alias.
	KindTypedef
	// KindSpecialization is a parameterized alias awaiting monomorphization.
	KindSpecialization
	// KindPrebuilt is caller-supplied literal source.
	KindPrebuilt
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindStruct:
		return "struct"
	case KindOpaqueStruct:
		return "opaque struct"
	case KindTypedef:
		return "typedef"
	case KindSpecialization:
		return "specialization"
	case KindPrebuilt:
		return "prebuilt"
	}
	return "unknown"
}
