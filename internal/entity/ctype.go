package entity

import (
	"fmt"
	"strings"
)

// TypeKind identifies one node shape of the C type expression tree.
type TypeKind uint8

const (
	// TypePrimitive is an already-mapped C spelling (int32_t, double, ...).
	TypePrimitive TypeKind = iota
	// TypeNamed references a library entity by name, optionally instantiating
	// it with concrete type arguments.
	TypeNamed
	// TypePtr is a pointer, optionally to a const pointee.
	TypePtr
	// TypeArray is a fixed-length array.
	TypeArray
	// TypeFuncPtr is a function pointer.
	TypeFuncPtr
)

// Type is one node of a C type expression. Which fields are meaningful
// depends on Kind; the zero value is not a valid type.
type Type struct {
	Kind   TypeKind
	Name   string // TypePrimitive: C spelling; TypeNamed: entity name
	Args   []Type // TypeNamed: concrete generic arguments
	Elem   *Type  // TypePtr, TypeArray
	Const  bool   // TypePtr: pointee is const
	Len    uint32 // TypeArray
	Params []Type // TypeFuncPtr
	Result *Type  // TypeFuncPtr
}

// Primitive builds a TypePrimitive node with the given C spelling.
func Primitive(spelling string) Type {
	return Type{Kind: TypePrimitive, Name: spelling}
}

// Named builds a TypeNamed node referencing a library entity.
func Named(name string, args ...Type) Type {
	return Type{Kind: TypeNamed, Name: name, Args: args}
}

// Ptr builds a pointer to elem.
func Ptr(elem Type, konst bool) Type {
	return Type{Kind: TypePtr, Elem: &elem, Const: konst}
}

// ReferencedNames appends the root name of every Named node in the tree.
func (t Type) ReferencedNames(out *[]string) {
	switch t.Kind {
	case TypePrimitive:
	case TypeNamed:
		*out = append(*out, t.Name)
		for _, a := range t.Args {
			a.ReferencedNames(out)
		}
	case TypePtr, TypeArray:
		t.Elem.ReferencedNames(out)
	case TypeFuncPtr:
		for _, p := range t.Params {
			p.ReferencedNames(out)
		}
		t.Result.ReferencedNames(out)
	}
}

// Substitute replaces every bare Named node whose name has a binding in args,
// recursing through nested instantiations, pointers, arrays and function
// pointers. Named nodes that carry their own type arguments are never
// replaced wholesale; only their arguments are rewritten.
func (t Type) Substitute(args map[string]Type) Type {
	switch t.Kind {
	case TypePrimitive:
		return t
	case TypeNamed:
		if len(t.Args) == 0 {
			if repl, ok := args[t.Name]; ok {
				return repl
			}
			return t
		}
		next := make([]Type, len(t.Args))
		for i, a := range t.Args {
			next[i] = a.Substitute(args)
		}
		return Type{Kind: TypeNamed, Name: t.Name, Args: next}
	case TypePtr:
		elem := t.Elem.Substitute(args)
		return Type{Kind: TypePtr, Elem: &elem, Const: t.Const}
	case TypeArray:
		elem := t.Elem.Substitute(args)
		return Type{Kind: TypeArray, Elem: &elem, Len: t.Len}
	case TypeFuncPtr:
		params := make([]Type, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.Substitute(args)
		}
		result := t.Result.Substitute(args)
		return Type{Kind: TypeFuncPtr, Params: params, Result: &result}
	}
	return t
}

// ContainsNamed reports whether any Named node in the tree matches one of the
// given names. Used to detect residual generic parameters.
func (t Type) ContainsNamed(names map[string]struct{}) bool {
	switch t.Kind {
	case TypeNamed:
		if _, ok := names[t.Name]; ok && len(t.Args) == 0 {
			return true
		}
		for _, a := range t.Args {
			if a.ContainsNamed(names) {
				return true
			}
		}
	case TypePtr, TypeArray:
		return t.Elem.ContainsNamed(names)
	case TypeFuncPtr:
		for _, p := range t.Params {
			if p.ContainsNamed(names) {
				return true
			}
		}
		return t.Result.ContainsNamed(names)
	}
	return false
}

// ContainsInstantiation reports whether any Named node carries type
// arguments. Concrete contexts (function signatures, non-template struct
// fields, specialization results) must be free of instantiations before
// rendering.
func (t Type) ContainsInstantiation() bool {
	switch t.Kind {
	case TypeNamed:
		return len(t.Args) > 0
	case TypePtr, TypeArray:
		return t.Elem.ContainsInstantiation()
	case TypeFuncPtr:
		for _, p := range t.Params {
			if p.ContainsInstantiation() {
				return true
			}
		}
		return t.Result.ContainsInstantiation()
	}
	return false
}

// CDecl renders the type as a C declarator for ident. Pointer, array and
// function-pointer syntax nests inside-out, so the declarator is threaded
// through the recursion rather than concatenated.
func (t Type) CDecl(ident string) string {
	return t.cdecl(ident, false)
}

func (t Type) cdecl(ident string, konst bool) string {
	switch t.Kind {
	case TypePrimitive, TypeNamed:
		base := t.spelling()
		if konst {
			base = "const " + base
		}
		if ident == "" {
			return base
		}
		return base + " " + ident
	case TypePtr:
		inner := "*" + ident
		if t.Elem.Kind == TypeArray || t.Elem.Kind == TypeFuncPtr {
			inner = "(" + inner + ")"
		}
		return t.Elem.cdecl(inner, t.Const)
	case TypeArray:
		return t.Elem.cdecl(fmt.Sprintf("%s[%d]", ident, t.Len), konst)
	case TypeFuncPtr:
		params := make([]string, 0, len(t.Params))
		for _, p := range t.Params {
			params = append(params, p.CType())
		}
		if len(params) == 0 {
			params = append(params, "void")
		}
		return fmt.Sprintf("%s (%s)(%s)", t.Result.CType(), ident, strings.Join(params, ", "))
	}
	panic(fmt.Sprintf("entity: unknown type kind %d", t.Kind))
}

// CType renders the type in a bare type position (casts, return types,
// unnamed parameters).
func (t Type) CType() string {
	switch t.Kind {
	case TypePrimitive, TypeNamed:
		return t.spelling()
	case TypePtr:
		base := t.Elem.CType()
		if t.Const {
			base = "const " + base
		}
		return base + "*"
	case TypeArray:
		return fmt.Sprintf("%s[%d]", t.Elem.CType(), t.Len)
	case TypeFuncPtr:
		params := make([]string, 0, len(t.Params))
		for _, p := range t.Params {
			params = append(params, p.CType())
		}
		if len(params) == 0 {
			params = append(params, "void")
		}
		return fmt.Sprintf("%s (*)(%s)", t.Result.CType(), strings.Join(params, ", "))
	}
	panic(fmt.Sprintf("entity: unknown type kind %d", t.Kind))
}

func (t Type) spelling() string {
	if t.Kind == TypeNamed && len(t.Args) > 0 {
		// Build resolves every instantiation before anything is rendered.
		panic(fmt.Sprintf("entity: unspecialized instantiation %s in C rendering", t.String()))
	}
	return t.Name
}

// String renders the type for diagnostics. Unlike CDecl it never panics and
// keeps generic instantiations in angle-bracket form.
func (t Type) String() string {
	switch t.Kind {
	case TypePrimitive:
		return t.Name
	case TypeNamed:
		if len(t.Args) == 0 {
			return t.Name
		}
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	case TypePtr:
		if t.Const {
			return "*const " + t.Elem.String()
		}
		return "*mut " + t.Elem.String()
	case TypeArray:
		return fmt.Sprintf("[%s; %d]", t.Elem.String(), t.Len)
	case TypeFuncPtr:
		params := make([]string, len(t.Params))
		for i, p := range t.Params {
			params[i] = p.String()
		}
		return fmt.Sprintf("fn(%s) -> %s", strings.Join(params, ", "), t.Result.String())
	}
	return "<invalid>"
}
