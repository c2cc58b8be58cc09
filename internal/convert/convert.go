package convert

import (
	"fmt"

	"fortio.org/safecast"

	"cbind/internal/entity"
	"cbind/internal/manifest"
)

// Function converts a function-shaped declaration. The caller has already
// checked the acceptance gate (exported linkage + C convention); this only
// maps the signature.
func Function(d manifest.Decl) (*entity.Function, error) {
	params := make([]entity.Param, 0, len(d.Params))
	for _, p := range d.Params {
		t, err := ParseType(p.Type)
		if err != nil {
			return nil, fmt.Errorf("parameter %s: %w", p.Name, err)
		}
		if t.ContainsInstantiation() {
			return nil, fmt.Errorf("parameter %s: instantiation %s must be aliased before use in a signature", p.Name, t.String())
		}
		params = append(params, entity.Param{Name: p.Name, Type: t})
	}
	ret := entity.Primitive("void")
	if d.Returns != "" {
		var err error
		ret, err = ParseType(d.Returns)
		if err != nil {
			return nil, fmt.Errorf("return type: %w", err)
		}
		if ret.ContainsInstantiation() {
			return nil, fmt.Errorf("return type: instantiation %s must be aliased before use in a signature", ret.String())
		}
	}
	return &entity.Function{
		Name:           d.Name,
		Params:         params,
		Ret:            ret,
		DestructorSafe: d.DestructorSafe,
	}, nil
}

// Struct converts a fixed-layout struct declaration field by field. Any
// unrepresentable field fails the whole conversion; the ingest loop then
// falls back to an opaque placeholder.
func Struct(d manifest.Decl) (*entity.Struct, error) {
	if len(d.Lifetimes) > 0 {
		return nil, fmt.Errorf("has lifetime parameters")
	}
	fields := make([]entity.Field, 0, len(d.Fields))
	for _, f := range d.Fields {
		t, err := ParseType(f.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		if len(d.Generics) == 0 && t.ContainsInstantiation() {
			return nil, fmt.Errorf("field %s: instantiation %s must be aliased before use in a concrete struct", f.Name, t.String())
		}
		fields = append(fields, entity.Field{Name: f.Name, Type: t})
	}
	return &entity.Struct{
		Name:          d.Name,
		Fields:        fields,
		GenericParams: d.Generics,
	}, nil
}

// Enum converts an enum declaration. The caller has already rejected generic
// or lifetime parameters and non-u32 reprs. Missing discriminants follow C
// rules: previous + 1, starting at zero.
func Enum(d manifest.Decl) (*entity.Enum, error) {
	values := make([]entity.EnumValue, 0, len(d.Variants))
	next := int64(0)
	for _, v := range d.Variants {
		if v.Value != nil {
			next = *v.Value
		}
		value, err := safecast.Conv[uint32](next)
		if err != nil {
			return nil, fmt.Errorf("variant %s: discriminant %d does not fit u32", v.Name, next)
		}
		values = append(values, entity.EnumValue{Name: v.Name, Value: value})
		next++
	}
	return &entity.Enum{Name: d.Name, Values: values}, nil
}

// Specialization converts an alias whose target is a generic instantiation
// with concrete arguments (IntPair = Pair<i32>).
func Specialization(d manifest.Decl) (*entity.Specialization, error) {
	t, err := ParseType(d.Target)
	if err != nil {
		return nil, err
	}
	if t.Kind != entity.TypeNamed || len(t.Args) == 0 {
		return nil, fmt.Errorf("target %s is not a generic instantiation", t.String())
	}
	return &entity.Specialization{
		Name:   d.Name,
		Target: t.Name,
		Args:   t.Args,
	}, nil
}

// Typedef converts an alias with a non-parameterized target.
func Typedef(d manifest.Decl) (*entity.Typedef, error) {
	t, err := ParseType(d.Target)
	if err != nil {
		return nil, err
	}
	if t.Kind == entity.TypeNamed && len(t.Args) > 0 {
		return nil, fmt.Errorf("target %s is a generic instantiation", t.String())
	}
	return &entity.Typedef{Name: d.Name, Underlying: t}, nil
}
