package library

import (
	"fmt"

	"cbind/internal/entity"
)

// specialize resolves a parameterized alias into a concrete entity: the
// target template's fields with every generic parameter replaced by the
// corresponding concrete argument, under the alias's own name. The template
// itself stays in the symbol table untouched and is never emitted.
//
// Failures are scoped to this one alias; the caller logs and omits it.
func (l *Library) specialize(s *entity.Specialization) (entity.Entity, error) {
	target, ok := l.Resolve(s.Target)
	if !ok {
		return nil, fmt.Errorf("template %s not found", s.Target)
	}

	switch t := target.(type) {
	case *entity.Struct:
		if len(t.GenericParams) != len(s.Args) {
			return nil, fmt.Errorf("%s expects %d type arguments, %d supplied",
				s.Target, len(t.GenericParams), len(s.Args))
		}
		args := make(map[string]entity.Type, len(t.GenericParams))
		for i, p := range t.GenericParams {
			args[p] = s.Args[i]
		}
		fields := make([]entity.Field, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = entity.Field{Name: f.Name, Type: f.Type.Substitute(args)}
		}
		for _, f := range fields {
			if f.Type.ContainsInstantiation() {
				return nil, fmt.Errorf("field %s still instantiates %s after substitution; alias the nested instantiation separately",
					f.Name, f.Type.String())
			}
		}
		return &entity.Struct{Name: s.Name, Fields: fields}, nil

	case *entity.Enum:
		// Enums never carry generic parameters (the classifier rejects
		// them), so any supplied argument is an arity error.
		return nil, fmt.Errorf("%s expects 0 type arguments, %d supplied", s.Target, len(s.Args))

	default:
		return nil, fmt.Errorf("%s is a %s, not a specializable template", s.Target, entity.KindOf(target))
	}
}
