package library

import (
	"sort"

	"cbind/internal/config"
	"cbind/internal/diag"
	"cbind/internal/entity"
)

// BuiltLibrary is the completed generation result: the dependency-ordered
// item list (free of Specialization entities, by construction) and the
// exported functions in name order. It is written exactly once.
type BuiltLibrary struct {
	items     []entity.Entity
	functions []*entity.Function
	written   bool
}

// Build computes the dependency closure of the exported function set,
// resolves every specialization node, drops unspecialized templates and
// orders the result: enums first in lexicographic name order, everything
// else in discovery order (which already places dependencies before their
// first dependent in the acyclic case).
//
// The config is consumed at write time only. Per-item failures are reported
// and omitted; Build itself does not fail on them.
func (l *Library) Build(_ *config.Config, rep diag.Reporter) (*BuiltLibrary, error) {
	c := newCollector(l, rep)
	for _, fn := range l.Functions() {
		var refs []string
		fn.ReferencedNames(&refs)
		for _, ref := range refs {
			c.collect(ref)
		}
	}

	built := &BuiltLibrary{}
	for _, dep := range c.out {
		switch v := dep.(type) {
		case *entity.Struct:
			// Unspecialized templates are graph nodes only.
			if v.IsTemplate() {
				continue
			}
		case *entity.Specialization:
			concrete, err := l.specialize(v)
			if err != nil {
				diag.Error(rep, v.Name, "specializing failed: "+err.Error())
				continue
			}
			built.items = append(built.items, concrete)
			continue
		}
		built.items = append(built.items, dep)
	}

	// Enums depend on nobody; hoisting them to the top is always safe and
	// makes the header easier to read. Everything else keeps its DFS order.
	sort.SliceStable(built.items, func(i, j int) bool {
		ei, iEnum := built.items[i].(*entity.Enum)
		ej, jEnum := built.items[j].(*entity.Enum)
		switch {
		case iEnum && jEnum:
			return ei.Name < ej.Name
		case iEnum:
			return true
		default:
			return false
		}
	})

	built.functions = l.Functions()
	return built, nil
}

// Items exposes the final item list for tests and tooling.
func (b *BuiltLibrary) Items() []entity.Entity {
	return b.items
}
