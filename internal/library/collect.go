package library

import (
	"cbind/internal/diag"
	"cbind/internal/entity"
)

// collector computes the transitive closure of referenced entities as a DFS
// preorder with a dependency-before-dependent bias: an entity's dependencies
// are appended before the entity itself, and the first occurrence of a name
// wins. A name already present in the output is never reprocessed.
//
// The visiting set breaks true reference cycles (struct A holds a pointer to
// B and vice versa): rediscovering a name that is still in progress
// terminates that edge, and both entities are still emitted in discovery
// order.
type collector struct {
	lib      *Library
	rep      diag.Reporter
	out      []entity.Entity
	done     map[string]struct{}
	visiting map[string]struct{}
}

func newCollector(lib *Library, rep diag.Reporter) *collector {
	return &collector{
		lib:      lib,
		rep:      rep,
		done:     make(map[string]struct{}),
		visiting: make(map[string]struct{}),
	}
}

// collect resolves name and appends its dependency closure, then the entity
// itself. An unresolvable name is a warning and a silent gap, never a crash.
func (c *collector) collect(name string) {
	if _, ok := c.done[name]; ok {
		return
	}
	if _, ok := c.visiting[name]; ok {
		return
	}
	e, ok := c.lib.Resolve(name)
	if !ok {
		diag.Warn(c.rep, name, "unresolved dependency name")
		return
	}

	c.visiting[name] = struct{}{}
	var refs []string
	entity.ReferencedNames(e, &refs)
	for _, ref := range refs {
		c.collect(ref)
	}
	delete(c.visiting, name)

	if _, ok := c.done[name]; !ok {
		c.done[name] = struct{}{}
		c.out = append(c.out, e)
	}
}
