package entity

// Param is one function parameter.
type Param struct {
	Name string
	Type Type
}

// Function is an exported, C-callable function. DestructorSafe is carried
// through from the source annotation for downstream tooling; it does not
// change how the prototype is rendered.
type Function struct {
	Name           string
	Params         []Param
	Ret            Type
	DestructorSafe bool
}

// ReferencedNames appends the names of every entity the signature touches.
func (f *Function) ReferencedNames(out *[]string) {
	f.Ret.ReferencedNames(out)
	for _, p := range f.Params {
		p.Type.ReferencedNames(out)
	}
}
