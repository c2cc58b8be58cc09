package entity

import (
	"fmt"
	"io"
	"strings"
)

// EmitC renders one entity as C source, without surrounding blank lines.
// Specialization must have been resolved away by the build step; one reaching
// this switch is a defect in the orderer, so it panics rather than degrading
// the output silently.
func EmitC(w io.Writer, e Entity) {
	switch v := e.(type) {
	case *Enum:
		fmt.Fprintf(w, "typedef enum %s {\n", v.Name)
		for _, val := range v.Values {
			fmt.Fprintf(w, "  %s = %d,\n", val.Name, val.Value)
		}
		fmt.Fprintf(w, "} %s;", v.Name)
	case *Struct:
		if v.IsTemplate() {
			panic(fmt.Sprintf("entity: template %s<%s> reached the emitter",
				v.Name, strings.Join(v.GenericParams, ", ")))
		}
		fmt.Fprintf(w, "typedef struct %s {\n", v.Name)
		for _, f := range v.Fields {
			fmt.Fprintf(w, "  %s;\n", f.Type.CDecl(f.Name))
		}
		fmt.Fprintf(w, "} %s;", v.Name)
	case *OpaqueStruct:
		fmt.Fprintf(w, "typedef struct %s %s;", v.Name, v.Name)
	case *Typedef:
		fmt.Fprintf(w, "typedef %s;", v.Underlying.CDecl(v.Name))
	case *Specialization:
		panic(fmt.Sprintf("entity: specialization %s reached the emitter", v.Name))
	case *Prebuilt:
		io.WriteString(w, v.Source)
	default:
		panic(fmt.Sprintf("entity: unknown entity %T", e))
	}
}

// EmitFunction renders a function prototype.
func EmitFunction(w io.Writer, f *Function) {
	params := make([]string, 0, len(f.Params))
	for _, p := range f.Params {
		params = append(params, p.Type.CDecl(p.Name))
	}
	if len(params) == 0 {
		params = append(params, "void")
	}
	fmt.Fprintf(w, "%s %s(%s);", f.Ret.CType(), f.Name, strings.Join(params, ", "))
}
