package entity

import (
	"reflect"
	"testing"
)

func TestCDeclDeclarators(t *testing.T) {
	i32 := Primitive("int32_t")
	cases := []struct {
		name string
		typ  Type
		want string
	}{
		{"primitive", i32, "int32_t x"},
		{"named", Named("Point"), "Point x"},
		{"ptr", Ptr(Named("Point"), false), "Point *x"},
		{"const ptr", Ptr(Named("Point"), true), "const Point *x"},
		{"ptr to ptr", Ptr(Ptr(i32, false), false), "int32_t **x"},
		{"array", Type{Kind: TypeArray, Elem: &i32, Len: 4}, "int32_t x[4]"},
		{
			"ptr to array",
			Ptr(Type{Kind: TypeArray, Elem: &i32, Len: 4}, false),
			"int32_t (*x)[4]",
		},
		{
			"func ptr",
			Type{Kind: TypeFuncPtr, Params: []Type{i32, i32}, Result: &i32},
			"int32_t (x)(int32_t, int32_t)",
		},
		{
			"ptr to func",
			Ptr(Type{Kind: TypeFuncPtr, Params: []Type{i32}, Result: &i32}, false),
			"int32_t (*x)(int32_t)",
		},
	}
	for _, tc := range cases {
		if got := tc.typ.CDecl("x"); got != tc.want {
			t.Errorf("%s: CDecl = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestCTypeBarePositions(t *testing.T) {
	i32 := Primitive("int32_t")
	if got := Ptr(Named("Canvas"), false).CType(); got != "Canvas*" {
		t.Errorf("CType = %q, want %q", got, "Canvas*")
	}
	if got := Ptr(i32, true).CType(); got != "const int32_t*" {
		t.Errorf("CType = %q, want %q", got, "const int32_t*")
	}
}

func TestSpellingPanicsOnInstantiation(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic rendering an unspecialized instantiation")
		}
	}()
	_ = Named("Pair", Primitive("int32_t")).CDecl("x")
}

func TestSubstituteNestedInstantiations(t *testing.T) {
	// Wrapper<T> with field type Pair<T> substituted with T=int32_t.
	field := Named("Pair", Named("T"))
	got := field.Substitute(map[string]Type{"T": Primitive("int32_t")})
	want := Named("Pair", Primitive("int32_t"))
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Substitute = %s, want %s", got.String(), want.String())
	}
}

func TestSubstituteThroughPointers(t *testing.T) {
	typ := Ptr(Named("T"), true)
	got := typ.Substitute(map[string]Type{"T": Named("Widget")})
	if got.Kind != TypePtr || got.Elem.Name != "Widget" || !got.Const {
		t.Fatalf("Substitute = %s, want *const Widget", got.String())
	}
}

func TestSubstituteLeavesUnboundNames(t *testing.T) {
	typ := Named("Point")
	got := typ.Substitute(map[string]Type{"T": Primitive("int32_t")})
	if !reflect.DeepEqual(got, typ) {
		t.Fatalf("Substitute rewrote an unbound name: %s", got.String())
	}
}

func TestReferencedNames(t *testing.T) {
	var names []string
	Named("Pair", Named("Point"), Ptr(Named("Canvas"), false)).ReferencedNames(&names)
	want := []string{"Pair", "Point", "Canvas"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("ReferencedNames = %v, want %v", names, want)
	}

	names = nil
	Primitive("int32_t").ReferencedNames(&names)
	if len(names) != 0 {
		t.Fatalf("primitive referenced %v", names)
	}
}

func TestContainsInstantiation(t *testing.T) {
	if !Ptr(Named("Pair", Primitive("int32_t")), false).ContainsInstantiation() {
		t.Error("pointer to instantiation not detected")
	}
	if Named("Pair").ContainsInstantiation() {
		t.Error("bare name flagged as instantiation")
	}
}

func TestTemplateStructSkipsOwnParams(t *testing.T) {
	tmpl := &Struct{
		Name: "Pair",
		Fields: []Field{
			{Name: "first", Type: Named("T")},
			{Name: "second", Type: Ptr(Named("Arena"), false)},
		},
		GenericParams: []string{"T"},
	}
	var names []string
	ReferencedNames(tmpl, &names)
	want := []string{"Arena"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("ReferencedNames = %v, want %v", names, want)
	}
}

func TestFunctionReferencedNames(t *testing.T) {
	fn := &Function{
		Name: "canvas_draw",
		Params: []Param{
			{Name: "canvas", Type: Ptr(Named("Canvas"), false)},
			{Name: "kind", Type: Named("ShapeKind")},
		},
		Ret: Named("DrawResult"),
	}
	var names []string
	fn.ReferencedNames(&names)
	want := []string{"DrawResult", "Canvas", "ShapeKind"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("ReferencedNames = %v, want %v", names, want)
	}
}
