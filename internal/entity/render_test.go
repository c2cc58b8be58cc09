package entity

import (
	"strings"
	"testing"
)

func render(e Entity) string {
	var sb strings.Builder
	EmitC(&sb, e)
	return sb.String()
}

func TestEmitEnum(t *testing.T) {
	e := &Enum{
		Name: "ShapeKind",
		Values: []EnumValue{
			{Name: "Circle", Value: 0},
			{Name: "Rect", Value: 1},
		},
	}
	want := "typedef enum ShapeKind {\n  Circle = 0,\n  Rect = 1,\n} ShapeKind;"
	if got := render(e); got != want {
		t.Fatalf("EmitC =\n%s\nwant\n%s", got, want)
	}
}

func TestEmitStruct(t *testing.T) {
	s := &Struct{
		Name: "Point",
		Fields: []Field{
			{Name: "x", Type: Primitive("int32_t")},
			{Name: "y", Type: Primitive("int32_t")},
		},
	}
	want := "typedef struct Point {\n  int32_t x;\n  int32_t y;\n} Point;"
	if got := render(s); got != want {
		t.Fatalf("EmitC =\n%s\nwant\n%s", got, want)
	}
}

func TestEmitOpaqueStruct(t *testing.T) {
	if got := render(&OpaqueStruct{Name: "Canvas"}); got != "typedef struct Canvas Canvas;" {
		t.Fatalf("EmitC = %q", got)
	}
}

func TestEmitTypedef(t *testing.T) {
	td := &Typedef{Name: "Handle", Underlying: Ptr(Named("Widget"), false)}
	if got := render(td); got != "typedef Widget *Handle;" {
		t.Fatalf("EmitC = %q", got)
	}
}

func TestEmitPrebuiltVerbatim(t *testing.T) {
	src := "#define WIDGET_MAX 16\ntypedef struct Widget Widget;"
	if got := render(&Prebuilt{Name: "Widget", Source: src}); got != src {
		t.Fatalf("EmitC = %q", got)
	}
}

func TestEmitFunctionPrototype(t *testing.T) {
	fn := &Function{
		Name: "canvas_draw",
		Params: []Param{
			{Name: "canvas", Type: Ptr(Named("Canvas"), false)},
			{Name: "count", Type: Primitive("uint32_t")},
		},
		Ret: Primitive("bool"),
	}
	var sb strings.Builder
	EmitFunction(&sb, fn)
	want := "bool canvas_draw(Canvas *canvas, uint32_t count);"
	if got := sb.String(); got != want {
		t.Fatalf("EmitFunction = %q, want %q", got, want)
	}
}

func TestEmitFunctionNoParams(t *testing.T) {
	fn := &Function{Name: "canvas_new", Ret: Ptr(Named("Canvas"), false)}
	var sb strings.Builder
	EmitFunction(&sb, fn)
	if got := sb.String(); got != "Canvas* canvas_new(void);" {
		t.Fatalf("EmitFunction = %q", got)
	}
}

func TestEmitSpecializationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic emitting a specialization")
		}
	}()
	render(&Specialization{Name: "IntPair", Target: "Pair"})
}

func TestEmitTemplatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic emitting a template")
		}
	}()
	render(&Struct{Name: "Pair", GenericParams: []string{"T"}})
}
