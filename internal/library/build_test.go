package library

import (
	"strings"
	"testing"

	"cbind/internal/diag"
	"cbind/internal/entity"
	"cbind/internal/manifest"
)

func buildAll(t *testing.T, decls []manifest.Decl, rep diag.Reporter) *BuiltLibrary {
	t.Helper()
	lib := ingestAll(decls, rep)
	built, err := lib.Build(nil, rep)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return built
}

func itemNames(b *BuiltLibrary) []string {
	names := make([]string, 0, len(b.Items()))
	for _, item := range b.Items() {
		names = append(names, entity.Name(item))
	}
	return names
}

func equalNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("items = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("items = %v, want %v", got, want)
		}
	}
}

// Scenario A: a function over primitives only produces no items.
func TestBuildFunctionOnly(t *testing.T) {
	built := buildAll(t, []manifest.Decl{
		cFunction("add", "i32",
			manifest.ParamDecl{Name: "a", Type: "i32"},
			manifest.ParamDecl{Name: "b", Type: "i32"},
		),
	}, nil)

	if len(built.Items()) != 0 {
		t.Fatalf("items = %v, want none", itemNames(built))
	}
	if len(built.functions) != 1 {
		t.Fatalf("functions = %d, want 1", len(built.functions))
	}
}

// Scenario B: a valid but unreferenced struct is pruned.
func TestBuildPrunesUnreachable(t *testing.T) {
	built := buildAll(t, []manifest.Decl{
		fixedStruct("Point",
			manifest.FieldDecl{Name: "x", Type: "i32"},
			manifest.FieldDecl{Name: "y", Type: "i32"},
		),
		cFunction("add", "i32"),
	}, nil)

	for _, name := range itemNames(built) {
		if name == "Point" {
			t.Fatal("unreachable Point was not pruned")
		}
	}
}

// Scenario C: a parameterized alias becomes one concrete struct; the
// template itself never reaches the output.
func TestBuildSpecializesAlias(t *testing.T) {
	built := buildAll(t, []manifest.Decl{
		{
			Kind: manifest.DeclStruct, Name: "Pair", Layout: "fixed",
			Generics: []string{"T"},
			Fields: []manifest.FieldDecl{
				{Name: "first", Type: "T"},
				{Name: "second", Type: "T"},
			},
		},
		{Kind: manifest.DeclAlias, Name: "IntPair", Target: "Pair<i32>"},
		cFunction("make_pair", "IntPair",
			manifest.ParamDecl{Name: "a", Type: "i32"},
			manifest.ParamDecl{Name: "b", Type: "i32"},
		),
	}, nil)

	equalNames(t, itemNames(built), []string{"IntPair"})
	st, ok := built.Items()[0].(*entity.Struct)
	if !ok {
		t.Fatalf("item = %T", built.Items()[0])
	}
	if st.IsTemplate() {
		t.Fatal("specialized struct still has generic params")
	}
	if len(st.Fields) != 2 ||
		st.Fields[0].Type.CType() != "int32_t" ||
		st.Fields[1].Type.CType() != "int32_t" {
		t.Fatalf("fields = %+v", st.Fields)
	}
}

// Scenario E: a prebuilt shadows the derived struct of the same name.
func TestBuildPrebuiltOverride(t *testing.T) {
	lib := ingestAll([]manifest.Decl{
		fixedStruct("Widget", manifest.FieldDecl{Name: "id", Type: "u32"}),
		cFunction("widget_id", "u32", manifest.ParamDecl{Name: "w", Type: "*const Widget"}),
	}, nil)
	insert(lib.prebuilts, "Widget", &entity.Prebuilt{Name: "Widget", Source: "/* hand-rolled Widget */"})

	built, err := lib.Build(nil, diag.NopReporter{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	equalNames(t, itemNames(built), []string{"Widget"})
	if _, ok := built.Items()[0].(*entity.Prebuilt); !ok {
		t.Fatalf("item = %T, want prebuilt", built.Items()[0])
	}
}

func TestBuildEnumHoisting(t *testing.T) {
	built := buildAll(t, []manifest.Decl{
		{Kind: manifest.DeclEnum, Name: "Zeta", Repr: "u32", Variants: []manifest.VariantDecl{{Name: "Z"}}},
		{Kind: manifest.DeclEnum, Name: "Alpha", Repr: "u32", Variants: []manifest.VariantDecl{{Name: "A"}}},
		fixedStruct("Carrier",
			manifest.FieldDecl{Name: "z", Type: "Zeta"},
			manifest.FieldDecl{Name: "a", Type: "Alpha"},
		),
		cFunction("use_carrier", "void", manifest.ParamDecl{Name: "c", Type: "Carrier"}),
	}, nil)

	// Discovery order is Zeta, Alpha, Carrier; enums hoist to the front in
	// name order, everything else keeps discovery order.
	equalNames(t, itemNames(built), []string{"Alpha", "Zeta", "Carrier"})

	seenNonEnum := false
	for _, item := range built.Items() {
		if _, isEnum := item.(*entity.Enum); isEnum {
			if seenNonEnum {
				t.Fatal("enum after a non-enum item")
			}
			continue
		}
		seenNonEnum = true
	}
}

func TestBuildClosureCompleteAndDeduplicated(t *testing.T) {
	built := buildAll(t, []manifest.Decl{
		{Kind: manifest.DeclStruct, Name: "Canvas"}, // opaque
		{Kind: manifest.DeclAlias, Name: "Handle", Target: "*mut Canvas"},
		fixedStruct("Point",
			manifest.FieldDecl{Name: "x", Type: "i32"},
			manifest.FieldDecl{Name: "y", Type: "i32"},
		),
		cFunction("canvas_plot", "void",
			manifest.ParamDecl{Name: "h", Type: "Handle"},
			manifest.ParamDecl{Name: "p", Type: "Point"},
		),
		cFunction("canvas_release", "void", manifest.ParamDecl{Name: "h", Type: "Handle"}),
	}, nil)

	// Canvas appears exactly once even though two functions reach it, and it
	// precedes the typedef that depends on it.
	equalNames(t, itemNames(built), []string{"Canvas", "Handle", "Point"})
}

func TestBuildNoResidualSpecializations(t *testing.T) {
	built := buildAll(t, []manifest.Decl{
		{
			Kind: manifest.DeclStruct, Name: "Pair", Layout: "fixed",
			Generics: []string{"T"},
			Fields:   []manifest.FieldDecl{{Name: "first", Type: "T"}},
		},
		{Kind: manifest.DeclAlias, Name: "IntPair", Target: "Pair<i32>"},
		{Kind: manifest.DeclAlias, Name: "PairPair", Target: "Pair<IntPair>"},
		cFunction("f", "IntPair"),
		cFunction("g", "PairPair"),
	}, nil)

	for _, item := range built.Items() {
		if _, ok := item.(*entity.Specialization); ok {
			t.Fatalf("specialization %s in final items", entity.Name(item))
		}
		if st, ok := item.(*entity.Struct); ok && st.IsTemplate() {
			t.Fatalf("template %s in final items", st.Name)
		}
	}
}

func TestBuildWrongArityIsPerItem(t *testing.T) {
	bag := diag.NewBag()
	built := buildAll(t, []manifest.Decl{
		{
			Kind: manifest.DeclStruct, Name: "Pair", Layout: "fixed",
			Generics: []string{"T"},
			Fields:   []manifest.FieldDecl{{Name: "first", Type: "T"}},
		},
		{Kind: manifest.DeclAlias, Name: "BadPair", Target: "Pair<i32, i32>"},
		fixedStruct("Point", manifest.FieldDecl{Name: "x", Type: "i32"}),
		cFunction("f", "void",
			manifest.ParamDecl{Name: "b", Type: "BadPair"},
			manifest.ParamDecl{Name: "p", Type: "Point"},
		),
	}, bag)

	// The failing alias is omitted; the rest of the build continues.
	equalNames(t, itemNames(built), []string{"Point"})
	if !bag.HasErrors() {
		t.Fatal("arity mismatch produced no error record")
	}
	found := false
	for _, rec := range bag.Items() {
		if rec.Verdict == diag.VerdictError && rec.Subject == "BadPair" &&
			strings.Contains(rec.Reason, "expects 1 type arguments, 2 supplied") {
			found = true
		}
	}
	if !found {
		t.Fatalf("no arity error record for BadPair: %+v", bag.Items())
	}
}

func TestBuildUnresolvedDependencyWarns(t *testing.T) {
	bag := diag.NewBag()
	built := buildAll(t, []manifest.Decl{
		cFunction("mystery", "void", manifest.ParamDecl{Name: "m", Type: "Phantom"}),
	}, bag)

	if len(built.Items()) != 0 {
		t.Fatalf("items = %v, want none", itemNames(built))
	}
	rec, ok := bag.FindSubject("Phantom")
	if !ok || rec.Verdict != diag.VerdictWarning {
		t.Fatalf("record = %+v", rec)
	}
}

func TestBuildMutualRecursionTerminates(t *testing.T) {
	built := buildAll(t, []manifest.Decl{
		fixedStruct("Ping", manifest.FieldDecl{Name: "other", Type: "*mut Pong"}),
		fixedStruct("Pong", manifest.FieldDecl{Name: "other", Type: "*mut Ping"}),
		cFunction("serve", "void", manifest.ParamDecl{Name: "p", Type: "*mut Ping"}),
	}, nil)

	equalNames(t, itemNames(built), []string{"Pong", "Ping"})
}

func TestBuildRootsFollowFunctionNameOrder(t *testing.T) {
	// beta_fn sorts before zeta_fn, so beta_fn's chain is discovered first
	// even though zeta_fn was ingested first.
	built := buildAll(t, []manifest.Decl{
		fixedStruct("FromZeta", manifest.FieldDecl{Name: "v", Type: "i32"}),
		fixedStruct("FromBeta", manifest.FieldDecl{Name: "v", Type: "i32"}),
		cFunction("zeta_fn", "void", manifest.ParamDecl{Name: "a", Type: "FromZeta"}),
		cFunction("beta_fn", "void", manifest.ParamDecl{Name: "a", Type: "FromBeta"}),
	}, nil)

	equalNames(t, itemNames(built), []string{"FromBeta", "FromZeta"})
}
