package library

import (
	"fmt"
	"strings"

	"cbind/internal/config"
	"cbind/internal/convert"
	"cbind/internal/diag"
	"cbind/internal/entity"
	"cbind/internal/manifest"
)

// Load walks dir for declaration manifests and classifies every declaration
// into the symbol table. Names in ignore are dropped before classification.
// Prebuilts are inserted after ingestion, unconditionally, independent of any
// source-derived entity of the same name.
//
// The config is consumed at write time only; it is accepted here so the load,
// build and write stages share one surface.
func Load(dir string, _ *config.Config, prebuilts []*entity.Prebuilt, ignore map[string]struct{}, rep diag.Reporter) (*Library, error) {
	lib := newLibrary()

	err := manifest.Walk(dir, func(module string, decls []manifest.Decl) error {
		for _, d := range decls {
			if _, skip := ignore[d.Name]; skip {
				continue
			}
			lib.ingest(module, d, rep)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, p := range prebuilts {
		insert(lib.prebuilts, p.Name, p)
	}
	return lib, nil
}

// ingest routes one declaration into a collection or drops it. Every decision
// is reported; none aborts ingestion.
func (l *Library) ingest(module string, d manifest.Decl, rep diag.Reporter) {
	switch d.Kind {
	case manifest.DeclFunction:
		l.ingestFunction(module, d, rep)
	case manifest.DeclStruct:
		l.ingestStruct(module, d, rep)
	case manifest.DeclEnum:
		l.ingestEnum(module, d, rep)
	case manifest.DeclAlias:
		l.ingestAlias(module, d, rep)
	}
}

func (l *Library) ingestFunction(module string, d manifest.Decl, rep diag.Reporter) {
	if !d.Exported {
		diag.Skip(rep, module, d.Name, "no stable exported linkage name")
		return
	}
	if !strings.EqualFold(d.Convention, "c") {
		diag.Skip(rep, module, d.Name, fmt.Sprintf("calling convention %q is not C-compatible", d.Convention))
		return
	}
	fn, err := convert.Function(d)
	if err != nil {
		diag.Skip(rep, module, d.Name, err.Error())
		return
	}
	l.noteOverwrite(insert(l.functions, fn.Name, fn), rep, d.Name, "function")
	diag.Accept(rep, module, d.Name)
}

func (l *Library) ingestStruct(module string, d manifest.Decl, rep diag.Reporter) {
	if d.Layout != "fixed" {
		l.noteOverwrite(insert(l.opaques, d.Name, &entity.OpaqueStruct{Name: d.Name}), rep, d.Name, "opaque struct")
		diag.AcceptWithNote(rep, module, d.Name, "opaque: layout is not declared fixed")
		return
	}
	st, err := convert.Struct(d)
	if err != nil {
		// Fixed layout but not fully representable: keep the name usable
		// as an opaque pointer target.
		l.noteOverwrite(insert(l.opaques, d.Name, &entity.OpaqueStruct{Name: d.Name}), rep, d.Name, "opaque struct")
		diag.AcceptWithNote(rep, module, d.Name, "opaque: "+err.Error())
		return
	}
	l.noteOverwrite(insert(l.structs, st.Name, st), rep, d.Name, "struct")
	diag.Accept(rep, module, d.Name)
}

func (l *Library) ingestEnum(module string, d manifest.Decl, rep diag.Reporter) {
	if len(d.Generics) > 0 || len(d.Lifetimes) > 0 {
		diag.Skip(rep, module, d.Name, "has generic or lifetime parameters")
		return
	}
	if d.Repr != "u32" {
		diag.Skip(rep, module, d.Name, fmt.Sprintf("repr %q is not the fixed 32-bit representation", d.Repr))
		return
	}
	en, err := convert.Enum(d)
	if err != nil {
		diag.Skip(rep, module, d.Name, err.Error())
		return
	}
	l.noteOverwrite(insert(l.enums, en.Name, en), rep, d.Name, "enum")
	diag.Accept(rep, module, d.Name)
}

func (l *Library) ingestAlias(module string, d manifest.Decl, rep diag.Reporter) {
	if len(d.Generics) > 0 || len(d.Lifetimes) > 0 {
		diag.Skip(rep, module, d.Name, "has generic or lifetime parameters")
		return
	}
	sp, specErr := convert.Specialization(d)
	if specErr == nil {
		l.noteOverwrite(insert(l.specializations, sp.Name, sp), rep, d.Name, "specialization")
		diag.Accept(rep, module, d.Name)
		return
	}
	td, typedefErr := convert.Typedef(d)
	if typedefErr == nil {
		l.noteOverwrite(insert(l.typedefs, td.Name, td), rep, d.Name, "typedef")
		diag.Accept(rep, module, d.Name)
		return
	}
	diag.Skip(rep, module, d.Name, fmt.Sprintf("%s and %s", specErr, typedefErr))
}

// noteOverwrite surfaces the last-write-wins policy so a silent collision
// does not mask a user error.
func (l *Library) noteOverwrite(overwrote bool, rep diag.Reporter, name, kind string) {
	if overwrote {
		diag.Warn(rep, name, fmt.Sprintf("replaces an earlier %s of the same name", kind))
	}
}
