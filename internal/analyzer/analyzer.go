// Package analyzer drives the per-file analysis pipeline: parse, then run
// the semantic passes in internal/sema over the resulting parse tree, for
// the root file and everything it (transitively) imports.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/solastlang/solast/internal/config"
	"github.com/solastlang/solast/internal/resolvefs"
	"github.com/solastlang/solast/internal/sema"
	"github.com/solastlang/solast/internal/slogx"
	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/parser"
	"github.com/solastlang/solast/pkg/source"
)

// Driver owns the shared FileSet, resolver, and semantic Context for one
// invocation of the analyzer across a root file and its import graph.
type Driver struct {
	Files    *source.FileSet
	Resolver *resolvefs.Resolver
	Ctx      *sema.Context
	Log      *slogx.Logger

	// RunID identifies this Driver's run. AnalyzeRoot logs it once, at
	// debug level, in its "run start" record together with the root path;
	// phase log lines do not carry it and AnalyzeSnippet does not log it.
	RunID string

	units map[int]*ast.SourceUnit
}

// New builds a Driver wired from cfg's remap/include entries, logging
// phase transitions at verbosity.
func New(cfg *config.Config, verbosity int) *Driver {
	files := source.NewFileSet()
	resolver := resolvefs.New(files)
	for _, e := range cfg.Entries() {
		resolver.AddEntry(e)
	}

	return &Driver{
		Files:    files,
		Resolver: resolver,
		Ctx:      sema.NewContext(files),
		Log:      slogx.Default(verbosity),
		RunID:    uuid.NewString(),
		units:    make(map[int]*ast.SourceUnit),
	}
}

// AnalyzeRoot resolves, parses, and fully analyzes path and every file it
// imports (directly or transitively), returning the root file's number.
func (d *Driver) AnalyzeRoot(ctx context.Context, path string) (int, error) {
	d.Log.Logger.DebugContext(ctx, "run start", slog.String("run_id", d.RunID), slog.String("root", path))

	fileNo, err := d.Resolver.Resolve(path, -1, "")
	if err != nil {
		return 0, fmt.Errorf("analyzer: %w", err)
	}
	if err := d.analyzeFile(ctx, fileNo); err != nil {
		return 0, err
	}
	return fileNo, nil
}

// analyzeFile runs the full pass pipeline over one already-resolved file,
// recursing into its imports as they're discovered. It is passed to
// sema.ImportsPass as the AnalyzeFunc callback so import resolution can
// trigger recursive analysis without an import cycle between analyzer
// and sema.
func (d *Driver) analyzeFile(ctx context.Context, fileNo int) error {
	f := d.Files.Get(fileNo)
	d.Log.Phase(ctx, "parse", f.FullPath)

	unit, err := parser.Parse(f.Contents, &parser.Options{Tolerant: true, Loc: true, Range: true})
	if err != nil {
		return fmt.Errorf("analyzer: parse %s: %w", f.FullPath, err)
	}
	d.units[fileNo] = unit
	d.Log.PhaseDone(ctx, "parse", f.FullPath, 0)

	d.Log.Phase(ctx, "annotate", f.FullPath)
	topAnnotations := sema.AnnotatePass(d.Ctx, fileNo, unit)

	d.Log.Phase(ctx, "typedecl", f.FullPath)
	contracts := sema.TypeDeclPass(d.Ctx, fileNo, unit, topAnnotations)

	d.Log.Phase(ctx, "pragma", f.FullPath)
	sema.PragmaPass(d.Ctx, fileNo, unit, topAnnotations)

	d.Log.Phase(ctx, "import", f.FullPath)
	sema.ImportsPass(d.Ctx, d.Resolver, fileNo, unit, topAnnotations, d.analyzeFile2(ctx))

	d.Log.Phase(ctx, "contract-base", f.FullPath)
	for _, c := range contracts {
		sema.ContractBasePass(d.Ctx, fileNo, c.No, c.Node)
	}
	sema.LinearizePass(d.Ctx)

	d.Log.Phase(ctx, "varfunc", f.FullPath)
	sema.VarFuncPass(d.Ctx, fileNo, nil, sema.KindContract, unit.Children, topAnnotations, true)
	for _, c := range contracts {
		sema.ContractTypeDeclPass(d.Ctx, fileNo, c.No, c.Node)
		attached := d.Ctx.ContractAnnotationsFor(c.Node)
		sema.VarFuncPass(d.Ctx, fileNo, &c.No, d.Ctx.Contracts[c.No].Kind, c.Node.SubNodes, attached, false)
	}

	d.Log.Phase(ctx, "using", f.FullPath)
	for _, part := range unit.Children {
		if u, ok := part.(*ast.UsingForDeclaration); ok {
			sema.UsingPass(d.Ctx, fileNo, nil, u)
		}
	}
	for _, c := range contracts {
		for _, part := range c.Node.SubNodes {
			if u, ok := part.(*ast.UsingForDeclaration); ok {
				sema.UsingPass(d.Ctx, fileNo, &c.No, u)
			}
		}
	}

	d.Log.Phase(ctx, "mutability", f.FullPath)
	sema.MutabilityPass(d.Ctx, fileNo, nil)
	for _, c := range contracts {
		sema.MutabilityPass(d.Ctx, fileNo, &c.No)
	}

	d.Log.PhaseDone(ctx, "analyze", f.FullPath, len(d.Ctx.Diagnostics.All()))
	return nil
}

// analyzeFile2 adapts analyzeFile's (context.Context, int) error signature
// to the sema.AnalyzeFunc shape, closing over the caller's context.Context.
func (d *Driver) analyzeFile2(ctx context.Context) sema.AnalyzeFunc {
	return func(fileNo int) error {
		return d.analyzeFile(ctx, fileNo)
	}
}

// Unit returns the parsed source unit for fileNo, or nil if it hasn't
// been analyzed (or failed to parse).
func (d *Driver) Unit(fileNo int) *ast.SourceUnit {
	return d.units[fileNo]
}

// AnalyzeSnippet runs the full pass pipeline over a file already registered
// directly in d.Files (bypassing the resolver), for callers such as a REPL
// that feed in-memory source with no import-resolvable path.
func (d *Driver) AnalyzeSnippet(ctx context.Context, fileNo int) error {
	return d.analyzeFile(ctx, fileNo)
}
