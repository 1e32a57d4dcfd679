package sema

import (
	"github.com/solastlang/solast/internal/resolvefs"
	"github.com/solastlang/solast/internal/strutil"
	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
	"github.com/solastlang/solast/pkg/source"
)

// AnalyzeFunc recursively runs the full pass pipeline on the file resolved
// for an import, returning an error only when setup (not semantic
// analysis) fails. The analyzer driver supplies this so the import pass
// can recurse without sema importing the driver package.
type AnalyzeFunc func(fileNo int) error

// ImportsPass resolves every top-level import directive in unit: it
// unescapes and resolves the path, recurses into the target file via
// analyze, then copies symbols into the importing file's namespace
// according to the plain/global-alias/rename-list form used.
func ImportsPass(ctx *Context, resolver *resolvefs.Resolver, fileNo int, unit *ast.SourceUnit, annotations [][]*ast.Annotation, analyze AnalyzeFunc) {
	for i, part := range unit.Children {
		imp, ok := part.(*ast.ImportDirective)
		if !ok {
			continue
		}
		ctx.Reject(fileNo, AnnotationsFor(annotations, i), "import")
		resolveImport(ctx, resolver, fileNo, imp, analyze)
	}
}

func resolveImport(ctx *Context, resolver *resolvefs.Resolver, fileNo int, imp *ast.ImportDirective, analyze AnalyzeFunc) {
	loc := nodeLoc(fileNo, imp)

	if imp.Path == "" {
		ctx.Diagnostics.Push(diag.Errorf(loc, "import path empty"))
		return
	}

	filename, err := strutil.Unescape(imp.Path)
	if err != nil {
		ctx.Diagnostics.Push(diag.Errorf(loc, "invalid import path: %s", err))
		return
	}

	parentDir := ""
	if f := ctx.Files.Get(fileNo); f != nil {
		parentDir = dirOf(f.FullPath)
	}

	importFileNo, err := resolver.Resolve(filename, fileNo, parentDir)
	if err != nil {
		ctx.Diagnostics.Push(diag.Errorf(loc, "%s", err.Error()))
		return
	}

	if ctx.MarkAnalyzed(importFileNo) {
		if err := analyze(importFileNo); err != nil {
			ctx.Diagnostics.Push(diag.Errorf(loc, "import analysis failed: %s", err))
			return
		}
	}

	switch {
	case imp.UnitAlias != "":
		ctx.AddSymbol(fileNo, nil, imp.UnitAlias, loc, Symbol{Kind: SymImport, Loc: loc, Index: importFileNo})

	case len(imp.SymbolAliases) > 0:
		importRenames(ctx, fileNo, importFileNo, filename, loc, imp.SymbolAliases)

	default:
		importPlain(ctx, fileNo, importFileNo)
	}
}

// importPlain copies every file-scope symbol (variable-namespace entries
// at any contract scope, function-namespace entries only at file scope)
// exported by importFileNo into fileNo's namespace.
func importPlain(ctx *Context, fileNo, importFileNo int) {
	for k, sym := range ctx.VariableSymbols {
		if k.FileNo != importFileNo {
			continue
		}
		mergeSymbol(ctx, fileNo, k.ContractNo, k.Name, sym)
	}
	for k, sym := range ctx.FunctionSymbols {
		if k.FileNo != importFileNo || k.ContractNo != nil {
			continue
		}
		mergeSymbol(ctx, fileNo, nil, k.Name, sym)
	}
}

// importRenames copies only the named symbols, each optionally renamed via
// `as`, reporting an error for any name the source file doesn't export.
// The parse tree only records a location for the import directive as a
// whole, not per listed symbol, so every diagnostic here points at loc.
func importRenames(ctx *Context, fileNo, importFileNo int, filename string, loc source.Loc, aliases []*ast.ImportSymbol) {
	for _, alias := range aliases {
		targetName := alias.Symbol
		localName := targetName
		if alias.Alias != "" {
			localName = alias.Alias
		}

		if sym, ok := ctx.VariableSymbols[key(importFileNo, nil, targetName)]; ok {
			mergeSymbol(ctx, fileNo, nil, localName, sym)
			continue
		}
		if sym, ok := ctx.FunctionSymbols[key(importFileNo, nil, targetName)]; ok {
			mergeSymbol(ctx, fileNo, nil, localName, sym)
			continue
		}

		ctx.Diagnostics.Push(diag.Errorf(loc,
			"import '%s' does not export '%s'", filename, targetName))
	}
}

// mergeSymbol installs symbol under (fileNo, contractNo, name) only if no
// identical entry is already present, matching the "don't re-add the
// exact same definition twice" guard the import resolver applies so
// re-exporting a name through two different import chains isn't flagged
// as a redeclaration.
func mergeSymbol(ctx *Context, fileNo int, contractNo *int, name string, symbol Symbol) {
	table := ctx.VariableSymbols
	if symbol.Kind == SymFunction || symbol.Kind == SymEvent {
		table = ctx.FunctionSymbols
	}
	k := key(fileNo, contractNo, name)
	if existing, ok := table[k]; ok && sameSymbol(existing, symbol) {
		return
	}
	ctx.AddSymbol(fileNo, contractNo, name, symbol.Loc, symbol)
}

func sameSymbol(a, b Symbol) bool {
	return a.Kind == b.Kind && a.Index == b.Index && len(a.Overloads) == len(b.Overloads)
}

func dirOf(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[:i]
		}
	}
	return ""
}
