package sema

import (
	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
	"github.com/solastlang/solast/pkg/source"
)

// operatorArity reports how many parameters a function bound to op must
// take, after accounting for '-' meaning either unary Negate (1 param) or
// binary Subtract (2 params) - the one ambiguous symbol in the set.
var operatorArity = map[string][]int{
	"+": {2}, "-": {1, 2}, "*": {2}, "/": {2}, "%": {2},
	"&": {2}, "|": {2}, "^": {2}, "~": {1},
	"==": {2}, "!=": {2}, "<": {2}, "<=": {2}, ">": {2}, ">=": {2},
}

// UsingPass resolves one `using ... for ...;` directive, either library
// form (binds every function in a library to the target type) or
// function-list form (binds named functions, optionally as operators).
// contractNo is nil for a file-scope directive.
func UsingPass(ctx *Context, fileNo int, contractNo *int, n *ast.UsingForDeclaration) {
	loc := nodeLoc(fileNo, n)

	if n.IsGlobal && contractNo != nil {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"'global' using directive must be at file scope"))
		return
	}

	if n.LibraryName != "" {
		resolveUsingLibrary(ctx, fileNo, contractNo, n, loc)
		return
	}
	resolveUsingFunctions(ctx, fileNo, contractNo, n, loc)
}

func resolveUsingLibrary(ctx *Context, fileNo int, contractNo *int, n *ast.UsingForDeclaration, loc source.Loc) {
	sym, ok := ctx.LookupVariable(fileNo, contractNo, n.LibraryName)
	if !ok || sym.Kind != SymContract || ctx.Contracts[sym.Index].Kind != KindLibrary {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"library expected but '%s' is not a library", n.LibraryName))
		return
	}

	if contractNo == nil {
		return // file-scope library bindings are recorded lazily by callers that need them; nothing to attach to yet.
	}

	c := ctx.Contracts[*contractNo]
	c.UsingLibs = append(c.UsingLibs, UsingLibrary{Loc: loc, LibraryNo: sym.Index, TargetType: n.TypeName})
}

func resolveUsingFunctions(ctx *Context, fileNo int, contractNo *int, n *ast.UsingForDeclaration, loc source.Loc) {
	var bindings []FunctionBinding

	for i, name := range n.Functions {
		op := ""
		if i < len(n.Operators) {
			op = n.Operators[i]
		}

		sym, ok := ctx.LookupFunction(fileNo, contractNo, name)
		if !ok {
			ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
				"using: function '%s' not found", name))
			continue
		}
		if len(sym.Overloads) > 1 {
			d := diag.TypedErrorf(loc, diag.KindDeclaration, "'%s' is an overloaded function", name)
			for _, ov := range sym.Overloads {
				d = d.WithNote(ov.Loc, "definition of '"+name+"'")
			}
			ctx.Diagnostics.Push(d)
			continue
		}

		funcNo := sym.Overloads[0].Index
		fn := ctx.Functions[funcNo]

		if fn.ContractNo != nil && ctx.Contracts[*fn.ContractNo].Kind != KindLibrary {
			ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
				"'%s' is not a library function", name))
			continue
		}
		if len(fn.Parameters) == 0 {
			ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
				"'%s' has no arguments, at least one is required", name))
			continue
		}

		if op != "" {
			if contractNo != nil || !n.IsGlobal || n.TypeName == nil {
				ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
					"operator '%s' can only be bound in a global using directive naming a concrete type", op))
				continue
			}
			arities, known := operatorArity[op]
			if !known {
				ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration, "unknown operator '%s'", op))
				continue
			}
			if !containsInt(arities, len(fn.Parameters)) {
				ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
					"operator '%s' requires a function taking %d argument(s)", op, arities[len(arities)-1]))
				continue
			}
			if fn.Mutability != MutabilityPure {
				ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
					"operator '%s' requires a pure function", op))
				continue
			}
		}

		bindings = append(bindings, FunctionBinding{Loc: loc, FunctionNo: funcNo, Operator: op})
	}

	if contractNo != nil {
		c := ctx.Contracts[*contractNo]
		c.UsingFuncs = append(c.UsingFuncs, UsingFunctions{Loc: loc, TargetType: n.TypeName, Global: n.IsGlobal, Bindings: bindings})
	}
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
