package sema

import (
	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
)

// ContractBasePass resolves the base-contract list of one already-interned
// contract, building the directed child-to-base edge set and rejecting
// cyclic, duplicate, self-referential, or kind-incompatible bases
// (libraries can't be bases or have bases; interfaces can only extend
// other interfaces).
func ContractBasePass(ctx *Context, fileNo, contractNo int, node *ast.ContractDefinition) {
	contract := ctx.Contracts[contractNo]

	if len(node.BaseContracts) > 0 && contract.Kind == KindLibrary {
		ctx.Diagnostics.Push(diag.TypedErrorf(nodeLoc(fileNo, node), diag.KindDeclaration,
			"library '%s' cannot have a base contract", contract.Name))
		return
	}

	for _, spec := range node.BaseContracts {
		resolveBase(ctx, fileNo, contractNo, spec)
	}
}

func resolveBase(ctx *Context, fileNo, contractNo int, spec *ast.InheritanceSpecifier) {
	contract := ctx.Contracts[contractNo]
	loc := nodeLoc(fileNo, spec)

	name := ""
	if spec.BaseName != nil {
		name = spec.BaseName.Name
	}

	sym, ok := ctx.LookupVariable(fileNo, nil, name)
	if !ok || sym.Kind != SymContract {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration, "'%s' is not a contract", name))
		return
	}
	baseNo := sym.Index

	switch {
	case baseNo == contractNo:
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"contract '%s' cannot have itself as a base contract", name))
	case hasBase(ctx, contractNo, baseNo):
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"contract '%s' duplicate base '%s'", contract.Name, name))
	case IsBase(ctx, contractNo, baseNo):
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"base '%s' from contract '%s' is cyclic", name, contract.Name))
	case contract.Kind == KindInterface && ctx.Contracts[baseNo].Kind != KindInterface:
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"interface '%s' cannot have a non-interface base '%s'", contract.Name, name))
	case ctx.Contracts[baseNo].Kind == KindLibrary:
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"library '%s' cannot be used as base contract for '%s'", name, contract.Name))
	default:
		// Base constructor arguments are not resolved here: no variables have
		// been resolved yet, so constant expressions in the argument list
		// aren't available. They are kept as parsed in Base.Arguments.
		contract.Bases = append(contract.Bases, Base{Loc: loc, ContractNo: baseNo, Arguments: spec.Arguments})
	}
}

func hasBase(ctx *Context, contractNo, baseNo int) bool {
	for _, b := range ctx.Contracts[contractNo].Bases {
		if b.ContractNo == baseNo {
			return true
		}
	}
	return false
}

// IsBase reports whether base is base or an ancestor of derived,
// reflexively and transitively.
func IsBase(ctx *Context, base, derived int) bool {
	if base == derived {
		return true
	}
	for _, b := range ctx.Contracts[derived].Bases {
		if IsBase(ctx, base, b.ContractNo) {
			return true
		}
	}
	return false
}

// LinearizePass computes the rightmost-first post-order base linearization
// for every interned contract, after every contract's base list has been
// resolved by ContractBasePass.
func LinearizePass(ctx *Context) {
	for i, c := range ctx.Contracts {
		var order []int
		seen := make(map[int]bool)
		var visit func(no int)
		visit = func(no int) {
			bases := ctx.Contracts[no].Bases
			for j := len(bases) - 1; j >= 0; j-- {
				visit(bases[j].ContractNo)
			}
			if !seen[no] {
				seen[no] = true
				order = append(order, no)
			}
		}
		visit(i)
		c.Linearized = order
	}
}
