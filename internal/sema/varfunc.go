package sema

import (
	"strings"

	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
	"github.com/solastlang/solast/pkg/source"
)

// VarFuncPass collects every variable and function declared directly in a
// file (contractNo == nil) or in one contract's body, applying the
// attribute rules spec'd for each (visibility defaults, constant/
// immutable exclusivity, declaration-scope restrictions) and synthesizing
// the accessor function for every public state variable.
func VarFuncPass(ctx *Context, fileNo int, contractNo *int, kind ContractKind, parts []ast.Node, annotations [][]*ast.Annotation, isTopLevel bool) {
	for i, part := range parts {
		anns := AnnotationsFor(annotations, i)
		switch n := part.(type) {
		case *ast.VariableDeclaration:
			ctx.Reject(fileNo, anns, "variable")
			declareVariable(ctx, fileNo, contractNo, kind, n, isTopLevel)
		case *ast.FunctionDefinition:
			ctx.Reject(fileNo, anns, "function")
			declareFunction(ctx, fileNo, contractNo, kind, n)
		case *ast.ModifierDefinition:
			ctx.Reject(fileNo, anns, "modifier")
			declareModifier(ctx, fileNo, contractNo, n)
		}
	}
}

func declareVariable(ctx *Context, fileNo int, contractNo *int, kind ContractKind, n *ast.VariableDeclaration, isTopLevel bool) {
	loc := nodeLoc(fileNo, n)

	if isTopLevel && !n.IsDeclaredConst {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"file-scope variable '%s' must be constant", n.Name))
		return
	}
	if contractNo != nil && kind == KindInterface {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"interfaces cannot declare variables ('%s')", n.Name))
		return
	}
	if contractNo != nil && kind == KindLibrary && !n.IsDeclaredConst {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"library variable '%s' must be constant", n.Name))
		return
	}
	if n.IsDeclaredConst && n.IsImmutable {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"'%s' cannot be both constant and immutable", n.Name))
		return
	}
	if n.IsDeclaredConst && n.Expression == nil {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"constant '%s' has no initializer", n.Name))
		return
	}

	visibility := n.Visibility
	if visibility == "" {
		visibility = "internal"
	}

	overrideNames := overrideBaseNames(n.Override)
	if contractNo != nil {
		for _, name := range overrideNames {
			if !baseDeclaresOverridable(ctx, *contractNo, name) {
				ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
					"override '%s' is not a base of this contract", name))
			}
		}
	}

	v := &Variable{
		Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name, Type: n.TypeName,
		Visibility: visibility, IsConstant: n.IsDeclaredConst, IsImmutable: n.IsImmutable,
		IsStateVariable: contractNo != nil, Initializer: n.Expression, Override: overrideNames,
	}
	idx := len(ctx.Variables)
	ctx.Variables = append(ctx.Variables, v)
	ctx.AddSymbol(fileNo, contractNo, n.Name, loc, Symbol{Kind: SymVariable, Loc: loc, Index: idx, ContractNo: contractNo})

	if contractNo != nil && visibility == "public" {
		synthesizeAccessor(ctx, fileNo, contractNo, v, idx)
	}
}

// overrideBaseNames extracts the base-contract names listed in an
// `override(A, B)` clause; a bare `override` (no parens) parses with an
// empty Override slice and is treated as overriding every base that
// declares the name, which callers skip validating here.
func overrideBaseNames(override []ast.Node) []string {
	var names []string
	for _, o := range override {
		if u, ok := o.(*ast.UserDefinedTypeName); ok {
			names = append(names, u.NamePath)
		}
	}
	return names
}

func baseDeclaresOverridable(ctx *Context, contractNo int, baseName string) bool {
	for _, b := range ctx.Contracts[contractNo].Bases {
		if ctx.Contracts[b.ContractNo].Name == baseName {
			return true
		}
	}
	return false
}

// synthesizeAccessor creates the implicit public getter a state variable
// of visibility "public" exposes, registered in the function namespace
// under the variable's own name. Per Solidity's accessor rules it takes
// one parameter per mapping-key/array-dimension of the declared type,
// peeling dimensions off until the remaining type is scalar, and returns
// that scalar - a mapping nested inside a returned struct field has no
// parameter that could select into it, so that shape is rejected instead.
func synthesizeAccessor(ctx *Context, fileNo int, contractNo *int, v *Variable, varIdx int) {
	loc := v.Loc

	params, retType, ok := accessorShape(ctx, contractNo, loc, v.Type)
	if !ok {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"public state variable '%s' cannot have an automatic accessor: its type returns a mapping nested in a struct", v.Name))
		return
	}

	fn := &Function{
		Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: v.Name,
		Parameters:       params,
		ReturnParameters: []Variable{{Loc: loc, Name: "", Type: retType}},
		Mutability:       MutabilityView,
		Visibility:       "external",
		IsAccessor:       true,
		Signature:        v.Name + "(" + signatureParams(params) + ")",
	}
	idx := len(ctx.Functions)
	ctx.Functions = append(ctx.Functions, fn)
	ctx.AddSymbol(fileNo, contractNo, v.Name, loc, Symbol{Kind: SymFunction, Loc: loc, Overloads: []Overload{{Loc: loc, Index: idx}}})
}

// accessorShape walks t, peeling one synthesized parameter per mapping
// key or array dimension - the mapping's key type, or a uint256 index
// for an array - until it reaches a scalar (non-mapping, non-array)
// type, which becomes the sole return type. It fails if that scalar is a
// struct with a mapping field, since no parameter list could ever select
// a value out of such a field.
func accessorShape(ctx *Context, contractNo *int, loc source.Loc, t ast.Node) ([]Variable, ast.Node, bool) {
	var params []Variable
	for {
		switch n := t.(type) {
		case *ast.Mapping:
			params = append(params, Variable{Loc: loc, Type: n.KeyType})
			t = n.ValueType
		case *ast.ArrayTypeName:
			params = append(params, Variable{Loc: loc, Type: &ast.ElementaryTypeName{Name: "uint256"}})
			t = n.BaseTypeName
		default:
			if structHasMappingField(ctx, contractNo, t) {
				return nil, nil, false
			}
			return params, t, true
		}
	}
}

// structHasMappingField reports whether t names a struct (resolved in
// contractNo's scope, falling back to file scope) that declares a
// mapping field.
func structHasMappingField(ctx *Context, contractNo *int, t ast.Node) bool {
	u, ok := t.(*ast.UserDefinedTypeName)
	if !ok {
		return false
	}
	st := lookupStructByName(ctx, contractNo, u.NamePath)
	if st == nil {
		return false
	}
	for _, f := range st.Fields {
		if _, isMapping := f.Type.(*ast.Mapping); isMapping {
			return true
		}
	}
	return false
}

func lookupStructByName(ctx *Context, contractNo *int, name string) *StructType {
	if contractNo != nil {
		for _, s := range ctx.Structs {
			if s.Name == name && s.ContractNo != nil && *s.ContractNo == *contractNo {
				return s
			}
		}
	}
	for _, s := range ctx.Structs {
		if s.Name == name && s.ContractNo == nil {
			return s
		}
	}
	return nil
}

func declareFunction(ctx *Context, fileNo int, contractNo *int, kind ContractKind, n *ast.FunctionDefinition) {
	loc := nodeLoc(fileNo, n)

	if n.Body == nil && kind != KindAbstract && kind != KindInterface && !n.IsVirtual {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"function '%s' has no body and is not marked virtual, abstract, or declared in an interface", functionLabel(n)))
	}
	if contractNo == nil && (len(n.Modifiers) > 0 || n.IsVirtual || len(n.Override) > 0) {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"modifiers, 'virtual', and 'override' are only allowed on contract-scope functions ('%s')", functionLabel(n)))
	}

	params := convertParams(fileNo, n.Parameters)
	rets := convertParams(fileNo, n.ReturnParameters)

	name := n.Name
	switch {
	case n.IsConstructor:
		name = "constructor"
	case n.IsFallback:
		name = "fallback"
	case n.IsReceiveEther:
		name = "receive"
	}
	signature := name + "(" + signatureParams(params) + ")"

	if prevLoc, collides := overloadCollision(ctx, fileNo, contractNo, name, signature, func(idx int) string {
		return ctx.Functions[idx].Signature
	}); collides {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"overloaded %s with this signature already exist", functionKindLabel(n)).
			WithNote(prevLoc, "location of previous definition"))
		return
	}

	fn := &Function{
		Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name,
		Parameters: params, ReturnParameters: rets,
		Mutability:    parseMutability(n.StateMutability),
		Visibility:    defaultVisibility(n.Visibility, contractNo),
		IsConstructor: n.IsConstructor, IsFallback: n.IsFallback, IsReceive: n.IsReceiveEther,
		Signature: signature,
		Body:      n.Body,
		Modifiers: n.Modifiers,
	}

	idx := len(ctx.Functions)
	ctx.Functions = append(ctx.Functions, fn)

	ctx.AddSymbol(fileNo, contractNo, name, loc, Symbol{Kind: SymFunction, Loc: loc, Overloads: []Overload{{Loc: loc, Index: idx}}})
}

// declareModifier interns a modifier declaration. Modifiers do not
// overload: a contract scope may declare a name as a modifier exactly
// once, enforced by AddSymbol's ordinary (non-overload) collision path.
func declareModifier(ctx *Context, fileNo int, contractNo *int, n *ast.ModifierDefinition) {
	loc := nodeLoc(fileNo, n)

	if contractNo == nil {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"modifier '%s' can only be declared inside a contract, abstract contract, or library", n.Name))
		return
	}
	if n.Body == nil && !n.IsVirtual {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"modifier '%s' has no body and is not marked virtual", n.Name))
	}

	mod := &Modifier{
		Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name,
		Parameters: convertParams(fileNo, n.Parameters),
		Body:       n.Body,
		IsVirtual:  n.IsVirtual,
	}
	idx := len(ctx.Modifiers)
	ctx.Modifiers = append(ctx.Modifiers, mod)
	ctx.AddSymbol(fileNo, contractNo, n.Name, loc, Symbol{Kind: SymModifier, Loc: loc, Index: idx})
}

func functionLabel(n *ast.FunctionDefinition) string {
	switch {
	case n.IsConstructor:
		return "constructor"
	case n.IsFallback:
		return "fallback"
	case n.IsReceiveEther:
		return "receive"
	default:
		return n.Name
	}
}

// functionKindLabel names the kind of callable n declares, independent of
// its given name - "function" for an ordinary named function, or the
// keyword for the three unnamed special forms. Mirrors the Display of
// original_source's pt::FunctionTy, which the signature-collision message
// interpolates.
func functionKindLabel(n *ast.FunctionDefinition) string {
	switch {
	case n.IsConstructor:
		return "constructor"
	case n.IsFallback:
		return "fallback"
	case n.IsReceiveEther:
		return "receive"
	default:
		return "function"
	}
}

func defaultVisibility(v string, contractNo *int) string {
	if v != "" {
		return v
	}
	if contractNo == nil {
		return "internal"
	}
	return "public"
}

func parseMutability(s string) Mutability {
	switch s {
	case "pure":
		return MutabilityPure
	case "view", "constant":
		return MutabilityView
	case "payable":
		return MutabilityPayable
	default:
		return MutabilityNonPayable
	}
}

func convertParams(fileNo int, decls []*ast.VariableDeclaration) []Variable {
	vars := make([]Variable, 0, len(decls))
	for _, d := range decls {
		vars = append(vars, Variable{Loc: nodeLoc(fileNo, d), Name: d.Name, Type: d.TypeName})
	}
	return vars
}

func signatureParams(vars []Variable) string {
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = typeNameString(v.Type)
	}
	return strings.Join(names, ",")
}

// typeNameString renders a parsed type node back to Solidity source text
// for signature/selector computation. Only the elementary and
// user-defined-name cases are common enough in function signatures to be
// worth a direct case; anything else falls back to its node type tag,
// which is good enough for diagnostic text but not for ABI selectors.
func typeNameString(n ast.Node) string {
	switch t := n.(type) {
	case *ast.ElementaryTypeName:
		return t.Name
	case *ast.UserDefinedTypeName:
		return t.NamePath
	case nil:
		return ""
	default:
		return string(n.GetType())
	}
}
