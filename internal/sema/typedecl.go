package sema

import (
	"strings"

	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
)

// DeclaredContract pairs a parsed contract body with the Context.Contracts
// index TypeDeclPass assigned it, so later passes (contract-base, using,
// varfunc, mutability) can process its body without re-searching for it.
type DeclaredContract struct {
	Node *ast.ContractDefinition
	No   int
}

// TypeDeclPass interns every enum, struct, event, error, user-defined
// value type, and contract declared directly in unit, registering each
// under its own name in the appropriate namespace. Struct/event/error
// field lists are filled in during this same pass since this resolver
// does not yet support forward-referencing field types across files; a
// struct naming a not-yet-interned type later in the same file still
// resolves because Go's map iteration order does not matter here -
// field *types* are copied as raw ast.Node, resolved properly by a later
// type-checking pass outside this package's scope.
func TypeDeclPass(ctx *Context, fileNo int, unit *ast.SourceUnit, annotations [][]*ast.Annotation) []DeclaredContract {
	var contracts []DeclaredContract
	for i, part := range unit.Children {
		if c, ok := part.(*ast.ContractDefinition); ok {
			contracts = append(contracts, DeclaredContract{Node: c, No: declareContract(ctx, fileNo, c)})
			continue
		}
		declareItem(ctx, fileNo, nil, part, AnnotationsFor(annotations, i))
	}
	return contracts
}

// ContractTypeDeclPass interns the type-like members (enums, structs,
// events, errors, user-defined value types) of one already-registered
// contract; variables, functions and modifiers in the body are handled
// by varfunc.go.
func ContractTypeDeclPass(ctx *Context, fileNo int, contractNo int, c *ast.ContractDefinition) {
	attached := ctx.ContractAnnotationsFor(c)
	for i, part := range c.SubNodes {
		var anns []*ast.Annotation
		if i < len(attached) {
			anns = attached[i]
		}
		declareItem(ctx, fileNo, &contractNo, part, anns)
	}
}

func declareItem(ctx *Context, fileNo int, contractNo *int, part ast.Node, anns []*ast.Annotation) {
	switch n := part.(type) {
	case *ast.EnumDefinition:
		declareEnum(ctx, fileNo, contractNo, n)
	case *ast.StructDefinition:
		declareStruct(ctx, fileNo, contractNo, n)
	case *ast.EventDefinition:
		declareEvent(ctx, fileNo, contractNo, n)
	case *ast.ErrorDefinition:
		declareError(ctx, fileNo, contractNo, n)
	case *ast.UserDefinedValueTypeDefinition:
		declareUserType(ctx, fileNo, contractNo, n)
	default:
		_ = anns // consumed by varfunc.go/contractbase.go for non-type items
	}
}

func declareEnum(ctx *Context, fileNo int, contractNo *int, n *ast.EnumDefinition) {
	loc := nodeLoc(fileNo, n)

	if len(n.Members) == 0 {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration, "enum '%s' has no values", n.Name))
		return
	}
	if len(n.Members) >= 256 {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"enum '%s' has %d values, which exceeds the maximum of 255", n.Name, len(n.Members)))
		return
	}

	seen := make(map[string]bool, len(n.Members))
	values := make([]string, 0, len(n.Members))
	for _, m := range n.Members {
		if seen[m.Name] {
			ctx.Diagnostics.Push(diag.TypedErrorf(nodeLoc(fileNo, m), diag.KindDeclaration,
				"duplicate enum value '%s' in enum '%s'", m.Name, n.Name).
				WithNote(loc, "enum declared here"))
			continue
		}
		seen[m.Name] = true
		values = append(values, m.Name)
	}

	entry := &EnumType{Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name, Values: values}
	idx := len(ctx.Enums)
	ctx.Enums = append(ctx.Enums, entry)
	ctx.AddSymbol(fileNo, contractNo, n.Name, loc, Symbol{Kind: SymEnum, Loc: loc, Index: idx})
}

func declareStruct(ctx *Context, fileNo int, contractNo *int, n *ast.StructDefinition) {
	loc := nodeLoc(fileNo, n)

	fields := make([]StructField, 0, len(n.Members))
	for _, m := range n.Members {
		fields = append(fields, StructField{Loc: nodeLoc(fileNo, m), Name: m.Name, Type: m.TypeName})
	}

	entry := &StructType{Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name, Fields: fields}
	idx := len(ctx.Structs)
	ctx.Structs = append(ctx.Structs, entry)
	ctx.AddSymbol(fileNo, contractNo, n.Name, loc, Symbol{Kind: SymStruct, Loc: loc, Index: idx})
}

func declareEvent(ctx *Context, fileNo int, contractNo *int, n *ast.EventDefinition) {
	loc := nodeLoc(fileNo, n)

	fields := make([]FieldLike, 0, len(n.Parameters))
	indexed := make([]bool, 0, len(n.Parameters))
	for _, p := range n.Parameters {
		fields = append(fields, FieldLike{Loc: nodeLoc(fileNo, p), Name: p.Name, Type: p.TypeName})
		indexed = append(indexed, p.IsIndexed)
	}

	signature := n.Name + "(" + eventSignatureParams(fields) + ")"

	if prevLoc, collides := overloadCollision(ctx, fileNo, contractNo, n.Name, signature, func(idx int) string {
		return ctx.Events[idx].Signature
	}); collides {
		ctx.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"overloaded event with this signature already exist").
			WithNote(prevLoc, "location of previous definition"))
		return
	}

	entry := &EventType{
		Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name,
		Fields: fields, Indexed: indexed, IsAnonymous: n.IsAnonymous, Signature: signature,
	}
	idx := len(ctx.Events)
	ctx.Events = append(ctx.Events, entry)

	// events overload: reuse the same symbol-merge machinery as functions.
	ctx.AddSymbol(fileNo, contractNo, n.Name, loc, Symbol{Kind: SymEvent, Loc: loc, Overloads: []Overload{{Loc: loc, Index: idx}}})
}

func eventSignatureParams(fields []FieldLike) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = typeNameString(f.Type)
	}
	return strings.Join(names, ",")
}

func declareError(ctx *Context, fileNo int, contractNo *int, n *ast.ErrorDefinition) {
	loc := nodeLoc(fileNo, n)

	fields := make([]FieldLike, 0, len(n.Parameters))
	for _, p := range n.Parameters {
		fields = append(fields, FieldLike{Loc: nodeLoc(fileNo, p), Name: p.Name, Type: p.TypeName})
	}

	entry := &ErrorType{Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name, Fields: fields}
	idx := len(ctx.Errors)
	ctx.Errors = append(ctx.Errors, entry)
	ctx.AddSymbol(fileNo, contractNo, n.Name, loc, Symbol{Kind: SymError, Loc: loc, Index: idx})
}

func declareUserType(ctx *Context, fileNo int, contractNo *int, n *ast.UserDefinedValueTypeDefinition) {
	loc := nodeLoc(fileNo, n)

	entry := &UserType{Loc: loc, FileNo: fileNo, ContractNo: contractNo, Name: n.Name, UnderlyingType: n.UnderlyingType}
	idx := len(ctx.Types)
	ctx.Types = append(ctx.Types, entry)
	ctx.AddSymbol(fileNo, contractNo, n.Name, loc, Symbol{Kind: SymUserType, Loc: loc, Index: idx})
}

func declareContract(ctx *Context, fileNo int, n *ast.ContractDefinition) int {
	loc := nodeLoc(fileNo, n)

	kind := KindContract
	switch n.Kind {
	case "interface":
		kind = KindInterface
	case "library":
		kind = KindLibrary
	case "abstract":
		kind = KindAbstract
	}

	entry := &Contract{Loc: loc, FileNo: fileNo, Name: n.Name, Kind: kind}
	idx := len(ctx.Contracts)
	ctx.Contracts = append(ctx.Contracts, entry)
	ctx.AddSymbol(fileNo, nil, n.Name, loc, Symbol{Kind: SymContract, Loc: loc, Index: idx})
	return idx
}
