package sema

import (
	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
)

// Access is the ordered lattice a function's declared state mutability
// permits: None < Read < Write < Value. A function whose body needs a
// level beyond what it declares is a hard error; a function that
// declares more than its body needs (other than an accessor or
// constructor) is a downgrade warning.
type Access int

const (
	AccessNone Access = iota
	AccessRead
	AccessWrite
	AccessValue
)

func (a Access) String() string {
	switch a {
	case AccessRead:
		return "read"
	case AccessWrite:
		return "write"
	case AccessValue:
		return "value"
	default:
		return "none"
	}
}

func declaredAccess(m Mutability) Access {
	switch m {
	case MutabilityPure:
		return AccessNone
	case MutabilityView:
		return AccessRead
	case MutabilityPayable:
		return AccessValue
	default:
		return AccessWrite
	}
}

// MutabilityPass checks every function interned for fileNo/contractNo
// against the Access its body actually requires.
func MutabilityPass(ctx *Context, fileNo int, contractNo *int) {
	for _, fn := range ctx.Functions {
		if fn.FileNo != fileNo || !sameContract(fn.ContractNo, contractNo) {
			continue
		}
		if fn.Body == nil || fn.IsAccessor {
			continue
		}
		checkFunctionMutability(ctx, fn)
	}
}

func sameContract(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func checkFunctionMutability(ctx *Context, fn *Function) {
	stateNames := stateVariableNames(ctx, fn.ContractNo)

	walker := &mutabilityWalker{stateNames: stateNames}
	ast.Walk(fn.Body, walker)

	for _, inv := range fn.Modifiers {
		mod := resolveModifier(ctx, fn.ContractNo, inv.Name)
		if mod != nil && mod.Body != nil {
			ast.Walk(mod.Body, walker)
		}
	}

	declared := declaredAccess(fn.Mutability)
	if walker.required > declared {
		ctx.Diagnostics.Push(diag.TypedErrorf(fn.Loc, diag.KindDeclaration,
			"function declared '%s' but %s state", mutabilityLabel(fn.Mutability), accessVerb(walker.required)))
		return
	}

	if walker.required < declared && !fn.IsConstructor {
		ctx.Diagnostics.Push(diag.Warningf(fn.Loc,
			"function can be declared '%s' instead of '%s'", mutabilityLabel(mutabilityFor(walker.required)), mutabilityLabel(fn.Mutability)))
	}
}

// resolveModifier finds the modifier named name visible to a function
// declared on contractNo: first the contract's own modifiers, then its
// linearized base contracts in the same rightmost-first order the
// contract-base pass computed, mirroring how a function's own body
// resolves a base or modifier invocation by name.
func resolveModifier(ctx *Context, contractNo *int, name string) *Modifier {
	if contractNo == nil {
		return nil
	}
	for _, m := range ctx.Modifiers {
		if m.ContractNo != nil && *m.ContractNo == *contractNo && m.Name == name {
			return m
		}
	}
	for _, baseNo := range ctx.Contracts[*contractNo].Linearized {
		for _, m := range ctx.Modifiers {
			if m.ContractNo != nil && *m.ContractNo == baseNo && m.Name == name {
				return m
			}
		}
	}
	return nil
}

func stateVariableNames(ctx *Context, contractNo *int) map[string]bool {
	names := make(map[string]bool)
	if contractNo == nil {
		return names
	}
	for _, v := range ctx.Variables {
		if v.IsStateVariable && v.ContractNo != nil && *v.ContractNo == *contractNo {
			names[v.Name] = true
		}
	}
	return names
}

func mutabilityFor(a Access) Mutability {
	switch a {
	case AccessNone:
		return MutabilityPure
	case AccessRead:
		return MutabilityView
	case AccessValue:
		return MutabilityPayable
	default:
		return MutabilityNonPayable
	}
}

func mutabilityLabel(m Mutability) string {
	switch m {
	case MutabilityPure:
		return "pure"
	case MutabilityView:
		return "view"
	case MutabilityPayable:
		return "payable"
	default:
		return "nonpayable"
	}
}

func accessVerb(a Access) string {
	switch a {
	case AccessRead:
		return "reads"
	case AccessWrite:
		return "writes"
	case AccessValue:
		return "accesses value sent to"
	default:
		return "does not touch"
	}
}

// mutabilityWalker is a minimal ast.Visitor (via BaseVisitor) that tracks
// the highest Access level a function body demonstrably needs: writing to
// a known state-variable name, reading one, or referencing msg.value.
// This is a syntactic approximation - it does not resolve identifiers
// through scopes, so a local variable that shadows a state variable name
// is conservatively treated as a state access.
type mutabilityWalker struct {
	ast.BaseVisitor
	stateNames map[string]bool
	required   Access
}

func (w *mutabilityWalker) bump(a Access) {
	if a > w.required {
		w.required = a
	}
}

var assignmentOperators = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
}

func (w *mutabilityWalker) VisitBinaryOperation(node *ast.BinaryOperation) bool {
	if assignmentOperators[node.Operator] && w.isStateRef(node.Left) {
		w.bump(AccessWrite)
	}
	return true
}

func (w *mutabilityWalker) VisitUnaryOperation(node *ast.UnaryOperation) bool {
	if node.Operator == "++" || node.Operator == "--" {
		if w.isStateRef(node.SubExpression) {
			w.bump(AccessWrite)
		}
	}
	return true
}

func (w *mutabilityWalker) VisitIdentifier(node *ast.Identifier) bool {
	if w.stateNames[node.Name] {
		w.bump(AccessRead)
	}
	return true
}

func (w *mutabilityWalker) VisitMemberAccess(node *ast.MemberAccess) bool {
	if id, ok := node.Expression.(*ast.Identifier); ok && id.Name == "msg" && node.MemberName == "value" {
		w.bump(AccessValue)
	}
	return true
}

func (w *mutabilityWalker) isStateRef(n ast.Node) bool {
	switch e := n.(type) {
	case *ast.Identifier:
		return w.stateNames[e.Name]
	case *ast.IndexAccess:
		return w.isStateRef(e.Base)
	case *ast.MemberAccess:
		return w.isStateRef(e.Expression)
	default:
		return false
	}
}
