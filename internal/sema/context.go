// Package sema implements the semantic resolver: the ordered sequence of
// visitor passes (annotation, type-declaration, pragma, import, contract-
// base, variable/function, using/operator-binding, mutability) that turn a
// parse tree into a resolved, diagnosable program, plus the shared Context
// each pass reads from and mutates.
package sema

import (
	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/diag"
	"github.com/solastlang/solast/pkg/source"
	"github.com/solastlang/solast/pkg/version"
)

// SymbolKind tags the variant carried by a Symbol.
type SymbolKind int

const (
	SymEnum SymbolKind = iota
	SymStruct
	SymEvent
	SymError
	SymFunction
	SymVariable
	SymContract
	SymImport
	SymUserType
	SymModifier
)

// Overload is one (location, entity index) pair inside an overload-capable
// symbol (Function, Event).
type Overload struct {
	Loc   source.Loc
	Index int
}

// Symbol is the tagged union bound to a name in one of the Context's two
// namespaces. Event and Function entries carry a list of Overloads; every
// other kind carries exactly one (Loc, Index) pair directly.
type Symbol struct {
	Kind       SymbolKind
	Loc        source.Loc
	Index      int
	ContractNo *int // set only for SymVariable
	Overloads  []Overload
}

// SymbolKey identifies an entry in one of the Context's namespaces:
// (file_no, contract_no?, name).
type SymbolKey struct {
	FileNo     int
	ContractNo *int
	Name       string
}

func key(fileNo int, contractNo *int, name string) SymbolKey {
	var cn *int
	if contractNo != nil {
		c := *contractNo
		cn = &c
	}
	return SymbolKey{FileNo: fileNo, ContractNo: cn, Name: name}
}

// PragmaKind tags the Pragma variant.
type PragmaKind int

const (
	PragmaIdentifier PragmaKind = iota
	PragmaStringLiteral
	PragmaSolidityVersion
)

// Pragma is one resolved `pragma ...;` directive.
type Pragma struct {
	Kind     PragmaKind
	Loc      source.Loc
	Name     string
	Value    string
	Versions []version.Req
}

// EnumType is an interned enum declaration.
type EnumType struct {
	Loc     source.Loc
	FileNo  int
	ContractNo *int
	Name    string
	Values  []string
}

// StructField is one resolved field of a StructType.
type StructField struct {
	Loc  source.Loc
	Name string
	Type ast.Node
}

// StructType is an interned struct declaration. Fields is filled in when
// the struct is declared, each field's type kept as its unresolved
// parse-tree node; there is no deferred field-resolution step.
type StructType struct {
	Loc        source.Loc
	FileNo     int
	ContractNo *int
	Name       string
	Fields     []StructField
}

// FieldLike is an event/error field, structurally identical to StructField
// but tracked separately because events/errors allow overloading on field
// tuple while structs do not.
type FieldLike = StructField

// EventType is an interned event declaration.
type EventType struct {
	Loc         source.Loc
	FileNo      int
	ContractNo  *int
	Name        string
	Fields      []FieldLike
	Indexed     []bool
	IsAnonymous bool
	Signature   string
}

// ErrorType is an interned custom error declaration.
type ErrorType struct {
	Loc        source.Loc
	FileNo     int
	ContractNo *int
	Name       string
	Fields     []FieldLike
}

// UserType is an interned `type X is underlying;` declaration.
type UserType struct {
	Loc            source.Loc
	FileNo         int
	ContractNo     *int
	Name           string
	UnderlyingType ast.Node
}

// Base is one resolved base-contract specifier.
type Base struct {
	Loc        source.Loc
	ContractNo int
	Arguments  []ast.Node
}

// ContractKind mirrors the PT's contract kind.
type ContractKind int

const (
	KindContract ContractKind = iota
	KindAbstract
	KindInterface
	KindLibrary
)

// Contract is an interned contract/interface/library declaration.
type Contract struct {
	Loc         source.Loc
	FileNo      int
	Name        string
	Kind        ContractKind
	Bases       []Base
	Linearized  []int // rightmost-first post-order base linearization
	UsingLibs   []UsingLibrary
	UsingFuncs  []UsingFunctions
}

// UsingLibrary is a resolved `using L for T;` directive.
type UsingLibrary struct {
	Loc        source.Loc
	LibraryNo  int
	TargetType ast.Node // nil means `*`
}

// UsingFunctions is a resolved `using { f, g as op } for T [global];`
// directive.
type UsingFunctions struct {
	Loc        source.Loc
	TargetType ast.Node
	Global     bool
	Bindings   []FunctionBinding
}

// FunctionBinding attaches one function symbol to a using directive,
// optionally as an operator.
type FunctionBinding struct {
	Loc        source.Loc
	FunctionNo int
	Operator   string // "" when not an operator binding
}

// Mutability mirrors the declared state-mutability of a function.
type Mutability int

const (
	MutabilityPure Mutability = iota
	MutabilityView
	MutabilityNonPayable
	MutabilityPayable
)

// Function is an interned function/constructor/fallback/receive
// declaration.
type Function struct {
	Loc             source.Loc
	FileNo          int
	ContractNo      *int
	Name            string
	Parameters      []Variable
	ReturnParameters []Variable
	Mutability      Mutability
	Visibility      string
	IsConstructor   bool
	IsFallback      bool
	IsReceive       bool
	IsAccessor      bool // synthesized public-variable accessor
	Signature       string
	Body            *ast.Block
	Modifiers       []*ast.ModifierInvocation
}

// Modifier is an interned modifier declaration.
type Modifier struct {
	Loc        source.Loc
	FileNo     int
	ContractNo *int
	Name       string
	Parameters []Variable
	Body       *ast.Block
	IsVirtual  bool
}

// Variable is an interned variable (state, local, or parameter) declaration.
type Variable struct {
	Loc             source.Loc
	FileNo          int
	ContractNo      *int
	Name            string
	Type            ast.Node
	Visibility      string
	IsConstant      bool
	IsImmutable     bool
	IsStateVariable bool
	Initializer     ast.Node
	Override        []string
}

// Context is the single mutable aggregate shared by every semantic pass
// for one compile. It is not safe for concurrent use; the CLI's analyze
// command shares one Context across all the root files it is given, and
// the repl creates one per snippet.
type Context struct {
	Files       *source.FileSet
	Diagnostics *diag.Collector

	Pragmas []Pragma

	Enums   []*EnumType
	Structs []*StructType
	Events  []*EventType
	Errors  []*ErrorType
	Types   []*UserType
	Contracts []*Contract
	Functions []*Function
	Modifiers []*Modifier
	Variables []*Variable

	FunctionSymbols map[SymbolKey]Symbol
	VariableSymbols map[SymbolKey]Symbol

	// analyzedFiles tracks which file_no values have already been pushed
	// through the pass pipeline, so the import resolver does not re-run it
	// on a file reached via two different import paths.
	analyzedFiles map[int]bool

	// contractAnnotations holds, per contract, the annotations collected
	// for each of its surviving sub-nodes (same index as SubNodes after
	// AnnotatePass strips annotation/stray-semicolon entries).
	contractAnnotations map[*ast.ContractDefinition][][]*ast.Annotation

	nextID int
}

// NewContext creates an empty Context over files.
func NewContext(files *source.FileSet) *Context {
	return &Context{
		Files:                files,
		Diagnostics:          diag.NewCollector(),
		FunctionSymbols:      make(map[SymbolKey]Symbol),
		VariableSymbols:      make(map[SymbolKey]Symbol),
		analyzedFiles:        make(map[int]bool),
		contractAnnotations:  make(map[*ast.ContractDefinition][][]*ast.Annotation),
	}
}

// NextID returns a fresh, monotonically increasing identifier, used by
// passes that need a process-unique tag independent of any entity slice
// index (e.g. using-directive bookkeeping).
func (c *Context) NextID() int {
	c.nextID++
	return c.nextID
}

// MarkAnalyzed records that fileNo has been pushed through the pipeline,
// returning true if this is the first time.
func (c *Context) MarkAnalyzed(fileNo int) bool {
	if c.analyzedFiles[fileNo] {
		return false
	}
	c.analyzedFiles[fileNo] = true
	return true
}

// AddSymbol inserts symbol under the given key into the appropriate
// namespace (Function/Event use FunctionSymbols; everything else uses
// VariableSymbols), merging into an existing overload list when the kind
// and key match, or reporting a declaration-error diagnostic on a
// conflicting redeclaration. Returns true on success.
func (c *Context) AddSymbol(fileNo int, contractNo *int, name string, loc source.Loc, symbol Symbol) bool {
	table := c.VariableSymbols
	if symbol.Kind == SymFunction || symbol.Kind == SymEvent {
		table = c.FunctionSymbols
	}

	k := key(fileNo, contractNo, name)
	existing, ok := table[k]
	if !ok {
		table[k] = symbol
		return true
	}

	if existing.Kind != symbol.Kind {
		c.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
			"'%s' already declared with a different kind", name).
			WithNote(existing.Loc, "previous declaration here"))
		return false
	}

	if symbol.Kind == SymFunction || symbol.Kind == SymEvent {
		existing.Overloads = append(existing.Overloads, symbol.Overloads...)
		table[k] = existing
		return true
	}

	c.Diagnostics.Push(diag.TypedErrorf(loc, diag.KindDeclaration,
		"'%s' already declared", name).
		WithNote(existing.Loc, "previous declaration here"))
	return false
}

// overloadCollision reports whether name is already declared in
// (fileNo, contractNo)'s exact function-symbol scope with an overload
// whose signature (as produced by getSignature, given that overload's
// entity index) matches signature, returning that overload's location.
// Grounded on original_source/src/semantic/function.rs's
// FunctionResolver::visit_function, which rejects a second function
// declaration sharing the first's mangled parameter-type signature.
func overloadCollision(ctx *Context, fileNo int, contractNo *int, name, signature string, getSignature func(idx int) string) (source.Loc, bool) {
	existing, ok := ctx.FunctionSymbols[key(fileNo, contractNo, name)]
	if !ok {
		return source.Loc{}, false
	}
	for _, ov := range existing.Overloads {
		if getSignature(ov.Index) == signature {
			return ov.Loc, true
		}
	}
	return source.Loc{}, false
}

// LookupVariable resolves name in the variable/type namespace, first in
// contractNo's own scope and then (if contractNo is non-nil) in file
// scope.
func (c *Context) LookupVariable(fileNo int, contractNo *int, name string) (Symbol, bool) {
	if contractNo != nil {
		if sym, ok := c.VariableSymbols[key(fileNo, contractNo, name)]; ok {
			return sym, true
		}
	}
	return c.VariableSymbols[key(fileNo, nil, name)], c.hasVariable(fileNo, nil, name)
}

func (c *Context) hasVariable(fileNo int, contractNo *int, name string) bool {
	_, ok := c.VariableSymbols[key(fileNo, contractNo, name)]
	return ok
}

// LookupFunction resolves name in the function/event namespace the same
// way LookupVariable does.
func (c *Context) LookupFunction(fileNo int, contractNo *int, name string) (Symbol, bool) {
	if contractNo != nil {
		if sym, ok := c.FunctionSymbols[key(fileNo, contractNo, name)]; ok {
			return sym, true
		}
	}
	sym, ok := c.FunctionSymbols[key(fileNo, nil, name)]
	return sym, ok
}

// Reject pushes a declaration error for every annotation in anns, naming
// the disallowed item (e.g. "pragma", "import"). fileNo locates the
// annotations for diagnostic rendering.
func (c *Context) Reject(fileNo int, anns []*ast.Annotation, item string) {
	for _, a := range anns {
		c.Diagnostics.Push(diag.TypedErrorf(nodeLoc(fileNo, a), diag.KindDeclaration,
			"annotations not allowed on %s", item))
	}
}

// nodeLoc converts a parse-tree node's byte-offset Range into a
// source.Loc within fileNo, falling back to an implicit location when the
// node carries no range (synthesized nodes).
func nodeLoc(fileNo int, n ast.Node) source.Loc {
	rng := n.GetRange()
	if rng == nil {
		return source.Implicit()
	}
	return source.File(fileNo, rng[0], rng[1])
}
