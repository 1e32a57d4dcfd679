package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solastlang/solast/pkg/ast"
	"github.com/solastlang/solast/pkg/parser"
	"github.com/solastlang/solast/pkg/source"
)

// parseUnit parses src with location/range tracking enabled, the mode every
// sema pass expects since nodeLoc depends on each node's byte-range.
func parseUnit(t *testing.T, src string) *ast.SourceUnit {
	t.Helper()
	unit, err := parser.Parse(src, &parser.Options{Loc: true, Range: true})
	require.NoError(t, err)
	return unit
}

func newTestContext(t *testing.T, src string) (*Context, int, *ast.SourceUnit) {
	t.Helper()
	files := source.NewFileSet()
	fileNo := files.Add(&source.File{FullPath: t.Name() + ".sol", Contents: src})
	return NewContext(files), fileNo, parseUnit(t, src)
}

func declareContracts(ctx *Context, fileNo int, unit *ast.SourceUnit) []DeclaredContract {
	anns := AnnotatePass(ctx, fileNo, unit)
	return TypeDeclPass(ctx, fileNo, unit, anns)
}

func Test_Context_AddSymbol_DuplicateDeclarationIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			enum Status { Active }
			enum Status { Pending }
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	ContractTypeDeclPass(ctx, fileNo, contracts[0].No, contracts[0].Node)

	assert.True(t, ctx.Diagnostics.HasError())
}

func Test_Context_AddSymbol_MergesOverloads(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			function f(uint256 a) public {}
			function f(uint256 a, uint256 b) public {}
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	sym, ok := ctx.LookupFunction(fileNo, &contractNo, "f")
	require.True(t, ok)
	assert.Len(t, sym.Overloads, 2)
	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_PragmaPass_SolidityCaretRange(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `pragma solidity ^0.8.0;`)
	PragmaPass(ctx, fileNo, unit, nil)

	require.Len(t, ctx.Pragmas, 1)
	assert.Equal(t, PragmaSolidityVersion, ctx.Pragmas[0].Kind)
	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_PragmaPass_SolidityRangeOperators(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `pragma solidity >=0.4.0 <0.6.0;`)
	PragmaPass(ctx, fileNo, unit, nil)

	require.Len(t, ctx.Pragmas, 1)
	require.Len(t, ctx.Pragmas[0].Versions, 2)
	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_PragmaPass_SolidityDashRange(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `pragma solidity 0.4.0 - 0.6.0;`)
	PragmaPass(ctx, fileNo, unit, nil)

	require.Len(t, ctx.Pragmas, 1)
	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_PragmaPass_SolidityOrAlternation(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `pragma solidity 0.8.0 || 0.9.0;`)
	PragmaPass(ctx, fileNo, unit, nil)

	require.Len(t, ctx.Pragmas, 1)
	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_PragmaPass_UnknownPragmaIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `pragma nonsense foo;`)
	PragmaPass(ctx, fileNo, unit, nil)

	assert.True(t, ctx.Diagnostics.HasError())
}

func Test_PragmaPass_ExperimentalSolidityIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `pragma experimental solidity;`)
	PragmaPass(ctx, fileNo, unit, nil)

	assert.True(t, ctx.Diagnostics.HasError())
}

func Test_PragmaPass_ExperimentalABIEncoderV2IsDebugOnly(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `pragma experimental ABIEncoderV2;`)
	PragmaPass(ctx, fileNo, unit, nil)

	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_TypeDeclPass_EnumTooManyValuesIsError(t *testing.T) {
	values := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			values += ", "
		}
		values += "V" + itoa(i)
	}
	ctx, fileNo, unit := newTestContext(t, "contract C { enum Big { "+values+" } }")
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	ContractTypeDeclPass(ctx, fileNo, contracts[0].No, contracts[0].Node)

	assert.True(t, ctx.Diagnostics.HasError())
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := ""
	for i > 0 {
		digits = string(rune('0'+i%10)) + digits
		i /= 10
	}
	return digits
}

func Test_TypeDeclPass_StructFieldsInterned(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			struct Point { uint256 x; uint256 y; }
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	ContractTypeDeclPass(ctx, fileNo, contracts[0].No, contracts[0].Node)

	require.Len(t, ctx.Structs, 1)
	assert.Equal(t, "Point", ctx.Structs[0].Name)
	assert.Len(t, ctx.Structs[0].Fields, 2)
}

func Test_ContractBasePass_UnknownBaseIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `contract C is NoSuchBase {}`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	ContractBasePass(ctx, fileNo, contracts[0].No, contracts[0].Node)

	assert.True(t, ctx.Diagnostics.HasError())
}

func Test_ContractBasePass_LinearizesDiamond(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract A {}
		contract B is A {}
		contract C is A {}
		contract D is B, C {}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 4)
	for _, c := range contracts {
		ContractBasePass(ctx, fileNo, c.No, c.Node)
	}
	LinearizePass(ctx)

	var dNo int
	for _, c := range contracts {
		if c.Node.Name == "D" {
			dNo = c.No
		}
	}
	linear := ctx.Contracts[dNo].Linearized
	require.NotEmpty(t, linear)
	assert.Equal(t, dNo, linear[len(linear)-1], "the contract itself is linearized last")
}

func Test_VarFuncPass_FileScopeVariableMustBeConstant(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `uint256 x;`)
	anns := AnnotatePass(ctx, fileNo, unit)
	VarFuncPass(ctx, fileNo, nil, KindContract, unit.Children, anns, true)

	assert.True(t, ctx.Diagnostics.HasError())
}

func Test_VarFuncPass_PublicVariableGetsAccessor(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `contract C { uint256 public total; }`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	sym, ok := ctx.LookupFunction(fileNo, &contractNo, "total")
	require.True(t, ok)
	require.Len(t, sym.Overloads, 1)
	assert.True(t, ctx.Functions[sym.Overloads[0].Index].IsAccessor)
}

func Test_UsingPass_NonLibraryTargetIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract NotALibrary {}
		contract C {
			using NotALibrary for uint256;
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 2)
	var cNo int
	var usingDecl *ast.UsingForDeclaration
	for _, c := range contracts {
		if c.Node.Name == "C" {
			cNo = c.No
			for _, part := range c.Node.SubNodes {
				if u, ok := part.(*ast.UsingForDeclaration); ok {
					usingDecl = u
				}
			}
		}
	}
	require.NotNil(t, usingDecl)
	UsingPass(ctx, fileNo, &cNo, usingDecl)

	assert.True(t, ctx.Diagnostics.HasError())
}

func Test_VarFuncPass_DuplicateSignatureFunctionIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			function f(uint256 a) public {}
			function f(uint256 a) public {}
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	sym, ok := ctx.LookupFunction(fileNo, &contractNo, "f")
	require.True(t, ok)
	assert.Len(t, sym.Overloads, 1, "the colliding redeclaration must not be registered as a second overload")
	assert.True(t, ctx.Diagnostics.HasError())
	assert.True(t, ctx.Diagnostics.ContainsMessage("overloaded function with this signature already exist"))
}

func Test_VarFuncPass_DistinctSignatureOverloadsAreNotErrors(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			function f(uint256 a) public {}
			function f(uint256 a, uint256 b) public {}
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	sym, ok := ctx.LookupFunction(fileNo, &contractNo, "f")
	require.True(t, ok)
	assert.Len(t, sym.Overloads, 2)
	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_VarFuncPass_ModifierDeclarationIsResolvable(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			modifier onlyOwner() { _; }
			function f() public onlyOwner {}
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	require.Len(t, ctx.Modifiers, 1)
	assert.Equal(t, "onlyOwner", ctx.Modifiers[0].Name)

	sym, ok := ctx.LookupVariable(fileNo, &contractNo, "onlyOwner")
	require.True(t, ok)
	assert.Equal(t, SymModifier, sym.Kind)

	sym, ok = ctx.LookupFunction(fileNo, &contractNo, "f")
	require.True(t, ok)
	fn := ctx.Functions[sym.Overloads[0].Index]
	require.Len(t, fn.Modifiers, 1)
	assert.Equal(t, "onlyOwner", fn.Modifiers[0].Name)
}

func Test_VarFuncPass_ModifierOutsideContractIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `modifier onlyOwner() { _; }`)
	anns := AnnotatePass(ctx, fileNo, unit)
	VarFuncPass(ctx, fileNo, nil, KindContract, unit.Children, anns, true)

	assert.True(t, ctx.Diagnostics.HasError())
}

func Test_VarFuncPass_MappingAccessorTakesKeyParameter(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			mapping(address => uint256) public balances;
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	sym, ok := ctx.LookupFunction(fileNo, &contractNo, "balances")
	require.True(t, ok)
	require.Len(t, sym.Overloads, 1)
	fn := ctx.Functions[sym.Overloads[0].Index]
	require.Len(t, fn.Parameters, 1)
	assert.Equal(t, "address", typeNameString(fn.Parameters[0].Type))
	require.Len(t, fn.ReturnParameters, 1)
	assert.Equal(t, "uint256", typeNameString(fn.ReturnParameters[0].Type))
	assert.False(t, ctx.Diagnostics.HasError())
}

func Test_VarFuncPass_NestedMappingAccessorTakesOneParameterPerDimension(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			mapping(address => mapping(uint256 => bool)) public seen;
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	sym, ok := ctx.LookupFunction(fileNo, &contractNo, "seen")
	require.True(t, ok)
	fn := ctx.Functions[sym.Overloads[0].Index]
	require.Len(t, fn.Parameters, 2)
	assert.Equal(t, "address", typeNameString(fn.Parameters[0].Type))
	assert.Equal(t, "uint256", typeNameString(fn.Parameters[1].Type))
	require.Len(t, fn.ReturnParameters, 1)
	assert.Equal(t, "bool", typeNameString(fn.ReturnParameters[0].Type))
}

func Test_VarFuncPass_MappingInStructReturnIsRejectedAsAccessor(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			struct Ledger { mapping(address => uint256) balances; uint256 total; }
			mapping(uint256 => Ledger) public ledgers;
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	ContractTypeDeclPass(ctx, fileNo, contractNo, contracts[0].Node)
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)

	assert.True(t, ctx.Diagnostics.HasError())
	_, ok := ctx.LookupFunction(fileNo, &contractNo, "ledgers")
	assert.False(t, ok, "no accessor should be registered for a rejected shape")
}

func Test_MutabilityPass_StateWriteInViewFunctionIsError(t *testing.T) {
	ctx, fileNo, unit := newTestContext(t, `
		contract C {
			uint256 total;
			function bump() public view {
				total = total + 1;
			}
		}
	`)
	contracts := declareContracts(ctx, fileNo, unit)
	require.Len(t, contracts, 1)
	contractNo := contracts[0].No
	ContractTypeDeclPass(ctx, fileNo, contractNo, contracts[0].Node)
	VarFuncPass(ctx, fileNo, &contractNo, KindContract, contracts[0].Node.SubNodes, nil, false)
	MutabilityPass(ctx, fileNo, &contractNo)

	assert.True(t, ctx.Diagnostics.HasError())
}
