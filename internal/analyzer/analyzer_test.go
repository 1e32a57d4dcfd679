package analyzer

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solastlang/solast/internal/config"
	"github.com/solastlang/solast/pkg/source"
)

func newDriver(t *testing.T) *Driver {
	t.Helper()
	return New(&config.Config{}, 0)
}

func analyzeSource(t *testing.T, d *Driver, src string) int {
	t.Helper()
	fileNo := d.Files.Add(&source.File{FullPath: t.Name() + ".sol", Contents: src})
	require.NoError(t, d.AnalyzeSnippet(context.Background(), fileNo))
	return fileNo
}

func Test_AnalyzeSnippet_CleanContractHasNoErrors(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		pragma solidity ^0.8.0;

		contract SimpleStorage {
			uint256 public value;

			function setValue(uint256 _value) public {
				value = _value;
			}

			function getValue() public view returns (uint256) {
				return value;
			}
		}
	`)

	assert.False(t, d.Ctx.Diagnostics.HasError(), "%v", d.Ctx.Diagnostics.All())
	assert.Len(t, d.Ctx.Contracts, 1)
	assert.Equal(t, "SimpleStorage", d.Ctx.Contracts[0].Name)
}

func Test_AnalyzeSnippet_DeclaresVariableAccessorAndFunction(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		contract C {
			uint256 public value;
			function setValue(uint256 v) public { value = v; }
		}
	`)

	foundAccessor, foundSetter := false, false
	for _, fn := range d.Ctx.Functions {
		if fn.Name == "value" && fn.IsAccessor {
			foundAccessor = true
		}
		if fn.Name == "setValue" {
			foundSetter = true
		}
	}
	assert.True(t, foundAccessor)
	assert.True(t, foundSetter)
}

func Test_AnalyzeSnippet_MutabilityMismatchReportsError(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		contract C {
			uint256 value;
			function setValue(uint256 v) public pure {
				value = v;
			}
		}
	`)

	assert.True(t, d.Ctx.Diagnostics.HasError())
}

func Test_AnalyzeSnippet_MutabilityDowngradeWarns(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		contract C {
			function pureFn() public view returns (uint256) {
				return 1;
			}
		}
	`)

	found := false
	for _, w := range d.Ctx.Diagnostics.Warnings() {
		if strings.Contains(w.Message, "'pure'") {
			found = true
		}
	}
	assert.True(t, found, "%v", d.Ctx.Diagnostics.Warnings())
}

func Test_AnalyzeSnippet_DuplicateEnumValueIsError(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		contract C {
			enum Status { Active, Active }
		}
	`)

	assert.True(t, d.Ctx.Diagnostics.HasError())
}

func Test_AnalyzeSnippet_ContractBaseCycleIsError(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		contract A is B {}
		contract B is A {}
	`)

	assert.True(t, d.Ctx.Diagnostics.HasError())
}

func Test_AnalyzeSnippet_LibraryWithBaseIsError(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		contract Base {}
		library Lib is Base {}
	`)

	assert.True(t, d.Ctx.Diagnostics.HasError())
}

func Test_AnalyzeSnippet_UnknownPragmaIsError(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		pragma somethingstrange 1.0;
		contract C {}
	`)

	assert.True(t, d.Ctx.Diagnostics.HasError())
}

func Test_AnalyzeSnippet_UsingForBindsLibraryFunctions(t *testing.T) {
	d := newDriver(t)
	analyzeSource(t, d, `
		library SafeMath {
			function add(uint256 a, uint256 b) internal pure returns (uint256) {
				return a + b;
			}
		}

		contract C {
			using SafeMath for uint256;
		}
	`)

	require.Len(t, d.Ctx.Contracts, 2)
	var lib *int
	for i, c := range d.Ctx.Contracts {
		if c.Name == "C" {
			lib = &i
		}
	}
	require.NotNil(t, lib)
	assert.Len(t, d.Ctx.Contracts[*lib].UsingLibs, 1)
}
