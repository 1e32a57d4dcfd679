package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solastlang/solast/pkg/source"
)

func Test_Collector_HasError(t *testing.T) {
	c := NewCollector()
	assert.False(t, c.HasError())

	c.Push(Warningf(source.Implicit(), "downgrade suggested"))
	assert.False(t, c.HasError())

	c.Push(Errorf(source.File(0, 1, 2), "base '%s' is cyclic", "X"))
	assert.True(t, c.HasError())
}

func Test_Collector_ContainsMessage(t *testing.T) {
	c := NewCollector()
	c.Push(Errorf(source.File(0, 0, 1), "import 'X' does not export 'Y'"))

	assert.True(t, c.ContainsMessage("import 'X' does not export 'Y'"))
	assert.False(t, c.ContainsMessage("something else"))
}

func Test_Collector_Normalize_SortsAndDedups(t *testing.T) {
	c := NewCollector()
	c.Push(Errorf(source.File(1, 10, 12), "dup"))
	c.Push(Errorf(source.File(0, 20, 22), "second"))
	c.Push(Errorf(source.File(0, 5, 7), "first"))
	c.Push(Errorf(source.File(1, 10, 12), "dup"))

	got := c.Normalize()
	if assert.Len(t, got, 3) {
		assert.Equal(t, "first", got[0].Message)
		assert.Equal(t, "second", got[1].Message)
		assert.Equal(t, "dup", got[2].Message)
	}
}

func Test_Collector_Extend(t *testing.T) {
	a := NewCollector()
	a.Push(Infof(source.Implicit(), "phase started"))

	b := NewCollector()
	b.Push(Errorf(source.Implicit(), "boom"))
	a.Extend(b)

	assert.Len(t, a.All(), 2)
	assert.True(t, a.HasError())
	assert.Len(t, b.All(), 1, "Extend must not consume the source collector")
}
