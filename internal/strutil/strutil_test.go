package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Unescape_CommonSequences(t *testing.T) {
	got, err := Unescape(`line1\nline2\t\\end`)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\t\\end", got)
}

func Test_Unescape_HexEscape(t *testing.T) {
	got, err := Unescape(`\x41BC`)
	require.NoError(t, err)
	assert.Equal(t, "ABC", got)
}

func Test_Unescape_InvalidEscape(t *testing.T) {
	_, err := Unescape(`\q`)
	require.Error(t, err)
}

func Test_Unescape_DanglingBackslash(t *testing.T) {
	_, err := Unescape(`abc\`)
	require.Error(t, err)
}

func Test_IsNFC(t *testing.T) {
	decomposed := "é" // "e" followed by a combining acute accent
	assert.False(t, IsNFC(decomposed))
	assert.True(t, IsNFC(ToNFC(decomposed)))
}
