package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 10))
	assert.Equal(t, "exactly10!", TruncateString("exactly10!", 10))
	assert.Equal(t, "longer ...", TruncateString("longer than ten", 10))
	assert.Equal(t, "ab", TruncateString("abcdef", 2))
	assert.Equal(t, "", TruncateString("abc", 0))
}

func TestTruncateString_WideRunes(t *testing.T) {
	// Each CJK rune is two cells wide.
	assert.Equal(t, "日本", TruncateString("日本", 4))
	assert.Equal(t, "日...", TruncateString("日本語テキスト", 6))
	assert.Equal(t, 5, DisplayWidth("日..."))
}

func TestCellText(t *testing.T) {
	assert.Equal(t, "Ann Lee", CellText("\n   Ann\t  Lee \n"))
	assert.Equal(t, "", CellText("   "))
}
