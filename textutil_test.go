package gen

import (
	"testing"

	"github.com/sensmetry/gocodegen/internal/assert"
)

func TestFindIndentation(t *testing.T) {
	t.Run("CommonIndent", func(t *testing.T) {
		assert.Equal(t, 4, FindIndentation([]string{"    foo", "    bar"}))
	})

	t.Run("ShorterLineWins", func(t *testing.T) {
		assert.Equal(t, 2, FindIndentation([]string{"    foo", "  bar"}))
	})

	t.Run("ZeroIndentShortCircuits", func(t *testing.T) {
		assert.Equal(t, 0, FindIndentation([]string{"    foo", "bar"}))
	})

	t.Run("EmptyLinesIgnored", func(t *testing.T) {
		assert.Equal(t, 4, FindIndentation([]string{"    foo", "", "    bar"}))
	})

	t.Run("AllEmpty", func(t *testing.T) {
		assert.Equal(t, 0, FindIndentation([]string{"", ""}))
	})

	t.Run("NoLines", func(t *testing.T) {
		assert.Equal(t, 0, FindIndentation(nil))
	})

	t.Run("TabsAreLiteral", func(t *testing.T) {
		assert.Equal(t, 0, FindIndentation([]string{"\tfoo", "    bar"}))
	})
}

func TestNewlineRegexpSplitsAllEOLForms(t *testing.T) {
	got := NewlineRegexp.Split("a\r\nb\rc\nd", -1)
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestNormalizeEOL(t *testing.T) {
	mixed := "a\r\nb\rc\nd"
	assert.Equal(t, "a\nb\nc\nd", NormalizeEOL(mixed, "\n"))
	assert.Equal(t, "a\r\nb\r\nc\r\nd", NormalizeEOL(mixed, "\r\n"))
}

func TestNormalizeEOLIdempotentComposition(t *testing.T) {
	mixed := "a\r\nb\rc\nd"
	once := NormalizeEOL(mixed, "\r\n")
	twice := NormalizeEOL(NormalizeEOL(mixed, "\n"), "\r\n")
	assert.Equal(t, once, twice)
}
