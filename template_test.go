package gen

import (
	"testing"

	"github.com/sensmetry/gocodegen/internal/assert"
)

func TestExpandToStringSingleLine(t *testing.T) {
	got := ExpandToString([]string{"hello"})
	assert.Equal(t, "hello", got)
}

func TestExpandToStringTrimsScaffoldBlankLines(t *testing.T) {
	parts := []string{"\n    foo\n    bar\n"}
	got := ExpandToString(parts)
	assert.Equal(t, "foo\nbar", got)
}

func TestExpandToStringStripsCommonIndentAroundSubstitution(t *testing.T) {
	parts := []string{"\n    foo ", " bar\n"}
	got := ExpandToString(parts, "X")
	assert.Equal(t, "foo X bar", got)
}

func TestExpandToStringSubstitutionLineDoesNotAnchorIndentToZero(t *testing.T) {
	sub := NewCompositeGeneratorNode("a", NewUnconditionalNewLine(), "b")
	parts := []string{"\n  if (c) {\n", "\n  }\n"}
	got := ExpandToString(parts, sub)
	assert.Equal(t, "if (c) {\na\nb\n}", got)
}

func TestExpandToStringDegenerateSingleLinePreservesLeadingWhitespace(t *testing.T) {
	// A single-line template (no leading/trailing blank scaffold line) is
	// degenerate: its own leading whitespace is literal content, not
	// indentation to strip.
	got := ExpandToString([]string{"    foo ", " bar"}, "X")
	assert.Equal(t, "    foo X bar", got)
}

func TestExpandToStringTrimsTrailingScaffoldWithoutBlankLeadingLine(t *testing.T) {
	got := ExpandToString([]string{"foo\nbar\n"})
	assert.Equal(t, "foo\nbar", got)
}

func TestExpandToStringAbsentSubstitutionContributesNothing(t *testing.T) {
	got := ExpandToString([]string{"a", "b"}, Absent)
	assert.Equal(t, "ab", got)
}

func TestExpandToStringWithNLAlwaysEndsInExactlyOneNewline(t *testing.T) {
	assert.Equal(t, "foo\n", ExpandToStringWithNL([]string{"foo"}))
	assert.Equal(t, "foo\n", ExpandToStringWithNL([]string{"foo\n\n\n"}))
	assert.Equal(t, "\n", ExpandToStringWithNL([]string{""}))
}

func TestExpandToNodeMatchesExpandToStringForStaticTemplates(t *testing.T) {
	parts := []string{"\n    one\n    two\n"}
	assert.Equal(t, ExpandToString(parts), Serialize(ExpandToNode(parts)))
}

func TestSplitTemplate(t *testing.T) {
	parts, names := SplitTemplate("if (${cond}) {\n    ${body}\n}")
	assert.Equal(t, []string{"if (", ") {\n    ", "\n}"}, parts)
	assert.Equal(t, []string{"cond", "body"}, names)
}

func TestSplitTemplateNoPlaceholders(t *testing.T) {
	parts, names := SplitTemplate("plain text")
	assert.Equal(t, []string{"plain text"}, parts)
	assert.Equal(t, 0, len(names))
}

func TestSplitTemplateUnterminatedMarkerIsLiteral(t *testing.T) {
	parts, names := SplitTemplate("a ${unterminated")
	assert.Equal(t, []string{"a ${unterminated"}, parts)
	assert.Equal(t, 0, len(names))
}

func TestExpandToStringLiteralUnderscoreLineIsNotMistakenForMarker(t *testing.T) {
	// A literal all-underscore line must still anchor the common indent
	// to zero like any other zero-indented line; it must not be treated
	// as a placeholder-only line just because it happens to be made of
	// the same character used internally to splice substitutions.
	parts := []string{"\n  a\n", "\n___\n", "\n  b"}
	got := ExpandToString(parts, "s1", "s2")
	assert.Equal(t, "  a\ns1\n___\ns2\n  b", got)
}

func TestExpandToNodeWithSplitTemplate(t *testing.T) {
	parts, _ := SplitTemplate("const ${name} = ${value};")
	got := ExpandToString(parts, "x", "1")
	assert.Equal(t, "const x = 1;", got)
}
