package gen

import (
	"testing"

	"github.com/sensmetry/gocodegen/internal/assert"
)

func identityString(item string, _ int, _ bool) Generated { return item }

func TestJoinToNodeBasic(t *testing.T) {
	got := JoinToNode([]string{"a", "b", "c"}, identityString, WithSeparator(", "))
	assert.Equal(t, "a, b, c", Serialize(got.(GeneratorNode)))
}

func TestJoinToNodeEmptyIsAbsent(t *testing.T) {
	got := JoinToNode([]string{}, identityString, WithSeparator(", "))
	assert.True(t, isAbsent(got))
}

func TestJoinToNodeSingleElementNeverEmitsSeparator(t *testing.T) {
	got := JoinToNode([]string{"x"}, identityString, WithSeparator(", "))
	assert.Equal(t, "x", Serialize(got.(GeneratorNode)))
}

func TestJoinToNodeAppendNewLineIfNotEmpty(t *testing.T) {
	got := JoinToNode([]string{"a", "b", "c"}, identityString,
		WithSeparator(", "), WithNewlineIfNotEmpty())
	assert.Equal(t, "a, \nb, \nc\n", Serialize(got.(GeneratorNode)))
}

func TestJoinToNodePrefixAndSuffix(t *testing.T) {
	got := JoinToNode([]string{"a", "b"}, identityString,
		WithPrefix(func(_ string, _ int, _ bool) Generated { return "<" }),
		WithSuffix(func(_ string, _ int, _ bool) Generated { return ">" }),
		WithSeparator(","),
	)
	assert.Equal(t, "<a>,<b>", Serialize(got.(GeneratorNode)))
}

func TestJoinToNodeSkipsAbsentContentForSeparator(t *testing.T) {
	toGenerated := func(item string, _ int, _ bool) Generated {
		if item == "" {
			return Absent
		}
		return item
	}
	got := JoinToNode([]string{"a", "", "b"}, toGenerated, WithSeparator(","))
	assert.Equal(t, "a,b", Serialize(got.(GeneratorNode)))
}
