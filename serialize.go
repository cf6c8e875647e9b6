package gen

import "strings"

// Serialize walks node left-to-right, depth-first, and returns the
// resulting text. No trailing newline is added unless the tree itself
// produced one; a trailing conditional NewLine collapses to nothing if
// the last emitted character was already a newline.
func Serialize(node GeneratorNode) string {
	s := &serializer{atLineStart: true}
	s.walk(node)
	return s.out.String()
}

type serializer struct {
	out                   strings.Builder
	indentStack           []string
	atLineStart           bool
	currentLineHasContent bool

	// trace is nil unless SerializeWithTrace is driving this walk; when
	// set, every node lookup in it is recorded with its output byte
	// range. Kept on the hot-path struct (rather than a second
	// implementation of walk) so nested nodes are traced correctly.
	trace   *RegionSet
	entries []TraceEntry
}

func (s *serializer) walk(node GeneratorNode) {
	if s.trace == nil {
		s.walkNode(node)
		return
	}
	region, traced := s.trace.byNode[node]
	start := s.out.Len()
	s.walkNode(node)
	if traced {
		s.entries = append(s.entries, TraceEntry{Start: start, End: s.out.Len(), Region: region})
	}
}

func (s *serializer) walkNode(node GeneratorNode) {
	switch n := node.(type) {
	case nil:
		return
	case *Text:
		s.emitText(n.Value)
	case *NewLine:
		s.emitNewLine(n.IfNotEmpty)
	case *Indent:
		s.walkIndent(n)
	case *CompositeGeneratorNode:
		for _, child := range n.Children {
			s.walk(child)
		}
	}
}

func (s *serializer) walkIndent(n *Indent) {
	indentation := n.Indentation
	if indentation == "" {
		s.walk(n.Children)
		return
	}

	// Indentation is only written at line starts, so a line already in
	// progress when the Indent is entered is never indented. The prefix is
	// pushed right away when IndentImmediately is set or we are at a line
	// start; otherwise walkIndentChild pushes it as soon as the child
	// emits anything.
	initiallyArmed := n.IndentImmediately || s.atLineStart
	if initiallyArmed {
		s.indentStack = append(s.indentStack, indentation)
	}

	armedByEnd := s.walkIndentChild(n.Children, indentation, initiallyArmed)

	if armedByEnd {
		s.indentStack = s.indentStack[:len(s.indentStack)-1]
	}
}

// walkIndentChild mirrors walk but additionally arms a not-yet-pushed
// indentation the moment a NewLine fires inside the indent's subtree.
// It still honors an in-flight RegionSet trace: every node visited here
// would otherwise bypass walk's entry recording, silently dropping
// trace coverage for anything nested inside an Indent.
func (s *serializer) walkIndentChild(node GeneratorNode, indentation string, armed bool) bool {
	var region Region
	var traced bool
	var start int
	if s.trace != nil {
		region, traced = s.trace.byNode[node]
		start = s.out.Len()
	}

	switch n := node.(type) {
	case nil:
		return armed
	case *Text:
		if !armed {
			armed = true
			s.indentStack = append(s.indentStack, indentation)
		}
		s.emitText(n.Value)
	case *NewLine:
		s.emitNewLine(n.IfNotEmpty)
		if !armed {
			armed = true
			s.indentStack = append(s.indentStack, indentation)
		}
	case *Indent:
		if !armed {
			armed = true
			s.indentStack = append(s.indentStack, indentation)
		}
		s.walkIndent(n)
	case *CompositeGeneratorNode:
		for _, child := range n.Children {
			armed = s.walkIndentChild(child, indentation, armed)
		}
	}

	if traced {
		s.entries = append(s.entries, TraceEntry{Start: start, End: s.out.Len(), Region: region})
	}
	return armed
}

func (s *serializer) currentIndent() string {
	if len(s.indentStack) == 0 {
		return ""
	}
	var b strings.Builder
	for _, part := range s.indentStack {
		b.WriteString(part)
	}
	return b.String()
}

func (s *serializer) emitText(value string) {
	if value == "" {
		return
	}
	lines := strings.Split(value, "\n")
	for i, line := range lines {
		if i > 0 {
			s.emitRaw("\n")
			s.atLineStart = true
			s.currentLineHasContent = false
		}
		if line == "" {
			continue
		}
		if s.atLineStart {
			s.emitRaw(s.currentIndent())
			s.atLineStart = false
		}
		s.emitRaw(line)
		if strings.TrimSpace(line) != "" {
			s.currentLineHasContent = true
		}
	}
}

func (s *serializer) emitNewLine(ifNotEmpty bool) {
	if ifNotEmpty && !s.currentLineHasContent {
		return
	}
	s.emitRaw("\n")
	s.atLineStart = true
	s.currentLineHasContent = false
}

func (s *serializer) emitRaw(text string) {
	s.out.WriteString(text)
}

// NormalizeEOL rewrites every line separator in s (\r\n, \r or \n) to
// eol.
func NormalizeEOL(s string, eol string) string {
	return NewlineRegexp.ReplaceAllString(s, eol)
}
