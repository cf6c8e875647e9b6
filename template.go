package gen

import (
	"fmt"
	"strings"
)

// tmplItem is the internal sentinel/content representation used while
// assembling a template literal into a CompositeGeneratorNode. These
// never leak into the public node tree: newline sentinels become real
// NewLine nodes (or are consumed), and undefined sentinels are always
// discarded.
type tmplItem interface {
	isTmplItem()
}

type tmplRaw string

func (tmplRaw) isTmplItem() {}

// tmplNode carries a substitution that was a generator node, or the
// wrapped Text of a stringified non-node substitution. Wrapping is
// essential: it lets the assembly step distinguish an author-provided
// substitution (even one that stringifies to "") from a literal static
// fragment.
type tmplNode struct {
	content Generated
}

func (tmplNode) isTmplItem() {}

type tmplNewlineSentinel struct{}

func (tmplNewlineSentinel) isTmplItem() {}

type tmplUndefinedSentinel struct{}

func (tmplUndefinedSentinel) isTmplItem() {}

// ExpandToNode is the varargs analog of a tagged-template literal: parts
// holds the literal fragments (len(parts) == len(substitutions)+1) and
// substitutions holds one Generated value per placeholder. It applies
// the template-shape whitespace rules and returns the resulting
// Composite.
func ExpandToNode(parts []string, substitutions ...Generated) *CompositeGeneratorNode {
	return assembleTemplate(parts, substitutions)
}

// ExpandToString is the string-returning analog of ExpandToNode.
func ExpandToString(parts []string, substitutions ...Generated) string {
	return Serialize(ExpandToNode(parts, substitutions...))
}

// ExpandToStringWithNL behaves like ExpandToString but guarantees the
// result ends in exactly one trailing newline.
func ExpandToStringWithNL(parts []string, substitutions ...Generated) string {
	s := ExpandToString(parts, substitutions...)
	s = strings.TrimRight(s, "\n")
	return s + "\n"
}

// SplitTemplate splits a raw template string on ${name} placeholder
// markers, in the order they appear, returning the literal parts and
// the names found inside each marker. It is a convenience for writing a
// template as a single raw string instead of building the parts slice
// by hand; callers supply the actual substitution values separately,
// positionally, via ExpandToNode/ExpandToString.
func SplitTemplate(raw string) (parts []string, names []string) {
	var sb strings.Builder
	i := 0
	for i < len(raw) {
		if raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{' {
			closeIdx := strings.IndexByte(raw[i+2:], '}')
			if closeIdx == -1 {
				sb.WriteByte(raw[i])
				i++
				continue
			}
			name := raw[i+2 : i+2+closeIdx]
			parts = append(parts, sb.String())
			names = append(names, name)
			sb.Reset()
			i = i + 2 + closeIdx + 1
			continue
		}
		sb.WriteByte(raw[i])
		i++
	}
	parts = append(parts, sb.String())
	return parts, names
}

// templateMarker is spliced between static parts purely so adjacent
// lines never merge across a placeholder boundary (spec.md's own
// `join(staticParts, "_")` construction for `findIndentation`'s input).
// Its byte range in the joined text is recorded separately so that
// classifying a line as "placeholder-only" never depends on matching
// this character's literal value — a template whose own static text
// happens to contain "_" must not be mistaken for a marker.
const templateMarker = "_"

// markerRange is the byte range of one templateMarker occurrence inside
// the string produced by joinWithMarkers.
type markerRange struct {
	start, end int
}

func joinWithMarkers(parts []string) (string, []markerRange) {
	var b strings.Builder
	ranges := make([]markerRange, 0, len(parts)-1)
	for i, p := range parts {
		b.WriteString(p)
		if i < len(parts)-1 {
			start := b.Len()
			b.WriteString(templateMarker)
			ranges = append(ranges, markerRange{start: start, end: b.Len()})
		}
	}
	return b.String(), ranges
}

// lineSpan is the byte range of one line within the string it was split
// from (end-exclusive, separator not included).
type lineSpan struct {
	start, end int
}

func splitLinesWithOffsets(s string) []lineSpan {
	seps := NewlineRegexp.FindAllStringIndex(s, -1)
	spans := make([]lineSpan, 0, len(seps)+1)
	start := 0
	for _, m := range seps {
		spans = append(spans, lineSpan{start: start, end: m[0]})
		start = m[1]
	}
	return append(spans, lineSpan{start: start, end: len(s)})
}

// lineIsMarkerOnly reports whether every byte in [start, end) belongs to
// some marker range, i.e. the line carries no literal template text at
// all and so says nothing about the template's own indentation. ranges
// is assumed sorted by start, which joinWithMarkers guarantees.
func lineIsMarkerOnly(ranges []markerRange, start, end int) bool {
	if start == end {
		return false
	}
	pos := start
	for _, r := range ranges {
		if r.end <= pos {
			continue
		}
		if r.start > pos {
			return false
		}
		if r.end >= end {
			return true
		}
		pos = r.end
	}
	return pos >= end
}

func assembleTemplate(parts []string, substitutions []Generated) *CompositeGeneratorNode {
	joined, markers := joinWithMarkers(parts)
	spans := splitLinesWithOffsets(joined)
	lines := make([]string, len(spans))
	for i, sp := range spans {
		lines[i] = joined[sp.start:sp.end]
	}

	omitFirstLine := len(lines) > 1 && isBlank(lines[0])
	omitLastLine := omitFirstLine && len(lines) > 1 && isBlank(lines[len(lines)-1])

	degenerate := len(lines) == 1 || !isBlank(lines[0]) || (len(lines) == 2 && isBlank(lines[1]))

	var indentation int
	var trimLastLine bool

	if degenerate {
		indentation = 0
		trimLastLine = len(lines) != 1 && isBlank(lines[len(lines)-1])
	} else {
		remaining := lines
		remainingSpans := spans
		if omitFirstLine {
			remaining = remaining[1:]
			remainingSpans = remainingSpans[1:]
		}
		if omitLastLine {
			remaining = remaining[:len(remaining)-1]
			remainingSpans = remainingSpans[:len(remainingSpans)-1]
		}
		firstRemaining := ""
		if len(remaining) > 0 {
			firstRemaining = remaining[0]
		}

		nonEmpty := make([]string, 0, len(remaining))
		for i, l := range remaining {
			if len(l) == 0 {
				continue
			}
			if lineIsMarkerOnly(markers, remainingSpans[i].start, remainingSpans[i].end) {
				continue
			}
			nonEmpty = append(nonEmpty, l)
		}
		indentation = FindIndentation(nonEmpty)

		if omitLastLine {
			lastRaw := lines[len(lines)-1]
			if len(lastRaw) < indentation {
				omitLastLine = true
			} else if len(firstRemaining) < indentation || lastRaw[:indentation] != firstRemaining[:indentation] {
				omitLastLine = true
			} else {
				omitLastLine = false
			}
		}
	}

	items := spliceSubstitutions(parts, substitutions, indentation, omitFirstLine)
	items = trimFinalLine(items, omitLastLine || trimLastLine, omitFirstLine)

	return assembleItems(items)
}

func spliceSubstitutions(parts []string, substitutions []Generated, indentation int, omitFirstLine bool) []tmplItem {
	indentPrefix := strings.Repeat(" ", indentation)

	var items []tmplItem
	for i, part := range parts {
		partLines := NewlineRegexp.Split(part, -1)

		for li := 1; li < len(partLines); li++ {
			line := partLines[li]
			if indentation > 0 && len(line) > indentation && strings.HasPrefix(line, indentPrefix) {
				partLines[li] = line[indentation:]
			}
		}

		if i == 0 && omitFirstLine && len(partLines) > 0 {
			partLines = partLines[1:]
		}

		for li, line := range partLines {
			if li > 0 {
				items = append(items, tmplNewlineSentinel{})
			}
			if line != "" {
				items = append(items, tmplRaw(line))
			}
		}

		if i < len(substitutions) {
			sub := substitutions[i]
			switch {
			case !isAbsent(sub):
				if node, ok := sub.(GeneratorNode); ok {
					items = append(items, tmplNode{content: node})
				} else {
					wrapped := &CompositeGeneratorNode{}
					wrapped.Append(fmt.Sprint(sub))
					items = append(items, tmplNode{content: wrapped})
				}
			case i != len(substitutions)-1:
				items = append(items, tmplUndefinedSentinel{})
			}
		}
	}
	return items
}

// trimFinalLine drops the scaffolding introduced by a trimmed closing
// line. Most of the time that line's content disappeared already (an
// empty line contributes no tmplRaw at all, see spliceSubstitutions),
// leaving a dangling trailing NewLine sentinel with nothing after it;
// occasionally the line survives as a non-empty whitespace-only string
// (e.g. a closing backtick indented exactly to the common prefix).
// Either shape is dropped; when omitFirstLine also holds, a NewLine
// sentinel left directly before the dropped item is dropped as well.
func trimFinalLine(items []tmplItem, shouldTrim bool, omitFirstLine bool) []tmplItem {
	if !shouldTrim || len(items) == 0 {
		return items
	}
	switch last := items[len(items)-1].(type) {
	case tmplRaw:
		if !isBlank(string(last)) {
			return items
		}
		items = items[:len(items)-1]
	case tmplNewlineSentinel:
		items = items[:len(items)-1]
	default:
		return items
	}
	if omitFirstLine && len(items) > 0 {
		if _, ok := items[len(items)-1].(tmplNewlineSentinel); ok {
			items = items[:len(items)-1]
		}
	}
	return items
}

func assembleItems(items []tmplItem) *CompositeGeneratorNode {
	root := &CompositeGeneratorNode{}
	var indented *CompositeGeneratorNode

	var prev tmplItem
	for i, item := range items {
		switch v := item.(type) {
		case tmplUndefinedSentinel:
			prev = item
			continue
		case tmplNewlineSentinel:
			_, prevWasNewline := prev.(tmplNewlineSentinel)
			_, prevWasRaw := prev.(tmplRaw)
			if i == 0 || prevWasNewline || prevWasRaw {
				root.AppendNewLine()
			} else {
				root.AppendNewLineIfNotEmpty()
			}
			indented = nil
		case tmplRaw:
			content := string(v)
			indentStr := ""
			if isFirstOrAfterNewline(i, prev) && content != "" {
				indentStr = leadingWhitespace(content)
				content = content[len(indentStr):]
			}
			indented = placeContent(root, indented, indentStr, content)
		case tmplNode:
			indentStr := "" // node content never carries its own leading-whitespace indent
			indented = placeContent(root, indented, indentStr, v.content)
		}
		prev = item
	}
	return root
}

func isFirstOrAfterNewline(i int, prev tmplItem) bool {
	if i == 0 {
		return true
	}
	_, ok := prev.(tmplNewlineSentinel)
	return ok
}

func placeContent(root *CompositeGeneratorNode, indented *CompositeGeneratorNode, indentStr string, content Generated) *CompositeGeneratorNode {
	if indented != nil {
		indented.Append(content)
		return indented
	}
	if indentStr != "" {
		children := &CompositeGeneratorNode{}
		children.Append(content)
		root.appendNode(&Indent{Children: children, Indentation: indentStr, IndentImmediately: false})
		children.owned = true
		return children
	}
	root.Append(content)
	return nil
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}
