package gen

import "fmt"

// Generated is the type of any value accepted as generated content: a
// string, a generator node, or Absent ("contribute nothing"). Absent
// values never emit text and never trigger a separator or a conditional
// newline. A plain Go nil, or a nil *Text, *NewLine, *Indent or
// *CompositeGeneratorNode, is treated the same as Absent so callers building Generated
// values programmatically don't need to reach for the sentinel for the
// common "maybe nothing" case; an empty string is never collapsed into
// Absent.
type Generated any

type absentMarker struct{}

// Absent is the sentinel Generated value meaning "the caller
// contributed nothing". It is distinct from the empty string.
var Absent Generated = absentMarker{}

func isAbsent(g Generated) bool {
	if g == nil {
		return true
	}
	if _, ok := g.(absentMarker); ok {
		return true
	}
	switch v := g.(type) {
	case *Text:
		return v == nil
	case *NewLine:
		return v == nil
	case *Indent:
		return v == nil
	case *CompositeGeneratorNode:
		return v == nil
	}
	return false
}

// Opt returns s as Generated when present is true, and Absent otherwise.
func Opt(s string, present bool) Generated {
	if !present {
		return Absent
	}
	return s
}

// OptNode returns node as Generated, or Absent if node is nil.
func OptNode(node *CompositeGeneratorNode) Generated {
	if node == nil {
		return Absent
	}
	return node
}

// Append accepts Generated content: Absent values are no-ops, strings
// are wrapped as Text, generator nodes are spliced in directly, and any
// other value is stringified with fmt.Sprint and wrapped as Text.
func (c *CompositeGeneratorNode) Append(x Generated) *CompositeGeneratorNode {
	c.appendOne(x)
	return c
}

// AppendIf appends x only when cond is true.
func (c *CompositeGeneratorNode) AppendIf(cond bool, x Generated) *CompositeGeneratorNode {
	if cond {
		c.appendOne(x)
	}
	return c
}

// AppendNewLine appends an unconditional line break.
func (c *CompositeGeneratorNode) AppendNewLine() *CompositeGeneratorNode {
	c.appendNode(NewUnconditionalNewLine())
	return c
}

// AppendNewLineIfNotEmpty appends a line break that only emits if the
// current output line already has non-whitespace content.
func (c *CompositeGeneratorNode) AppendNewLineIfNotEmpty() *CompositeGeneratorNode {
	c.appendNode(NewConditionalNewLine())
	return c
}

// AppendNewLineIfNotEmptyIf appends a conditional NewLine, but only when
// cond is true.
func (c *CompositeGeneratorNode) AppendNewLineIfNotEmptyIf(cond bool) *CompositeGeneratorNode {
	if cond {
		c.appendNode(NewConditionalNewLine())
	}
	return c
}

// IndentOptions configures a call to (*CompositeGeneratorNode).Indent.
type IndentOptions struct {
	// IndentedChildren receives the inner, newly created composite and
	// appends to it.
	IndentedChildren func(*CompositeGeneratorNode)
	// Indentation is either a string to use verbatim, or an int giving a
	// count of spaces. Nil, an empty string, or a value of any other type
	// means DefaultIndentation; an int of zero or less means no indentation.
	Indentation any
	// IndentImmediately defaults to true. With either value, the
	// indentation is written only at the start of a line: it covers every
	// line that starts inside the child, plus the line the Indent is
	// entered on if nothing has been written to that line yet. A line
	// already in progress when the Indent is entered is never indented.
	IndentImmediately *bool
}

func resolveIndentation(v any) string {
	switch t := v.(type) {
	case nil:
		return DefaultIndentation
	case string:
		if t == "" {
			return DefaultIndentation
		}
		return t
	case int:
		if t <= 0 {
			return ""
		}
		return spaces(t)
	default:
		return DefaultIndentation
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// Indent appends an Indent node. opts.IndentedChildren (if set) is
// invoked with the new child composite so callers can populate it in
// place, mirroring the fluent style of the rest of this API.
func (c *CompositeGeneratorNode) Indent(opts IndentOptions) *CompositeGeneratorNode {
	immediate := true
	if opts.IndentImmediately != nil {
		immediate = *opts.IndentImmediately
	}
	children := &CompositeGeneratorNode{}
	if opts.IndentedChildren != nil {
		opts.IndentedChildren(children)
	}
	node := &Indent{
		Children:          children,
		Indentation:       resolveIndentation(opts.Indentation),
		IndentImmediately: immediate,
	}
	children.owned = true
	c.appendNode(node)
	return c
}

// IsEmpty reports whether serializing c would produce the empty string.
// This is semantic, not structural: a composite containing only
// Absent-valued children, empty Text, and Indents whose children are
// empty, is empty. Conditional ("if-not-empty") NewLine nodes are
// treated as contributing nothing of their own, since whether they
// actually emit depends on context outside c.
func (c *CompositeGeneratorNode) IsEmpty() bool {
	return isEmptyNode(c)
}

func isEmptyNode(n GeneratorNode) bool {
	switch v := n.(type) {
	case nil:
		return true
	case *Text:
		return v.Value == ""
	case *NewLine:
		return v.IfNotEmpty
	case *Indent:
		return isEmptyNode(v.Children)
	case *CompositeGeneratorNode:
		for _, child := range v.Children {
			if !isEmptyNode(child) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (c *CompositeGeneratorNode) appendOne(x Generated) {
	if isAbsent(x) {
		return
	}
	switch v := x.(type) {
	case string:
		c.appendNode(NewText(v))
	case GeneratorNode:
		c.appendNode(v)
	default:
		c.appendNode(NewText(fmt.Sprint(v)))
	}
}

func (c *CompositeGeneratorNode) appendNode(n GeneratorNode) {
	if composite, ok := n.(*CompositeGeneratorNode); ok {
		if composite.owned {
			panic(newMisuseError("generator node already has a parent: a CompositeGeneratorNode cannot be spliced into two trees"))
		}
		composite.owned = true
	}
	c.Children = append(c.Children, n)
}
