package gen

// joinOptions is the unexported state assembled by a JoinToNode call's
// JoinOption values, mirroring the teacher's own use of unexported
// option structs behind exported "With*" constructors.
type joinOptions[T any] struct {
	prefix                  func(item T, index int, isLast bool) Generated
	suffix                  func(item T, index int, isLast bool) Generated
	separator               Generated
	appendNewLineIfNotEmpty bool
}

// JoinOption configures a call to JoinToNode. Construct one with
// WithPrefix, WithSuffix, WithSeparator or WithNewlineIfNotEmpty.
type JoinOption func(*joinOptions[any])

// apply adapts a JoinOption (which operates on joinOptions[any]) onto a
// joinOptions[T] for the item type JoinToNode was called with. The
// callbacks themselves are type-erased to any at the call boundary and
// cast back when invoked, since Go does not allow a generic method set
// on a non-generic option type.
func (o *joinOptions[T]) apply(opts []JoinOption) {
	shadow := &joinOptions[any]{}
	for _, opt := range opts {
		opt(shadow)
	}
	if shadow.prefix != nil {
		o.prefix = func(item T, index int, isLast bool) Generated {
			return shadow.prefix(item, index, isLast)
		}
	}
	if shadow.suffix != nil {
		o.suffix = func(item T, index int, isLast bool) Generated {
			return shadow.suffix(item, index, isLast)
		}
	}
	o.separator = shadow.separator
	o.appendNewLineIfNotEmpty = shadow.appendNewLineIfNotEmpty
}

// WithPrefix renders prefix(item, index, isLast) before each
// contributing element.
func WithPrefix[T any](prefix func(item T, index int, isLast bool) Generated) JoinOption {
	return func(o *joinOptions[any]) {
		o.prefix = func(item any, index int, isLast bool) Generated {
			return prefix(item.(T), index, isLast)
		}
	}
}

// WithSuffix renders suffix(item, index, isLast) after each
// contributing element.
func WithSuffix[T any](suffix func(item T, index int, isLast bool) Generated) JoinOption {
	return func(o *joinOptions[any]) {
		o.suffix = func(item any, index int, isLast bool) Generated {
			return suffix(item.(T), index, isLast)
		}
	}
}

// WithSeparator places separator between elements, never after the
// last one and never after an element whose content was Absent.
func WithSeparator(separator Generated) JoinOption {
	return func(o *joinOptions[any]) {
		o.separator = separator
	}
}

// WithNewlineIfNotEmpty appends a conditional NewLine after each
// element once the result has become non-empty.
func WithNewlineIfNotEmpty() JoinOption {
	return func(o *joinOptions[any]) {
		o.appendNewLineIfNotEmpty = true
	}
}

// JoinToNode walks items with a one-element lookahead to know isLast,
// converts each to Generated via toGenerated, and joins the
// contributing results according to opts. It returns Absent if no
// element contributed anything.
func JoinToNode[T any](
	items []T,
	toGenerated func(item T, index int, isLast bool) Generated,
	opts ...JoinOption,
) Generated {
	var resolved joinOptions[T]
	resolved.apply(opts)

	var result *CompositeGeneratorNode
	n := len(items)

	for idx, item := range items {
		isLast := idx == n-1
		content := toGenerated(item, idx, isLast)

		if result == nil {
			if isAbsent(content) && resolved.prefix == nil && resolved.suffix == nil {
				continue
			}
			result = &CompositeGeneratorNode{}
		}

		if resolved.prefix != nil {
			result.Append(resolved.prefix(item, idx, isLast))
		}
		result.Append(content)
		if resolved.suffix != nil {
			result.Append(resolved.suffix(item, idx, isLast))
		}
		if !isLast && !isAbsent(content) {
			result.Append(resolved.separator)
		}
		if resolved.appendNewLineIfNotEmpty && !result.IsEmpty() {
			result.AppendNewLineIfNotEmpty()
		}
	}

	if result == nil {
		return Absent
	}
	return result
}
