// Package gen builds formatted, indentation-aware source text without
// ever shelling out to a language-specific pretty-printer. It provides
// a small generator-node tree (Text, NewLine, Indent,
// CompositeGeneratorNode), template helpers that splice substitutions
// into that tree while preserving a template literal's own whitespace
// shape, and joinToNode for rendering a slice as a separated sequence
// of nodes.
//
// Serialization never produces partial output: Serialize always walks
// the whole tree and returns a single string, and the only panic this
// package raises is for the programmer-error case of appending an
// already-parented node to a second parent.
package gen
