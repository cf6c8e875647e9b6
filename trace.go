package gen

// Region is an opaque, caller-supplied descriptor of the source
// location a node was generated from (e.g. an AST node reference). It
// is treated by this package purely as an annotation orthogonal to
// serialization.
type Region any

// TraceEntry maps a byte range of serialized output back to the Region
// attached to the node that produced it.
type TraceEntry struct {
	Start, End int
	Region     Region
}

// RegionSet associates generator nodes with a caller-supplied Region,
// by identity, so that Text/NewLine/Indent/CompositeGeneratorNode stay
// free of tracing concerns in the common case (no RegionSet in play)
// while still letting a caller opt into a parallel output-to-source map
// via SerializeWithTrace.
type RegionSet struct {
	byNode map[GeneratorNode]Region
}

// NewRegionSet creates an empty set of node-to-region annotations.
func NewRegionSet() *RegionSet {
	return &RegionSet{byNode: map[GeneratorNode]Region{}}
}

// WithRegion records region against node and returns node unchanged, so
// callers can annotate a node inline while building a tree:
//
//	regions := gen.NewRegionSet()
//	root.Append(regions.WithRegion(gen.NewText("foo"), astNode))
func (r *RegionSet) WithRegion(node GeneratorNode, region Region) GeneratorNode {
	r.byNode[node] = region
	return node
}

// SerializeWithTrace behaves like Serialize, additionally returning one
// TraceEntry per node annotated via WithRegion, covering the byte range
// of output that node (and its descendants) produced.
func (r *RegionSet) SerializeWithTrace(node GeneratorNode) (string, []TraceEntry) {
	s := &serializer{atLineStart: true, trace: r}
	s.walk(node)
	return s.out.String(), s.entries
}
