package autodiff

// Edge connects an operand to the node computed from it.
type Edge struct {
	From *Value // Operand
	To   *Value // Consumer
}

// Trace collects the nodes and edges of the graph rooted at root.
//
// Nodes come in topological order. Edges are listed per consumer in operand
// order; an operand used twice by one node (x * x) yields two edges.
// Together with Value.Op and Value.Label this is everything a renderer needs.
func Trace(root *Value) ([]*Value, []Edge) {
	nodes := TopologicalOrder(root)

	var edges []Edge
	for _, n := range nodes {
		for _, p := range n.prev {
			edges = append(edges, Edge{From: p, To: n})
		}
	}

	return nodes, edges
}
