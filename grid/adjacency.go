package grid

// neighborOffsets lists the 4-connected moves in generation order:
// up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Graph is the adjacency view of a Grid: nodes are non-obstacle cells and
// each node maps to its in-bounds, non-obstacle neighbors in the order
// up, down, left, right. It is read-only once built.
type Graph struct {
	nodes []Cell
	edges map[Cell][]Cell
}

// BuildGraph derives the Graph of g. Nodes are inserted in row-major order.
// Edges are symmetric because the in-bounds/non-obstacle test is mutual.
// A nil grid yields an empty Graph.
//
// Complexity: O(R×C×4) time, O(V+E) memory.
func BuildGraph(g *Grid) *Graph {
	gr := &Graph{edges: make(map[Cell][]Cell)}
	if g == nil {
		return gr
	}
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.state(r, c) == Obstacle {
				continue
			}
			u := Cell{Row: r, Col: c}
			gr.nodes = append(gr.nodes, u)
			nbrs := make([]Cell, 0, len(neighborOffsets))
			for _, d := range neighborOffsets {
				v := Cell{Row: r + d[0], Col: c + d[1]}
				if !g.InBounds(v) || g.state(v.Row, v.Col) == Obstacle {
					continue
				}
				nbrs = append(nbrs, v)
			}
			gr.edges[u] = nbrs
		}
	}
	return gr
}

// Nodes returns the node set in insertion (row-major) order.
func (gr *Graph) Nodes() []Cell {
	out := make([]Cell, len(gr.nodes))
	copy(out, gr.nodes)
	return out
}

// HasNode reports whether c is a node of the graph.
func (gr *Graph) HasNode(c Cell) bool {
	_, ok := gr.edges[c]
	return ok
}

// Neighbors returns the neighbors of c in up, down, left, right order,
// or nil when c is not a node.
func (gr *Graph) Neighbors(c Cell) []Cell {
	nbrs, ok := gr.edges[c]
	if !ok {
		return nil
	}
	out := make([]Cell, len(nbrs))
	copy(out, nbrs)
	return out
}

// HasEdge reports whether b appears in the neighbor list of a.
func (gr *Graph) HasEdge(a, b Cell) bool {
	for _, v := range gr.edges[a] {
		if v == b {
			return true
		}
	}
	return false
}

// NodeCount returns V.
func (gr *Graph) NodeCount() int { return len(gr.nodes) }

// EdgeCount returns the number of undirected edges (each adjacency pair once).
func (gr *Graph) EdgeCount() int {
	n := 0
	for _, nbrs := range gr.edges {
		n += len(nbrs)
	}
	return n / 2
}
