package mesh

type LinkResult struct {
	MatchedEdges int
	OpenEdges    int
}

type vertPair struct {
	tail, head VertHandle
}

// Link every unlinked poly-edge to an unlinked poly-edge running the opposite
// way between the same two vertices. Existing links are left alone. If one
// edge is shared by more than two triangles, which poly-edges get paired is
// undefined.
func ComputeEdgeLinks(m *Mesh) LinkResult {
	var result LinkResult
	open := make(map[vertPair]PolyEdge)

	for t := 0; t < m.NumTriangles(); t++ {
		for _, e := range m.PolyEdges(TriHandle(t)) {
			if m.HasLink(e) {
				continue
			}
			key := vertPair{m.Tail(e), m.Head(e)}
			reverse := vertPair{key.head, key.tail}
			if other, ok := open[reverse]; ok {
				delete(open, reverse)
				m.Link(e, other)
				result.MatchedEdges++
				continue
			}
			open[key] = e
		}
	}

	result.OpenEdges = len(open)
	return result
}

// Every link is two-way and points at a real poly-edge.
func HasValidEdgeLinks(m *Mesh) bool {
	for t := 0; t < m.NumTriangles(); t++ {
		for _, e := range m.PolyEdges(TriHandle(t)) {
			if !m.HasLink(e) {
				continue
			}
			other := m.links[e.Tri][e.Slot]
			if int(other.Tri) >= m.NumTriangles() {
				return false
			}
			if m.links[other.Tri][other.Slot] != e {
				return false
			}
		}
	}
	return true
}

// Assumes the links are valid.
func HasAllEdgeLinks(m *Mesh) bool {
	return len(OpenEdges(m)) == 0
}

// All unlinked poly-edges, in triangle order.
func OpenEdges(m *Mesh) []PolyEdge {
	var result []PolyEdge
	for t := 0; t < m.NumTriangles(); t++ {
		for _, e := range m.PolyEdges(TriHandle(t)) {
			if !m.HasLink(e) {
				result = append(result, e)
			}
		}
	}
	return result
}
