package mesh

import "gonum.org/v1/gonum/spatial/r3"

func Translate(m *Mesh, d r3.Vec) {
	for i := range m.verts {
		m.verts[i].Pos = r3.Add(m.verts[i].Pos, d)
	}
}

// Reverse the winding of every triangle by swapping its last two vertices.
// Links are carried over: slot 0 and slot 2 trade places, slot 1 stays put.
func InvertTriangles(m *Mesh) {
	swapSlot := [3]int{2, 1, 0}
	for t := range m.tris {
		m.tris[t][1], m.tris[t][2] = m.tris[t][2], m.tris[t][1]
		old := m.links[t]
		for slot, link := range old {
			if link.Valid() {
				link.Slot = swapSlot[link.Slot]
			}
			m.links[t][swapSlot[slot]] = link
		}
	}
}

// Append copies of all vertices, triangles and links of other to m.
func Append(m *Mesh, other *Mesh) {
	vertOffset := VertHandle(len(m.verts))
	triOffset := TriHandle(len(m.tris))

	m.verts = append(m.verts, other.verts...)
	for t, tri := range other.tris {
		m.tris = append(m.tris, Triangle{tri[0] + vertOffset, tri[1] + vertOffset, tri[2] + vertOffset})
		var links [3]PolyEdge
		for slot, link := range other.links[t] {
			if link.Valid() {
				link.Tri += triOffset
			}
			links[slot] = link
		}
		m.links = append(m.links, links)
	}
}

// Build a new mesh from the triangles of m for which keep returns true.
// Vertices that are no longer used by any triangle are dropped, and the
// remaining ones are renumbered in their original order. The result has no
// links; run ComputeEdgeLinks on it.
func Filter(m *Mesh, keep func(t TriHandle) bool) *Mesh {
	var kept []Triangle
	used := make([]bool, len(m.verts))
	for t, tri := range m.tris {
		if !keep(TriHandle(t)) {
			continue
		}
		kept = append(kept, tri)
		for _, v := range tri {
			used[v] = true
		}
	}

	result := New()
	remap := make([]VertHandle, len(m.verts))
	for v, vert := range m.verts {
		if used[v] {
			remap[v] = result.AddVertData(vert.Pos, vert.Data)
		}
	}
	for _, tri := range kept {
		result.AddTriangle(remap[tri[0]], remap[tri[1]], remap[tri[2]])
	}
	return result
}
