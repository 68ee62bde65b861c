package internal

// This contains no actual tests. It is just a helper for checking that a hole
// was capped correctly.

import (
	"testing"

	"github.com/osuushi/capholes/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// Helper to check the outcome of capping one hole. The rules are:
// 1. A boundary of n edges produces n-2 triangles.
// 2. Every original boundary edge is now linked.
// 3. Every edge of every created triangle is linked.
// 4. All links are symmetric, and no poly-edge is the partner of two others.
func AssertValidCapping(t *testing.T, m *mesh.Mesh, boundary []mesh.PolyEdge, result CapHoleResult) {
	require.Equal(t, len(boundary)-2, result.TrianglesCreated, "boundary of %d edges", len(boundary))
	require.Len(t, result.Triangles, result.TrianglesCreated)

	for _, e := range boundary {
		assert.True(t, m.HasLink(e), "boundary edge %v is still open", e)
	}
	for _, tri := range result.Triangles {
		for _, e := range m.PolyEdges(tri) {
			assert.True(t, m.HasLink(e), "created edge %v is open", e)
		}
	}

	AssertManifoldLinks(t, m)
}

func AssertManifoldLinks(t *testing.T, m *mesh.Mesh) {
	require.True(t, mesh.HasValidEdgeLinks(m), "links must be symmetric")

	partners := make(map[mesh.PolyEdge]mesh.PolyEdge)
	for tri := 0; tri < m.NumTriangles(); tri++ {
		for _, e := range m.PolyEdges(mesh.TriHandle(tri)) {
			if !m.HasLink(e) {
				continue
			}
			other := m.LinkedEdge(e)
			if previous, ok := partners[other]; ok {
				t.Fatalf("%v is linked from both %v and %v", other, previous, e)
			}
			partners[other] = e
			// Linked edges cover the same undirected edge in opposite directions
			assert.Equal(t, m.Tail(e), m.Head(other), "link %v-%v", e, other)
			assert.Equal(t, m.Head(e), m.Tail(other), "link %v-%v", e, other)
		}
	}
}

// Sum of the area vectors of a set of triangles. For a planar patch this is
// the signed area times the plane normal, whether or not the triangles
// overlap.
func areaVector(m *mesh.Mesh, triangles []mesh.TriHandle) r3.Vec {
	var sum r3.Vec
	for _, tri := range triangles {
		sum = r3.Add(sum, m.AreaVector(tri))
	}
	return sum
}
