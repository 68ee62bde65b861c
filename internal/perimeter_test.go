package internal

import (
	"testing"

	"github.com/osuushi/capholes/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerimeterCyclicNavigation(t *testing.T) {
	var p Perimeter
	a := p.PushBack(mesh.PolyEdge{Tri: 0, Slot: 0})
	b := p.PushBack(mesh.PolyEdge{Tri: 1, Slot: 0})
	c := p.PushBack(mesh.PolyEdge{Tri: 2, Slot: 0})

	assert.Equal(t, b, p.Next(a))
	assert.Equal(t, a, p.Next(c))
	assert.Equal(t, c, p.Prev(a))
	assert.Equal(t, a, p.Prev(b))

	// Positions survive inserts and erases around them
	d := p.InsertBefore(mesh.PolyEdge{Tri: 3, Slot: 0}, a)
	p.Remove(b)
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, c, p.Next(a))
	assert.Equal(t, d, p.Prev(a))
	assert.Equal(t, mesh.PolyEdge{Tri: 3, Slot: 0}, EdgeAt(d))
	assert.Equal(t, []mesh.PolyEdge{{Tri: 3}, {Tri: 0}, {Tri: 2}}, p.Edges())
}

func TestWalkBoundary_Hexagon(t *testing.T) {
	m, seed := ringAround(mesh.RegularPolygon(6, 1))
	perimeter := WalkBoundary(m, seed)
	require.Equal(t, 6, perimeter.Len())

	edges := perimeter.Edges()
	assert.Equal(t, seed, edges[len(edges)-1], "seed comes last")
	for i, e := range edges {
		next := edges[(i+1)%len(edges)]
		assert.False(t, m.HasLink(e))
		assert.Equal(t, m.Head(e), m.Tail(next), "edges %v and %v are not adjacent", e, next)
		// Inner vertices are the first 6
		assert.Less(t, int(m.Tail(e)), 6)
	}
}

func TestWalkBoundary_OuterRing(t *testing.T) {
	m, _ := ringAround(mesh.RegularPolygon(8, 1))
	// Slot 1 of the even triangles runs along the outer edge
	perimeter := WalkBoundary(m, mesh.PolyEdge{Tri: 0, Slot: 1})
	require.Equal(t, 8, perimeter.Len())
	for _, e := range perimeter.Edges() {
		assert.GreaterOrEqual(t, int(m.Tail(e)), 8)
	}
}

func TestWalkBoundary_Slit(t *testing.T) {
	m := mesh.Cube()
	mesh.ComputeEdgeLinks(m)
	seed := mesh.PolyEdge{Tri: 0, Slot: 0}
	partner := m.LinkedEdge(seed)
	m.Unlink(seed)

	perimeter := WalkBoundary(m, seed)
	assert.Equal(t, []mesh.PolyEdge{partner, seed}, perimeter.Edges())
}

func TestWalkBoundary_LinkedSeed(t *testing.T) {
	m := mesh.Cube()
	mesh.ComputeEdgeLinks(m)
	assert.PanicsWithError(t, "boundary walk seed PolyEdge(0:0) is linked", func() {
		WalkBoundary(m, mesh.PolyEdge{Tri: 0, Slot: 0})
	})
}

func TestWalkBoundary_Visits(t *testing.T) {
	for _, name := range fixtureNames {
		name := name
		t.Run(name, func(t *testing.T) {
			outline := LoadFixture(name)
			m, seed := ringAround(outline)
			perimeter := WalkBoundary(m, seed)
			assert.Equal(t, len(outline), perimeter.Len())
		})
	}
}
