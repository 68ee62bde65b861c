package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCube(t *testing.T) {
	m := Cube()
	assert.Equal(t, 8, m.NumVerts())
	assert.Equal(t, 12, m.NumTriangles())

	// Every normal points away from the center
	for tri := 0; tri < m.NumTriangles(); tri++ {
		triangle := m.Triangle(TriHandle(tri))
		center := r3.Scale(1.0/3, r3.Add(m.Pos(triangle[0]), r3.Add(m.Pos(triangle[1]), m.Pos(triangle[2]))))
		assert.Greater(t, r3.Dot(m.Normal(TriHandle(tri)), center), 0.0, "triangle %d", tri)
	}
}

func TestUVSphere(t *testing.T) {
	const rings, segments = 5, 9
	m := UVSphere(rings, segments)
	assert.Equal(t, 2+(rings-1)*segments, m.NumVerts())
	assert.Equal(t, 2*segments*(rings-1), m.NumTriangles())

	for tri := 0; tri < m.NumTriangles(); tri++ {
		triangle := m.Triangle(TriHandle(tri))
		assert.InDelta(t, 1, r3.Norm(m.Pos(triangle[0])), 1e-12)
		assert.Greater(t, r3.Dot(m.Normal(TriHandle(tri)), m.Pos(triangle[0])), 0.0, "triangle %d", tri)
	}

	assert.Panics(t, func() { UVSphere(1, 9) })
}

func TestSphereBand(t *testing.T) {
	const rings, segments = 5, 9
	m := UVSphere(rings, segments)
	seen := make(map[TriHandle]bool)
	for r := 0; r < rings; r++ {
		for j := 0; j < segments; j++ {
			band := SphereBand(rings, segments, r, j)
			if r == 0 || r == rings-1 {
				require.Len(t, band, 1)
			} else {
				require.Len(t, band, 2)
			}
			for _, tri := range band {
				assert.False(t, seen[tri], "triangle %d in two bands", tri)
				seen[tri] = true
			}
		}
	}
	assert.Len(t, seen, m.NumTriangles())

	// The top band touches the pole
	assert.Equal(t, VertHandle(0), m.Triangle(SphereBand(rings, segments, 0, 4)[0])[0])
}

func TestRing(t *testing.T) {
	m := Ring(RegularPolygon(6, 1), 3)
	assert.Equal(t, 12, m.NumVerts())
	assert.Equal(t, 12, m.NumTriangles())

	var area float64
	for tri := 0; tri < m.NumTriangles(); tri++ {
		assert.InDelta(t, 1, m.Normal(TriHandle(tri)).Z, 1e-12)
		area += m.Area(TriHandle(tri))
	}
	hexagon := 3 * math.Sqrt(3) / 2
	assert.InDelta(t, hexagon*9-hexagon, area, 1e-9)

	assert.Panics(t, func() { Ring(RegularPolygon(2, 1), 2) })
}
