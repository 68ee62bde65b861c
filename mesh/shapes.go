package mesh

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Shape generators. All of them wind their triangles counterclockwise when
// seen from outside, and none of them compute links.

// Axis aligned cube with corners at ±1, made of 12 triangles.
func Cube() *Mesh {
	m := New()
	for _, x := range []float64{-1, 1} {
		for _, y := range []float64{-1, 1} {
			for _, z := range []float64{-1, 1} {
				m.AddVert(r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	addQuad := func(a, b, c, d VertHandle) {
		m.AddTriangle(a, b, c)
		m.AddTriangle(a, c, d)
	}
	addQuad(0, 1, 3, 2)
	addQuad(5, 4, 6, 7)
	addQuad(1, 0, 4, 5)
	addQuad(2, 3, 7, 6)
	addQuad(3, 1, 5, 7)
	addQuad(0, 2, 6, 4)
	return m
}

// Unit sphere with rings-1 latitude rings of segments vertices each, plus a
// vertex at each pole. Triangle i of latitude band r (counting from the top,
// r in 0..rings-1) can be found with SphereBand.
func UVSphere(rings, segments int) *Mesh {
	if rings < 2 || segments < 3 {
		panic(errors.Errorf("sphere needs at least 2 rings and 3 segments, got %d and %d", rings, segments))
	}
	m := New()
	top := m.AddVert(r3.Vec{Z: 1})
	for i := 1; i < rings; i++ {
		theta := math.Pi * float64(i) / float64(rings)
		for j := 0; j < segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			m.AddVert(r3.Vec{
				X: math.Sin(theta) * math.Cos(phi),
				Y: math.Sin(theta) * math.Sin(phi),
				Z: math.Cos(theta),
			})
		}
	}
	bottom := m.AddVert(r3.Vec{Z: -1})

	ringVert := func(i, j int) VertHandle {
		return VertHandle(1 + (i-1)*segments + j%segments)
	}

	for j := 0; j < segments; j++ {
		m.AddTriangle(top, ringVert(1, j), ringVert(1, j+1))
	}
	for i := 1; i < rings-1; i++ {
		for j := 0; j < segments; j++ {
			a, b := ringVert(i, j), ringVert(i+1, j)
			c, d := ringVert(i+1, j+1), ringVert(i, j+1)
			m.AddTriangle(a, b, c)
			m.AddTriangle(a, c, d)
		}
	}
	for j := 0; j < segments; j++ {
		m.AddTriangle(ringVert(rings-1, j), bottom, ringVert(rings-1, j+1))
	}
	return m
}

// Triangles of a UVSphere that belong to latitude band r and segment j. The
// polar bands have one triangle per segment, the others two.
func SphereBand(rings, segments, r, j int) []TriHandle {
	j %= segments
	switch {
	case r == 0:
		return []TriHandle{TriHandle(j)}
	case r == rings-1:
		return []TriHandle{TriHandle(segments + 2*segments*(rings-2) + j)}
	}
	first := segments + 2*segments*(r-1) + 2*j
	return []TriHandle{TriHandle(first), TriHandle(first + 1)}
}

// Flat band of triangles in the z=0 plane between a polygon outline and a
// copy of it scaled about its centroid. The outline must be counterclockwise
// and star shaped around its centroid so the copy does not cross it. The
// result has two holes: the outline itself and the outer edge of the band.
func Ring(outline []r3.Vec, scale float64) *Mesh {
	n := len(outline)
	if n < 3 {
		panic(errors.Errorf("ring outline needs at least 3 points, got %d", n))
	}
	var centroid r3.Vec
	for _, p := range outline {
		centroid = r3.Add(centroid, p)
	}
	centroid = r3.Scale(1/float64(n), centroid)

	m := New()
	for _, p := range outline {
		m.AddVert(r3.Vec{X: p.X, Y: p.Y})
	}
	for _, p := range outline {
		q := r3.Add(centroid, r3.Scale(scale, r3.Sub(p, centroid)))
		m.AddVert(r3.Vec{X: q.X, Y: q.Y})
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		inner, innerNext := VertHandle(i), VertHandle(next)
		outer, outerNext := VertHandle(n+i), VertHandle(n+next)
		m.AddTriangle(inner, outer, outerNext)
		m.AddTriangle(inner, outerNext, innerNext)
	}
	return m
}

// Counterclockwise regular polygon in the z=0 plane.
func RegularPolygon(n int, radius float64) []r3.Vec {
	points := make([]r3.Vec, n)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = r3.Vec{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}
	}
	return points
}
