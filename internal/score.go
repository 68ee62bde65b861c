package internal

import (
	"math"

	"github.com/osuushi/capholes/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// Score the triangle that would fill the gap between two consecutive boundary
// edges e0 (a→b) and e1 (b→c). Higher is better. The score is the product of
// three terms:
//
// 1. How well the new triangle's normal agrees with the normal of e0's
// triangle, in [0, 2].
// 2. The same for e1's triangle.
// 3. The smallest interior angle of the new triangle, which penalizes slivers.
//
// Degenerate candidates (repeated positions, collinear edges) score zero.
func Score(store MeshStore, e0, e1 mesh.PolyEdge) float64 {
	t0 := trace(store, e0)
	t1 := trace(store, e1)

	// The new triangle is (a, c, b), and its normal works out to t1 × t0
	cross := r3.Cross(t1, t0)
	length := r3.Norm(cross)
	if length == 0 || math.IsNaN(length) {
		return 0
	}
	normal := r3.Scale(1/length, cross)

	score0 := r3.Dot(store.Normal(e0.Tri), normal) + 1
	score1 := r3.Dot(store.Normal(e1.Tri), normal) + 1

	t01 := r3.Add(t0, t1)
	minAngle := math.Min(Angle(r3.Scale(-1, t0), t1), math.Min(
		Angle(t0, t01),
		Angle(r3.Scale(-1, t1), r3.Scale(-1, t01)),
	))

	score := score0 * score1 * minAngle
	if math.IsNaN(score) {
		return 0
	}
	return score
}

// Angle between two vectors in radians. Zero vectors give zero.
func Angle(v0, v1 r3.Vec) float64 {
	lengths := r3.Norm(v0) * r3.Norm(v1)
	if lengths == 0 {
		return 0
	}
	cos := r3.Dot(v0, v1) / lengths
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
