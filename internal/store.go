package internal

import (
	"github.com/osuushi/capholes/mesh"
	"gonum.org/v1/gonum/spatial/r3"
)

// The operations hole capping needs from a mesh. *mesh.Mesh implements it, but
// any representation that hands out the same kind of handles will do. The
// owning triangle of a poly-edge is its Tri field.
type MeshStore interface {
	Pos(v mesh.VertHandle) r3.Vec

	// New triangles must start with three unlinked poly-edges. Triangle handles
	// run from 0 to NumTriangles()-1, and creating one never invalidates the
	// others.
	AddTriangle(a, b, c mesh.VertHandle) mesh.TriHandle
	NumTriangles() int

	Next(e mesh.PolyEdge) mesh.PolyEdge
	Prev(e mesh.PolyEdge) mesh.PolyEdge
	Tail(e mesh.PolyEdge) mesh.VertHandle
	Head(e mesh.PolyEdge) mesh.VertHandle
	Opposite(e mesh.PolyEdge) mesh.VertHandle

	HasLink(e mesh.PolyEdge) bool
	LinkedEdge(e mesh.PolyEdge) mesh.PolyEdge
	Link(a, b mesh.PolyEdge)
	Unlink(e mesh.PolyEdge)

	// Unit normal, zero for degenerate triangles.
	Normal(t mesh.TriHandle) r3.Vec
}

var _ MeshStore = (*mesh.Mesh)(nil)

func trace(store MeshStore, e mesh.PolyEdge) r3.Vec {
	return r3.Sub(store.Pos(store.Head(e)), store.Pos(store.Tail(e)))
}
