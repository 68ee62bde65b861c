// Package mesh is an indexed triangle mesh with symmetric poly-edge links.
//
// Vertices and triangles are stored in flat arrays and referenced by their
// index. Each triangle has three poly-edges, and every poly-edge may be linked
// to exactly one poly-edge of another triangle that covers the same undirected
// edge in the opposite direction. An unlinked poly-edge is on the boundary of a
// hole.
//
// Triangles are only ever appended, so handles stay valid for the lifetime of
// the mesh. Operations that would break link symmetry panic with an error
// rather than returning one; see the capholes package for the recovering
// public API.
package mesh

import (
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/capholes/dbg"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

type Mesh struct {
	verts []Vert
	tris  []Triangle
	links [][3]PolyEdge
}

func New() *Mesh {
	return &Mesh{}
}

func (m *Mesh) AddVert(pos r3.Vec) VertHandle {
	return m.AddVertData(pos, nil)
}

func (m *Mesh) AddVertData(pos r3.Vec, data interface{}) VertHandle {
	m.verts = append(m.verts, Vert{Pos: pos, Data: data})
	return VertHandle(len(m.verts) - 1)
}

func (m *Mesh) NumVerts() int {
	return len(m.verts)
}

func (m *Mesh) Vert(v VertHandle) Vert {
	return m.verts[v]
}

func (m *Mesh) Pos(v VertHandle) r3.Vec {
	return m.verts[v].Pos
}

func (m *Mesh) SetPos(v VertHandle, pos r3.Vec) {
	m.verts[v].Pos = pos
}

// Add a triangle. All three of its poly-edges start out unlinked.
func (m *Mesh) AddTriangle(a, b, c VertHandle) TriHandle {
	for _, v := range []VertHandle{a, b, c} {
		if v < 0 || int(v) >= len(m.verts) {
			panic(errors.Errorf("triangle references missing vertex %d", v))
		}
	}
	m.tris = append(m.tris, Triangle{a, b, c})
	m.links = append(m.links, [3]PolyEdge{NoPolyEdge, NoPolyEdge, NoPolyEdge})
	return TriHandle(len(m.tris) - 1)
}

func (m *Mesh) NumTriangles() int {
	return len(m.tris)
}

func (m *Mesh) Triangle(t TriHandle) Triangle {
	return m.tris[t]
}

func (m *Mesh) PolyEdges(t TriHandle) [3]PolyEdge {
	return [3]PolyEdge{{t, 0}, {t, 1}, {t, 2}}
}

// Next poly-edge within the same triangle.
func (m *Mesh) Next(e PolyEdge) PolyEdge {
	return PolyEdge{e.Tri, (e.Slot + 1) % 3}
}

// Previous poly-edge within the same triangle.
func (m *Mesh) Prev(e PolyEdge) PolyEdge {
	return PolyEdge{e.Tri, (e.Slot + 2) % 3}
}

// The vertex the poly-edge starts at.
func (m *Mesh) Tail(e PolyEdge) VertHandle {
	return m.tris[e.Tri][e.Slot]
}

// The vertex the poly-edge ends at.
func (m *Mesh) Head(e PolyEdge) VertHandle {
	return m.tris[e.Tri][(e.Slot+1)%3]
}

// The vertex of the owning triangle that is not on the poly-edge.
func (m *Mesh) Opposite(e PolyEdge) VertHandle {
	return m.tris[e.Tri][(e.Slot+2)%3]
}

func (m *Mesh) HasLink(e PolyEdge) bool {
	return m.links[e.Tri][e.Slot].Valid()
}

// The poly-edge linked to e. Following a missing link is a programming error.
func (m *Mesh) LinkedEdge(e PolyEdge) PolyEdge {
	other := m.links[e.Tri][e.Slot]
	if !other.Valid() {
		panic(errors.Errorf("following missing link of %v", e))
	}
	return other
}

// Link two unlinked poly-edges to each other.
func (m *Mesh) Link(a, b PolyEdge) {
	if m.HasLink(a) {
		panic(errors.Errorf("cannot link %v: already linked to %v", a, m.links[a.Tri][a.Slot]))
	}
	if m.HasLink(b) {
		panic(errors.Errorf("cannot link %v: already linked to %v", b, m.links[b.Tri][b.Slot]))
	}
	m.links[a.Tri][a.Slot] = b
	m.links[b.Tri][b.Slot] = a
}

// Unlink a poly-edge and its partner.
func (m *Mesh) Unlink(e PolyEdge) {
	other := m.LinkedEdge(e)
	if m.links[other.Tri][other.Slot] != e {
		panic(errors.Errorf("asymmetric link: %v -> %v -> %v", e, other, m.links[other.Tri][other.Slot]))
	}
	m.links[e.Tri][e.Slot] = NoPolyEdge
	m.links[other.Tri][other.Slot] = NoPolyEdge
}

// Vector from the tail to the head of a poly-edge.
func (m *Mesh) Trace(e PolyEdge) r3.Vec {
	return r3.Sub(m.Pos(m.Head(e)), m.Pos(m.Tail(e)))
}

// Unit normal of a triangle, following the right hand rule over its vertex
// order. Degenerate triangles have a zero normal.
func (m *Mesh) Normal(t TriHandle) r3.Vec {
	n := m.crossProduct(t)
	length := r3.Norm(n)
	if length == 0 || math.IsNaN(length) {
		return r3.Vec{}
	}
	return r3.Scale(1/length, n)
}

func (m *Mesh) Area(t TriHandle) float64 {
	return r3.Norm(m.crossProduct(t)) / 2
}

// Area vector of a triangle: its normal scaled by its area. Summing these
// over a patch gives the patch's projected area in every axis, regardless of
// whether the patch is a valid triangulation.
func (m *Mesh) AreaVector(t TriHandle) r3.Vec {
	return r3.Scale(0.5, m.crossProduct(t))
}

func (m *Mesh) crossProduct(t TriHandle) r3.Vec {
	tri := m.tris[t]
	p0 := m.Pos(tri[0])
	return r3.Cross(r3.Sub(m.Pos(tri[1]), p0), r3.Sub(m.Pos(tri[2]), p0))
}

// Readable colored name for a poly-edge: green when linked, red when open.
func (m *Mesh) DbgName(e PolyEdge) string {
	name := dbg.Name(e)
	if m.HasLink(e) {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}
