package internal

import (
	"container/list"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/capholes/dbg"
	"github.com/osuushi/capholes/mesh"
)

// A Perimeter is the boundary loop of one hole: a cyclic sequence of unlinked
// poly-edges where each edge's head is the next edge's tail. Positions are list
// elements, and they stay valid while other positions are inserted or erased.
type Perimeter struct {
	edges list.List
}

type Position = *list.Element

func (p *Perimeter) Len() int {
	return p.edges.Len()
}

func (p *Perimeter) Front() Position {
	return p.edges.Front()
}

func (p *Perimeter) PushBack(e mesh.PolyEdge) Position {
	return p.edges.PushBack(e)
}

// Insert a new edge directly before pos.
func (p *Perimeter) InsertBefore(e mesh.PolyEdge, pos Position) Position {
	return p.edges.InsertBefore(e, pos)
}

func (p *Perimeter) Remove(pos Position) {
	p.edges.Remove(pos)
}

// Cyclic successor.
func (p *Perimeter) Next(pos Position) Position {
	if next := pos.Next(); next != nil {
		return next
	}
	return p.edges.Front()
}

// Cyclic predecessor.
func (p *Perimeter) Prev(pos Position) Position {
	if prev := pos.Prev(); prev != nil {
		return prev
	}
	return p.edges.Back()
}

func EdgeAt(pos Position) mesh.PolyEdge {
	return pos.Value.(mesh.PolyEdge)
}

func (p *Perimeter) Edges() []mesh.PolyEdge {
	result := make([]mesh.PolyEdge, 0, p.Len())
	for pos := p.edges.Front(); pos != nil; pos = pos.Next() {
		result = append(result, EdgeAt(pos))
	}
	return result
}

// Trace the boundary of the hole that seed lies on. The walk rotates around
// the head vertex of the current edge, stepping to the next poly-edge of the
// triangle and jumping across links until it finds the next unlinked edge.
// The seed is the last entry of the result.
//
// On a consistent mesh the walk always returns to the seed. Dangling or
// asymmetric links and non-manifold vertices can send it around forever, so
// the number of steps is bounded by the number of poly-edges in the mesh.
func WalkBoundary(store MeshStore, seed mesh.PolyEdge) *Perimeter {
	if store.HasLink(seed) {
		fatalf("boundary walk seed %v is linked", seed)
	}

	perimeter := &Perimeter{}
	maxSteps := 3*store.NumTriangles() + 1
	steps := 0
	e := seed
	for {
		for store.HasLink(store.Next(e)) {
			e = store.LinkedEdge(store.Next(e))
			steps++
			if steps > maxSteps {
				fatalf("boundary walk from %v did not return to its seed after %d steps", seed, steps)
			}
		}
		e = store.Next(e)
		steps++
		if steps > maxSteps {
			fatalf("boundary walk from %v did not return to its seed after %d steps", seed, steps)
		}
		perimeter.PushBack(e)
		if e == seed {
			break
		}
	}
	return perimeter
}

// Debug listing of the perimeter, with vertex names between edges. The first
// edge is cyan.
func (p *Perimeter) DbgString(store MeshStore) string {
	var parts []string
	for pos := p.edges.Front(); pos != nil; pos = pos.Next() {
		e := EdgeAt(pos)
		name := dbg.Name(e)
		if pos == p.edges.Front() {
			name = aurora.Cyan(name).String()
		}
		parts = append(parts, dbg.Name(store.Tail(e)), name)
	}
	return strings.Join(parts, " → ")
}
