package internal

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/osuushi/capholes/mesh"
)

type Options struct {
	// Receives per-hole and per-step debug logs. Nil discards them.
	Logger *log.Logger
	// Called with the seed edge of every hole before it is capped.
	OnHole func(store MeshStore, seed mesh.PolyEdge)
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

type CapHoleResult struct {
	TrianglesCreated int
	// The created triangles, in creation order
	Triangles []mesh.TriHandle
}

type capState int

const (
	stateInitializing capState = iota
	stateReducing
	stateClosing
	stateDone
)

func (s capState) String() string {
	return [...]string{"initializing", "reducing", "closing", "done"}[s]
}

// Greedy ear clipping state for one hole.
type earClipper struct {
	store      MeshStore
	logger     *log.Logger
	state      capState
	perimeter  *Perimeter
	candidates *CandidateIndex
	result     CapHoleResult
}

// Cap the hole that the unlinked poly-edge seed lies on. Triangles are added
// to the store until every boundary edge of the hole is linked. A hole with n
// boundary edges gets n-2 triangles; a two edge slit is closed by linking its
// edges directly.
//
// Each step fills the best scoring gap between two consecutive boundary
// edges, replacing them with the new triangle's third edge.
func CapHole(store MeshStore, seed mesh.PolyEdge, opts Options) CapHoleResult {
	c := &earClipper{store: store, logger: opts.logger()}
	c.initialize(seed)
	for c.perimeter.Len() >= 3 {
		c.reduce()
	}
	c.close()
	return c.result
}

func (c *earClipper) enter(state capState) {
	c.state = state
	c.logger.Debug("cap hole", "state", state, "perimeter", c.perimeter.Len())
}

func (c *earClipper) initialize(seed mesh.PolyEdge) {
	c.state = stateInitializing
	c.perimeter = WalkBoundary(c.store, seed)
	if c.perimeter.Len() < 2 {
		fatalf("hole at %v has a boundary of %d edges", seed, c.perimeter.Len())
	}
	c.logger.Debug("cap hole", "state", c.state, "boundary", c.perimeter.DbgString(c.store))

	c.candidates = NewCandidateIndex(c.perimeter.Len())
	for pos := c.perimeter.Front(); pos != nil; pos = pos.Next() {
		c.addCandidate(pos)
	}
	c.result.Triangles = make([]mesh.TriHandle, 0, c.perimeter.Len()-2)
	c.enter(stateReducing)
}

func (c *earClipper) addCandidate(pos Position) {
	next := c.perimeter.Next(pos)
	e0, e1 := EdgeAt(pos), EdgeAt(next)
	if c.store.Head(e0) != c.store.Tail(e1) {
		fatalf("perimeter edges %v and %v are not adjacent", e0, e1)
	}
	c.candidates.Insert(Score(c.store, e0, e1), pos)
}

func (c *earClipper) reduce() {
	store := c.store
	curr, score := c.candidates.Max()
	next := c.perimeter.Next(curr)
	currEdge, nextEdge := EdgeAt(curr), EdgeAt(next)

	prevVert := store.Tail(currEdge)
	midVert := store.Head(currEdge)
	nextVert := store.Head(nextEdge)
	if midVert != store.Tail(nextEdge) {
		fatalf("perimeter edges %v and %v are not adjacent", currEdge, nextEdge)
	}

	// Reversed winding relative to the boundary, so the new triangle faces the
	// same way as its neighbors. Slot 0 runs prev→next, slot 1 next→mid and slot
	// 2 mid→prev.
	tri := store.AddTriangle(prevVert, nextVert, midVert)
	c.result.TrianglesCreated++
	c.result.Triangles = append(c.result.Triangles, tri)
	store.Link(currEdge, mesh.PolyEdge{Tri: tri, Slot: 2})
	store.Link(nextEdge, mesh.PolyEdge{Tri: tri, Slot: 1})

	prev := c.perimeter.Prev(curr)
	newEdge := mesh.PolyEdge{Tri: tri, Slot: 0}
	newPos := c.perimeter.InsertBefore(newEdge, curr)
	if store.Tail(newEdge) != store.Head(EdgeAt(prev)) || store.Head(newEdge) != nextVert {
		fatalf("new perimeter edge %v is not adjacent to its neighbors", newEdge)
	}

	c.logger.Debug("clip",
		"score", score,
		"triangle", tri,
		"perimeter", c.perimeter.Len()-2,
	)

	c.candidates.Remove(EdgeAt(prev))
	c.candidates.Remove(nextEdge)
	c.candidates.Remove(currEdge)

	c.perimeter.Remove(curr)
	c.perimeter.Remove(next)

	c.addCandidate(prev)
	c.addCandidate(newPos)

	if c.perimeter.Len() != c.candidates.Len() || c.candidates.Len() != c.candidates.ReverseLen() {
		fatalf("perimeter and candidates out of sync: %d edges, %d candidates, %d reverse entries",
			c.perimeter.Len(), c.candidates.Len(), c.candidates.ReverseLen())
	}
}

// The last two boundary edges are the same geometric edge seen from both
// sides.
func (c *earClipper) close() {
	c.enter(stateClosing)
	e0 := EdgeAt(c.perimeter.Front())
	e1 := EdgeAt(c.perimeter.Next(c.perimeter.Front()))
	if c.store.Tail(e0) != c.store.Head(e1) || c.store.Head(e0) != c.store.Tail(e1) {
		fatalf("closing edges %v and %v do not match", e0, e1)
	}
	c.store.Link(e0, e1)
	c.enter(stateDone)
}
