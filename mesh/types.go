package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

type VertHandle int

type TriHandle int

// A PolyEdge is a directed edge of one specific triangle. Slot i runs from the
// triangle's vertex i to vertex (i+1)%3. Handles are plain values, so they can
// be used as map keys.
type PolyEdge struct {
	Tri  TriHandle
	Slot int
}

// Marks the absence of a link.
var NoPolyEdge = PolyEdge{Tri: -1, Slot: -1}

func (e PolyEdge) Valid() bool {
	return e.Tri >= 0 && e.Slot >= 0 && e.Slot < 3
}

func (e PolyEdge) String() string {
	if !e.Valid() {
		return "PolyEdge(none)"
	}
	return fmt.Sprintf("PolyEdge(%d:%d)", e.Tri, e.Slot)
}

type Vert struct {
	Pos r3.Vec
	// Arbitrary user payload. The mesh never looks at it, but it is carried
	// through Filter and Append.
	Data interface{}
}

type Triangle [3]VertHandle
