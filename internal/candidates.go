package internal

import (
	"container/heap"

	"github.com/osuushi/capholes/mesh"
)

// A candidate proposes filling the gap between the perimeter edge at pos and
// its cyclic successor.
type candidate struct {
	score float64
	// Insertion order, used to break ties between equal scores
	seq   uint64
	pos   Position
	index int
}

// Max-heap by score. Equal scores pop in insertion order.
type candidateHeap []*candidate

func (h candidateHeap) Len() int {
	return len(h)
}

func (h candidateHeap) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score > h[j].score
	}
	return h[i].seq < h[j].seq
}

func (h candidateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *candidateHeap) Push(x interface{}) {
	c := x.(*candidate)
	c.index = len(*h)
	*h = append(*h, c)
}

func (h *candidateHeap) Pop() interface{} {
	old := *h
	c := old[len(old)-1]
	old[len(old)-1] = nil
	c.index = -1
	*h = old[:len(old)-1]
	return c
}

// CandidateIndex keeps the candidates of one hole ordered by score, along with
// a reverse lookup from the anchoring perimeter edge to its candidate. The
// reverse entries do not own anything; they are dropped together with the heap
// entry.
type CandidateIndex struct {
	heap    candidateHeap
	where   map[mesh.PolyEdge]*candidate
	nextSeq uint64
}

func NewCandidateIndex(capacity int) *CandidateIndex {
	return &CandidateIndex{
		heap:  make(candidateHeap, 0, capacity),
		where: make(map[mesh.PolyEdge]*candidate, capacity),
	}
}

// Add a candidate anchored at the perimeter edge stored in pos. Each edge can
// anchor at most one candidate.
func (ci *CandidateIndex) Insert(score float64, pos Position) {
	e := EdgeAt(pos)
	if _, ok := ci.where[e]; ok {
		fatalf("candidate for %v already exists", e)
	}
	c := &candidate{score: score, seq: ci.nextSeq, pos: pos}
	ci.nextSeq++
	heap.Push(&ci.heap, c)
	ci.where[e] = c
}

// Position of the best candidate, without removing it.
func (ci *CandidateIndex) Max() (Position, float64) {
	if len(ci.heap) == 0 {
		fatalf("no candidates left")
	}
	return ci.heap[0].pos, ci.heap[0].score
}

// Remove the candidate anchored at e.
func (ci *CandidateIndex) Remove(e mesh.PolyEdge) {
	c, ok := ci.where[e]
	if !ok {
		fatalf("no candidate for %v", e)
	}
	if c.index < 0 || c.index >= len(ci.heap) || ci.heap[c.index] != c {
		fatalf("candidate for %v is not in the heap", e)
	}
	heap.Remove(&ci.heap, c.index)
	delete(ci.where, e)
}

func (ci *CandidateIndex) Has(e mesh.PolyEdge) bool {
	_, ok := ci.where[e]
	return ok
}

func (ci *CandidateIndex) Len() int {
	return len(ci.heap)
}

func (ci *CandidateIndex) ReverseLen() int {
	return len(ci.where)
}
