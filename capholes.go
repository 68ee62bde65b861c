// Cap holes in triangle meshes.
//
// A hole is a loop of poly-edges that are not linked to any neighboring
// triangle. Capping fills it with new triangles by greedy ear clipping: at
// every step the gap between two consecutive boundary edges that best matches
// the orientation of the surrounding surface, and makes the least sliver-like
// triangle, is closed first. Every capped hole ends up fully linked, so a mesh
// with all of its holes capped is a closed surface.
//
// The mesh must be consistently oriented and manifold, and its links must be
// valid (see mesh.ComputeEdgeLinks). Violations are detected where possible
// and returned as errors; the mesh may be partially modified in that case.
package capholes

import (
	"io"

	"github.com/osuushi/capholes/internal"
	"github.com/osuushi/capholes/mesh"
)

type MeshStore = internal.MeshStore
type Options = internal.Options
type CapHoleResult = internal.CapHoleResult
type CapHolesResult = internal.CapHolesResult

// Cap the hole that the unlinked poly-edge seed lies on.
func CapHole(store MeshStore, seed mesh.PolyEdge) (result CapHoleResult, err error) {
	return CapHoleWithOptions(store, seed, Options{})
}

func CapHoleWithOptions(store MeshStore, seed mesh.PolyEdge, opts Options) (result CapHoleResult, err error) {
	defer func() {
		recoveredErr := internal.HandleCapPanicRecover(recover())
		if recoveredErr != nil {
			result = CapHoleResult{}
			err = recoveredErr
		}
	}()
	return internal.CapHole(store, seed, opts), nil
}

// Cap every hole in the mesh.
func CapHoles(store MeshStore) (result CapHolesResult, err error) {
	return CapHolesWithOptions(store, Options{})
}

func CapHolesWithOptions(store MeshStore, opts Options) (result CapHolesResult, err error) {
	defer func() {
		recoveredErr := internal.HandleCapPanicRecover(recover())
		if recoveredErr != nil {
			result = CapHolesResult{}
			err = recoveredErr
		}
	}()
	return internal.CapHoles(store, opts), nil
}

// Draw the outline of the hole that seed lies on to a PNG file at path. scale
// is in pixels per unit, reduced for very large holes. With catTo set, the
// image is also written there for an iTerm terminal to display.
func DrawPerimeter(store MeshStore, seed mesh.PolyEdge, path string, scale float64, catTo io.Writer) (err error) {
	defer func() {
		if recoveredErr := internal.HandleCapPanicRecover(recover()); recoveredErr != nil {
			err = recoveredErr
		}
	}()
	return internal.DrawPerimeter(store, seed, path, scale, catTo)
}
