package internal

import "github.com/osuushi/capholes/mesh"

type CapHolesResult struct {
	HolesCapped      int
	TrianglesCreated int
}

// Cap every hole in the mesh. Each unlinked poly-edge found while scanning the
// triangles seeds one hole; capping it links every edge of that hole, so the
// rest of its boundary is skipped when the scan reaches it.
//
// Only the triangles present at the start are scanned. Triangles appended by
// capping are fully linked by construction, which is checked at the end.
func CapHoles(store MeshStore, opts Options) CapHolesResult {
	var result CapHolesResult
	logger := opts.logger()

	numTriangles := store.NumTriangles()
	for t := 0; t < numTriangles; t++ {
		for slot := 0; slot < 3; slot++ {
			seed := mesh.PolyEdge{Tri: mesh.TriHandle(t), Slot: slot}
			if store.HasLink(seed) {
				continue
			}
			if opts.OnHole != nil {
				opts.OnHole(store, seed)
			}
			holeResult := CapHole(store, seed, opts)
			result.HolesCapped++
			result.TrianglesCreated += holeResult.TrianglesCreated
			logger.Debug("capped hole",
				"hole", result.HolesCapped,
				"seed", seed,
				"triangles", holeResult.TrianglesCreated,
			)
		}
	}

	for t := numTriangles; t < store.NumTriangles(); t++ {
		for slot := 0; slot < 3; slot++ {
			e := mesh.PolyEdge{Tri: mesh.TriHandle(t), Slot: slot}
			if !store.HasLink(e) {
				fatalf("capping left created edge %v unlinked", e)
			}
		}
	}
	if created := store.NumTriangles() - numTriangles; created != result.TrianglesCreated {
		fatalf("capping reported %d triangles but the mesh grew by %d", result.TrianglesCreated, created)
	}

	logger.Debug("capped holes", "holes", result.HolesCapped, "triangles", result.TrianglesCreated)
	return result
}
