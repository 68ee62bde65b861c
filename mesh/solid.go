package mesh

type SolidFailure int

const (
	SolidOK SolidFailure = iota
	DegenerateTriangles
	InvalidEdgeLinks
	IsolatedVerts
)

func (f SolidFailure) String() string {
	switch f {
	case SolidOK:
		return "ok"
	case DegenerateTriangles:
		return "degenerate triangles"
	case InvalidEdgeLinks:
		return "invalid edge links"
	case IsolatedVerts:
		return "isolated vertices"
	}
	return "unknown"
}

type SolidFlags int

const (
	// Do not require every poly-edge to be linked.
	AllowHoles SolidFlags = 1 << iota
)

type SolidResult struct {
	IsSolid bool
	Failure SolidFailure
}

// A triangle is degenerate when it uses the same vertex twice. Zero area
// triangles with distinct vertices are allowed.
func HasDegenerateTriangles(m *Mesh) bool {
	for _, tri := range m.tris {
		if tri[0] == tri[1] || tri[1] == tri[2] || tri[2] == tri[0] {
			return true
		}
	}
	return false
}

// A vertex is isolated when no triangle uses it.
func HasIsolatedVerts(m *Mesh) bool {
	used := make([]bool, m.NumVerts())
	for _, tri := range m.tris {
		for _, v := range tri {
			used[v] = true
		}
	}
	for _, u := range used {
		if !u {
			return true
		}
	}
	return false
}

// Check that the mesh is a closed, consistently linked surface. The checks
// run in order and the first failure is reported.
func CheckSolid(m *Mesh, flags SolidFlags) SolidResult {
	if HasDegenerateTriangles(m) {
		return SolidResult{Failure: DegenerateTriangles}
	}
	if !HasValidEdgeLinks(m) {
		return SolidResult{Failure: InvalidEdgeLinks}
	}
	if flags&AllowHoles == 0 && !HasAllEdgeLinks(m) {
		return SolidResult{Failure: InvalidEdgeLinks}
	}
	if HasIsolatedVerts(m) {
		return SolidResult{Failure: IsolatedVerts}
	}
	return SolidResult{IsSolid: true, Failure: SolidOK}
}

func IsSolid(m *Mesh) bool {
	return CheckSolid(m, 0).IsSolid
}
