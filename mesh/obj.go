package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
)

// Minimal Wavefront OBJ support: "v" and "f" statements only. Faces must be
// triangles; texture and normal indices ("1/2/3", "1//3") are accepted and
// dropped, and negative (relative) indices are resolved. Everything else is
// ignored.

func ReadOBJ(r io.Reader) (*Mesh, error) {
	m := New()
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, errors.Errorf("line %d: vertex needs 3 coordinates", lineNumber)
			}
			var coords [3]float64
			for i := range coords {
				value, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, errors.Wrapf(err, "line %d: invalid coordinate %q", lineNumber, fields[i+1])
				}
				coords[i] = value
			}
			m.AddVert(r3.Vec{X: coords[0], Y: coords[1], Z: coords[2]})
		case "f":
			if len(fields) != 4 {
				return nil, errors.Errorf("line %d: only triangle faces are supported, got %d vertices", lineNumber, len(fields)-1)
			}
			var tri Triangle
			for i := range tri {
				v, err := parseFaceVertex(fields[i+1], m.NumVerts())
				if err != nil {
					return nil, errors.Wrapf(err, "line %d", lineNumber)
				}
				tri[i] = v
			}
			m.AddTriangle(tri[0], tri[1], tri[2])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading obj")
	}
	return m, nil
}

func parseFaceVertex(field string, numVerts int) (VertHandle, error) {
	indexString := field
	if i := strings.IndexByte(field, '/'); i >= 0 {
		indexString = field[:i]
	}
	index, err := strconv.Atoi(indexString)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid face vertex %q", field)
	}
	// OBJ indices are 1-based, negative ones count back from the last vertex
	if index < 0 {
		index = numVerts + index
	} else {
		index--
	}
	if index < 0 || index >= numVerts {
		return 0, errors.Errorf("face vertex %q out of range", field)
	}
	return VertHandle(index), nil
}

func WriteOBJ(w io.Writer, m *Mesh) error {
	out := bufio.NewWriter(w)
	for _, v := range m.verts {
		fmt.Fprintf(out, "v %s %s %s\n", formatFloat(v.Pos.X), formatFloat(v.Pos.Y), formatFloat(v.Pos.Z))
	}
	for _, tri := range m.tris {
		fmt.Fprintf(out, "f %d %d %d\n", tri[0]+1, tri[1]+1, tri[2]+1)
	}
	return errors.Wrap(out.Flush(), "writing obj")
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
