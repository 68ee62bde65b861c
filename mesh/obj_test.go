package mesh

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const tetrahedronOBJ = `# tetrahedron
o tetra
v 0 0 0
v 1 0 0
v 0 1 0
v 0 0 1.5
vn 0 0 1
f 1 3 2
f 1/1 2/2 4/4
f 2//1 3//1 4//1
f -4 -1 -2
`

func TestReadOBJ(t *testing.T) {
	m, err := ReadOBJ(strings.NewReader(tetrahedronOBJ))
	require.NoError(t, err)
	assert.Equal(t, 4, m.NumVerts())
	assert.Equal(t, 4, m.NumTriangles())
	assert.Equal(t, r3.Vec{Z: 1.5}, m.Pos(3))
	assert.Equal(t, Triangle{1, 2, 3}, m.Triangle(2))
	assert.Equal(t, Triangle{0, 3, 2}, m.Triangle(3))

	ComputeEdgeLinks(m)
	assert.True(t, IsSolid(m))
}

func TestReadOBJ_Errors(t *testing.T) {
	cases := map[string]string{
		"quad":         "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n",
		"out of range": "v 0 0 0\nf 1 2 3\n",
		"bad float":    "v 0 zero 0\n",
		"short vertex": "v 0 0\n",
		"bad index":    "v 0 0 0\nf a b c\n",
	}
	for name, input := range cases {
		input := input
		t.Run(name, func(t *testing.T) {
			_, err := ReadOBJ(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}

func TestWriteOBJ(t *testing.T) {
	m := Cube()
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, m))
	assert.True(t, strings.HasPrefix(buf.String(), "v -1 -1 -1\n"))
	assert.Contains(t, buf.String(), "f 1 2 4\n")

	read, err := ReadOBJ(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.NumVerts(), read.NumVerts())
	for tri := 0; tri < m.NumTriangles(); tri++ {
		assert.Equal(t, m.Triangle(TriHandle(tri)), read.Triangle(TriHandle(tri)))
	}
}
