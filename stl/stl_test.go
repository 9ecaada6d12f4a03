package stl

import (
	"bytes"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planet_skybox/geometry"
)

func TestRoundTrip(t *testing.T) {
	cube, err := geometry.NewCube()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cube, "cube"))
	assert.Equal(t, Size(cube), int64(buf.Len()))
	assert.Equal(t, "cube", string(bytes.TrimRight(buf.Bytes()[:80], "\x00")))
	assert.Equal(t, uint32(12), binary.LittleEndian.Uint32(buf.Bytes()[80:84]))

	m, err := Read(&buf)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, geometry.LayoutPositionNormal, m.Layout)
	assert.Equal(t, 12, m.TriangleCount())
	assert.Equal(t, 36, m.VertexCount())

	for i, tri := range cube.Triangles {
		for k := 0; k < 3; k++ {
			assert.Equal(t, cube.Position(int(tri[k])), m.Position(3*i+k))
		}
		// cube faces are flat, so the facet normal is the vertex normal
		want, _ := cube.Normal(int(tri[0]))
		got, ok := m.Normal(3 * i)
		require.True(t, ok)
		assert.InDelta(t, want.X, got.X, 1e-6)
		assert.InDelta(t, want.Y, got.Y, 1e-6)
		assert.InDelta(t, want.Z, got.Z, 1e-6)
		assert.Equal(t, float32(0), got.W)
	}
}

func TestWriteFile(t *testing.T) {
	sphere, err := geometry.NewSphere(1, 6, 8)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sphere.stl")
	require.NoError(t, WriteFile(path, sphere, "sphere"))

	m, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sphere.TriangleCount(), m.TriangleCount())
	min, max := m.Bounds()
	wantMin, wantMax := sphere.Bounds()
	assert.Equal(t, wantMin, min)
	assert.Equal(t, wantMax, max)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.stl"))
	assert.Error(t, err)
}

func TestReadMalformed(t *testing.T) {
	_, err := Read(bytes.NewReader(make([]byte, 40)))
	assert.ErrorIs(t, err, ErrMalformed)

	head := make([]byte, 84)
	binary.LittleEndian.PutUint32(head[80:], 2)
	_, err = Read(bytes.NewReader(append(head, make([]byte, 60)...)))
	assert.ErrorIs(t, err, ErrMalformed)

	binary.LittleEndian.PutUint32(head[80:], 0xffffffff)
	_, err = Read(bytes.NewReader(head))
	assert.ErrorIs(t, err, ErrMalformed)

	binary.LittleEndian.PutUint32(head[80:], 0)
	m, err := Read(bytes.NewReader(head))
	require.NoError(t, err)
	assert.Equal(t, 0, m.TriangleCount())
}

func TestWriteRejectsBrokenMesh(t *testing.T) {
	m := &geometry.Mesh{
		Layout:    geometry.LayoutPosition,
		Vertices:  []float32{0, 0, 0, 1},
		Triangles: []geometry.Triangle{{0, 1, 2}},
	}
	assert.ErrorIs(t, Write(&bytes.Buffer{}, m, ""), geometry.ErrIndexOutOfRange)
}
