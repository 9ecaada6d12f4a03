// Package stl reads and writes meshes in the binary STL format: an 80 byte header, a little endian uint32
// triangle count and 50 bytes per triangle (normal, three corners, uint16 attribute).
package stl

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"planet_skybox/common"
	"planet_skybox/geometry"
	vm "planet_skybox/vector_math"
)

const (
	headerSize = 80
	stride     = 50
	// maxTriangles bounds the allocation a corrupt count can cause.
	maxTriangles = 1 << 24
)

var ErrMalformed = errors.New("malformed stl data")

// facet is the on disk triangle record, binary.Write packs it to exactly 50 bytes.
type facet struct {
	Normal [3]float32
	V      [3][3]float32
	Attr   uint16
}

func ReadFile(path string) (*geometry.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading stl file %s: %w", path, err)
	}
	return m, nil
}

// Read decodes a binary STL stream into a LayoutPositionNormal mesh. Every triangle gets its own three
// vertices carrying the facet normal.
func Read(r io.Reader) (*geometry.Mesh, error) {
	head := make([]byte, headerSize+4)
	if _, err := io.ReadFull(r, head); err != nil {
		return nil, fmt.Errorf("header: %v: %w", err, ErrMalformed)
	}
	tCnt := binary.LittleEndian.Uint32(head[headerSize:])
	if tCnt > maxTriangles {
		return nil, fmt.Errorf("%d triangles announced: %w", tCnt, ErrMalformed)
	}
	b := make([]byte, int(tCnt)*stride)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("%d triangles announced: %v: %w", tCnt, err, ErrMalformed)
	}
	return toMesh(b, tCnt), nil
}

func toMesh(bytes []byte, triangleCnt uint32) *geometry.Mesh {
	l := geometry.LayoutPositionNormal
	m := &geometry.Mesh{
		Layout:    l,
		Vertices:  make([]float32, 0, int(triangleCnt)*3*l.Stride()),
		Triangles: make([]geometry.Triangle, 0, triangleCnt),
	}
	idx := uint32(0)
	for i := 0; i+stride <= len(bytes); i += stride {
		normal := toVec3(bytes[i : i+12]).Vec4(0)
		for k := 0; k < 3; k++ {
			off := i + 12 + 12*k
			p := toVec3(bytes[off : off+12]).Vec4(1)
			m.Vertices = p.Slice(m.Vertices)
			m.Vertices = normal.Slice(m.Vertices)
		}
		m.Triangles = append(m.Triangles, geometry.Triangle{idx, idx + 1, idx + 2})
		idx += 3
	}
	return m
}

func toVec3(bytes []byte) vm.Vec3 {
	return vm.Vec3{
		X: toFloat32(bytes[:4]),
		Y: toFloat32(bytes[4:8]),
		Z: toFloat32(bytes[8:12]),
	}
}

func toFloat32(bytes []byte) float32 {
	bits := binary.LittleEndian.Uint32(bytes)
	return math.Float32frombits(bits)
}

func WriteFile(path string, m *geometry.Mesh, header string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, m, header); err != nil {
		f.Close()
		return fmt.Errorf("writing stl file %s: %w", path, err)
	}
	return f.Close()
}

// Write encodes the triangles of m. Facet normals are computed from the winding, header is cut to
// 80 bytes.
func Write(w io.Writer, m *geometry.Mesh, header string) error {
	if err := m.Validate(); err != nil {
		return err
	}
	head := make([]byte, headerSize+4)
	copy(head, header)
	binary.LittleEndian.PutUint32(head[headerSize:], uint32(len(m.Triangles)))
	if _, err := w.Write(head); err != nil {
		return err
	}

	facets := make([]facet, len(m.Triangles))
	for i, t := range m.Triangles {
		a, b, c := m.Position(int(t[0])).Vec3(), m.Position(int(t[1])).Vec3(), m.Position(int(t[2])).Vec3()
		n, err := b.Sub(a).Cross(c.Sub(a)).Norm()
		if err != nil {
			n = vm.Vec3{}
		}
		facets[i] = facet{
			Normal: [3]float32{n.X, n.Y, n.Z},
			V:      [3][3]float32{{a.X, a.Y, a.Z}, {b.X, b.Y, b.Z}, {c.X, c.Y, c.Z}},
		}
	}
	raw, err := common.RawBytes(facets)
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

// Size is the number of bytes Write produces for m.
func Size(m *geometry.Mesh) int64 {
	return int64(headerSize + 4 + stride*len(m.Triangles))
}
