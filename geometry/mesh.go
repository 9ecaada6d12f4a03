package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	vm "planet_skybox/vector_math"
)

// Triangle indexes three vertices of a Mesh, counter-clockwise when seen from
// the side the face is visible from.
type Triangle [3]uint32

// Mesh is a vertex buffer of Layout records plus the triangles indexing into
// it. Generators append to a Mesh and never modify what is already there.
type Mesh struct {
	Layout    Layout
	Vertices  []float32
	Triangles []Triangle
}

func NewMesh(l Layout) *Mesh {
	return &Mesh{Layout: l}
}

func (m *Mesh) VertexCount() int {
	if s := m.Layout.Stride(); s > 0 {
		return len(m.Vertices) / s
	}
	return 0
}

func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Indices flattens the triangles into the index buffer handed to the GPU.
func (m *Mesh) Indices() []uint32 {
	idx := make([]uint32, 0, len(m.Triangles)*3)
	for _, t := range m.Triangles {
		idx = append(idx, t[0], t[1], t[2])
	}
	return idx
}

func (m *Mesh) slot(i int, s Semantic) (vm.Vec4, bool) {
	off, ok := m.Layout.Offset(s)
	if !ok || i < 0 || i >= m.VertexCount() {
		return vm.Vec4{}, false
	}
	f := m.Vertices[i*m.Layout.Stride()+off:]
	return vm.Vec4{X: f[0], Y: f[1], Z: f[2], W: f[3]}, true
}

// Position returns the homogeneous position of vertex i.
func (m *Mesh) Position(i int) vm.Vec4 {
	p, _ := m.slot(i, SemanticPosition)
	return p
}

// Normal returns the normal of vertex i, false if the layout has none.
func (m *Mesh) Normal(i int) (vm.Vec4, bool) {
	return m.slot(i, SemanticNormal)
}

// UV returns the texture coordinates of vertex i, false if the layout has none.
func (m *Mesh) UV(i int) (vm.Vec2, bool) {
	uv, ok := m.slot(i, SemanticUV)
	return vm.Vec2{X: uv.X, Y: uv.Y}, ok
}

// Bounds returns the axis aligned box around all positions.
func (m *Mesh) Bounds() (min, max vm.Vec3) {
	n := m.VertexCount()
	if n == 0 {
		return
	}
	min = m.Position(0).Vec3()
	max = min
	for i := 1; i < n; i++ {
		p := m.Position(i)
		min.X, max.X = math32.Min(min.X, p.X), math32.Max(max.X, p.X)
		min.Y, max.Y = math32.Min(min.Y, p.Y), math32.Max(max.Y, p.Y)
		min.Z, max.Z = math32.Min(min.Z, p.Z), math32.Max(max.Z, p.Z)
	}
	return
}

// Validate checks the record count and that every index addresses a vertex.
func (m *Mesh) Validate() error {
	if !m.Layout.Valid() {
		if len(m.Vertices) == 0 && len(m.Triangles) == 0 {
			return nil
		}
		return fmt.Errorf("mesh with %d floats: %w", len(m.Vertices), ErrLayoutMismatch)
	}
	if len(m.Vertices)%m.Layout.Stride() != 0 {
		return fmt.Errorf("%d floats with stride %d: %w", len(m.Vertices), m.Layout.Stride(), ErrMalformedVertices)
	}
	n := uint32(m.VertexCount())
	for ti, t := range m.Triangles {
		for _, idx := range t {
			if idx >= n {
				return fmt.Errorf("triangle %d index %d of %d vertices: %w", ti, idx, n, ErrIndexOutOfRange)
			}
		}
	}
	return nil
}

// Append copies other onto the end of m, offsetting its indices by the
// vertices m already holds.
func (m *Mesh) Append(other *Mesh) error {
	base, err := m.begin(other.Layout)
	if err != nil {
		return err
	}
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, t := range other.Triangles {
		m.Triangles = append(m.Triangles, Triangle{t[0] + base, t[1] + base, t[2] + base})
	}
	return nil
}

func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Layout:    m.Layout,
		Vertices:  append([]float32(nil), m.Vertices...),
		Triangles: append([]Triangle(nil), m.Triangles...),
	}
}

// begin prepares m for records of layout l and returns the index the first
// appended vertex will get. An empty mesh adopts l.
func (m *Mesh) begin(l Layout) (uint32, error) {
	if m.Layout == LayoutNone && len(m.Vertices) == 0 {
		m.Layout = l
	}
	if m.Layout != l {
		return 0, fmt.Errorf("appending %s to %s: %w", l, m.Layout, ErrLayoutMismatch)
	}
	return uint32(m.VertexCount()), nil
}

// push appends one record. attrs must match the layout after the position.
func (m *Mesh) push(pos vm.Vec4, attrs ...vm.Vec4) {
	m.Vertices = pos.Slice(m.Vertices)
	for _, a := range attrs {
		m.Vertices = a.Slice(m.Vertices)
	}
}

func (m *Mesh) tri(base, a, b, c uint32) {
	m.Triangles = append(m.Triangles, Triangle{base + a, base + b, base + c})
}

func checkSubdivisions(subs ...int) error {
	for _, s := range subs {
		if s < 3 {
			return fmt.Errorf("got %d: %w", s, ErrInvalidSubdivisions)
		}
	}
	return nil
}

func checkRadius(rs ...float32) error {
	for _, r := range rs {
		if !(r > 0) || math32.IsInf(r, 0) {
			return fmt.Errorf("got %v: %w", r, ErrInvalidRadius)
		}
	}
	return nil
}
