package geometry

import vm "planet_skybox/vector_math"

// cubeFace spans one side of the unit cube. T1 x T2 = N, so walking the quad
// corners (-,-), (+,-), (+,+), (-,+) in the T1/T2 plane is counter-clockwise
// seen from outside.
type cubeFace struct {
	N, T1, T2 vm.Vec3
}

var cubeFaces = [6]cubeFace{
	{N: vm.Vec3{X: 1}, T1: vm.Vec3{Z: -1}, T2: vm.Vec3{Y: 1}},
	{N: vm.Vec3{X: -1}, T1: vm.Vec3{Z: 1}, T2: vm.Vec3{Y: 1}},
	{N: vm.Vec3{Y: 1}, T1: vm.Vec3{X: 1}, T2: vm.Vec3{Z: -1}},
	{N: vm.Vec3{Y: -1}, T1: vm.Vec3{X: 1}, T2: vm.Vec3{Z: 1}},
	{N: vm.Vec3{Z: 1}, T1: vm.Vec3{X: 1}, T2: vm.Vec3{Y: 1}},
	{N: vm.Vec3{Z: -1}, T1: vm.Vec3{X: -1}, T2: vm.Vec3{Y: 1}},
}

var quadCorners = [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

func (f cubeFace) corner(k int, halfExtent float32) vm.Vec3 {
	s := quadCorners[k]
	return f.N.Add(f.T1.ScalarMul(s[0])).Add(f.T2.ScalarMul(s[1])).ScalarMul(halfExtent)
}

// CubeHalfExtent is half the edge length of Cube and TexturedCube.
const CubeHalfExtent = 0.5

// SkyboxHalfExtent places the skybox corners at +-1 on every axis.
const SkyboxHalfExtent = 1

// AppendTetrahedron adds a regular tetrahedron inscribed in the +-1 cube.
// Its four vertices are shared between faces, so normals point away from the
// centre rather than being per face.
func AppendTetrahedron(dst *Mesh) error {
	base, err := dst.begin(LayoutPositionNormal)
	if err != nil {
		return err
	}
	corners := [4]vm.Vec3{
		{X: 1, Y: 1, Z: 1},
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1},
		{X: 1, Y: -1, Z: -1},
	}
	for _, c := range corners {
		n, _ := c.Norm()
		dst.push(c.Vec4(1), n.Vec4(0))
	}
	dst.tri(base, 0, 2, 1)
	dst.tri(base, 0, 1, 3)
	dst.tri(base, 0, 3, 2)
	dst.tri(base, 1, 2, 3)
	return nil
}

func NewTetrahedron() (*Mesh, error) {
	m := NewMesh(LayoutPositionNormal)
	return m, AppendTetrahedron(m)
}

// AppendSkybox adds the 8 corners of the +-1 cube as positions only. The 12
// triangles face inwards so a camera placed inside sees every side.
func AppendSkybox(dst *Mesh) error {
	base, err := dst.begin(LayoutPosition)
	if err != nil {
		return err
	}
	// corner i has x, y, z set positive by bits 0, 1, 2
	for i := 0; i < 8; i++ {
		dst.push(cornerPosition(i))
	}
	for _, f := range cubeFaces {
		var idx [4]uint32
		for k := range idx {
			idx[k] = cornerIndex(f.corner(k, SkyboxHalfExtent))
		}
		dst.tri(base, idx[0], idx[2], idx[1])
		dst.tri(base, idx[0], idx[3], idx[2])
	}
	return nil
}

func NewSkybox() (*Mesh, error) {
	m := NewMesh(LayoutPosition)
	return m, AppendSkybox(m)
}

func cornerPosition(i int) vm.Vec4 {
	p := vm.Vec4{X: -SkyboxHalfExtent, Y: -SkyboxHalfExtent, Z: -SkyboxHalfExtent, W: 1}
	if i&1 != 0 {
		p.X = SkyboxHalfExtent
	}
	if i&2 != 0 {
		p.Y = SkyboxHalfExtent
	}
	if i&4 != 0 {
		p.Z = SkyboxHalfExtent
	}
	return p
}

func cornerIndex(p vm.Vec3) uint32 {
	var i uint32
	if p.X > 0 {
		i |= 1
	}
	if p.Y > 0 {
		i |= 2
	}
	if p.Z > 0 {
		i |= 4
	}
	return i
}

// AppendCube adds a cube of edge length 1 with 4 vertices per face so each
// face carries its own flat normal.
func AppendCube(dst *Mesh) error {
	return appendCube(dst, LayoutPositionNormal)
}

func NewCube() (*Mesh, error) {
	m := NewMesh(LayoutPositionNormal)
	return m, AppendCube(m)
}

// AppendTexturedCube adds the same cube as AppendCube with every face mapped
// onto the whole [0,1]x[0,1] texture.
func AppendTexturedCube(dst *Mesh) error {
	return appendCube(dst, LayoutPositionNormalUV)
}

func NewTexturedCube() (*Mesh, error) {
	m := NewMesh(LayoutPositionNormalUV)
	return m, AppendTexturedCube(m)
}

func appendCube(dst *Mesh, l Layout) error {
	base, err := dst.begin(l)
	if err != nil {
		return err
	}
	for fi, f := range cubeFaces {
		for k := range quadCorners {
			pos := f.corner(k, CubeHalfExtent).Vec4(1)
			if l == LayoutPositionNormalUV {
				s := quadCorners[k]
				uv := vm.Vec4{X: (s[0] + 1) / 2, Y: (s[1] + 1) / 2}
				dst.push(pos, f.N.Vec4(0), uv)
			} else {
				dst.push(pos, f.N.Vec4(0))
			}
		}
		v := uint32(fi * 4)
		dst.tri(base, v, v+1, v+2)
		dst.tri(base, v, v+2, v+3)
	}
	return nil
}
