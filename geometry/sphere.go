package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	vm "planet_skybox/vector_math"
)

// SphereN returns the vertex and triangle counts AppendSphere produces.
func SphereN(sub1, sub2 int) (numVertex, numTriangle int) {
	return (sub1 + 1) * (sub2 + 1), 2 * sub2 * (sub1 - 1)
}

// AppendSphere adds a UV sphere of radius r centred on the origin. sub1 is the
// number of latitude bands from the +Y pole to the -Y pole, sub2 the number of
// longitude segments.
//
// The grid has sub1+1 rows of sub2+1 vertices. The pole rows and the seam
// column are duplicated so that every vertex carries its own texture
// coordinate: u = j/sub2 runs around the sphere, v = i/sub1 from the +Y pole
// down. The seam column repeats the positions of the first column exactly.
// Triangles that would collapse into a pole are left out.
func AppendSphere(dst *Mesh, r float32, sub1, sub2 int) error {
	if err := checkRadius(r); err != nil {
		return fmt.Errorf("sphere: %w", err)
	}
	if err := checkSubdivisions(sub1, sub2); err != nil {
		return fmt.Errorf("sphere: %w", err)
	}
	base, err := dst.begin(LayoutPositionNormalUV)
	if err != nil {
		return err
	}

	for i := 0; i <= sub1; i++ {
		sinT, cosT := math32.Sincos(math32.Pi * float32(i) / float32(sub1))
		switch i {
		case 0:
			sinT, cosT = 0, 1
		case sub1:
			sinT, cosT = 0, -1
		}
		v := float32(i) / float32(sub1)
		for j := 0; j <= sub2; j++ {
			sinP, cosP := math32.Sincos(2 * math32.Pi * float32(j%sub2) / float32(sub2))
			norm := vm.Vec3{X: sinT * sinP, Y: cosT, Z: sinT * cosP}
			uv := vm.Vec4{X: float32(j) / float32(sub2), Y: v}
			dst.push(norm.ScalarMul(r).Vec4(1), norm.Vec4(0), uv)
		}
	}

	row := uint32(sub2 + 1)
	for i := 0; i < sub1; i++ {
		for j := 0; j < sub2; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			c := b + 1
			d := a + 1
			if i != sub1-1 {
				dst.tri(base, a, b, c)
			}
			if i != 0 {
				dst.tri(base, a, c, d)
			}
		}
	}
	return nil
}

// NewSphere is AppendSphere on a fresh mesh, the createSphereData of the demo.
func NewSphere(r float32, sub1, sub2 int) (*Mesh, error) {
	m := NewMesh(LayoutPositionNormalUV)
	if err := AppendSphere(m, r, sub1, sub2); err != nil {
		return nil, err
	}
	return m, nil
}
