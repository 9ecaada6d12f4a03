package geometry

import (
	"fmt"

	"github.com/chewxy/math32"

	vm "planet_skybox/vector_math"
)

// TorusN returns the vertex and triangle counts AppendTorus produces.
func TorusN(sub1, sub2 int) (numVertex, numTriangle int) {
	return sub1 * sub2, 2 * sub1 * sub2
}

// AppendTorus adds a torus lying in the XZ plane around the Y axis.
// tubeRadius (r1) is the radius of the solid tube, ringRadius (r2) the
// distance of the tube centre from the origin. sub1 segments run around the
// ring and sub2 around the tube. Both circles wrap with modular indexing, so
// no seam vertices are duplicated.
func AppendTorus(dst *Mesh, tubeRadius, ringRadius float32, sub1, sub2 int) error {
	if err := checkRadius(tubeRadius, ringRadius); err != nil {
		return fmt.Errorf("torus: %w", err)
	}
	if tubeRadius >= ringRadius {
		return fmt.Errorf("torus tube radius %v not below ring radius %v: %w", tubeRadius, ringRadius, ErrInvalidRadius)
	}
	if err := checkSubdivisions(sub1, sub2); err != nil {
		return fmt.Errorf("torus: %w", err)
	}
	base, err := dst.begin(LayoutPositionNormal)
	if err != nil {
		return err
	}

	for i := 0; i < sub1; i++ {
		sinU, cosU := math32.Sincos(2 * math32.Pi * float32(i) / float32(sub1))
		for j := 0; j < sub2; j++ {
			sinV, cosV := math32.Sincos(2 * math32.Pi * float32(j) / float32(sub2))
			norm := vm.Vec3{X: cosV * cosU, Y: sinV, Z: cosV * sinU}
			center := vm.Vec3{X: ringRadius * cosU, Z: ringRadius * sinU}
			dst.push(center.Add(norm.ScalarMul(tubeRadius)).Vec4(1), norm.Vec4(0))
		}
	}

	at := func(i, j int) uint32 {
		return uint32((i%sub1)*sub2 + j%sub2)
	}
	for i := 0; i < sub1; i++ {
		for j := 0; j < sub2; j++ {
			a := at(i, j)
			b := at(i+1, j)
			c := at(i+1, j+1)
			d := at(i, j+1)
			dst.tri(base, a, d, c)
			dst.tri(base, a, c, b)
		}
	}
	return nil
}

func NewTorus(tubeRadius, ringRadius float32, sub1, sub2 int) (*Mesh, error) {
	m := NewMesh(LayoutPositionNormal)
	if err := AppendTorus(m, tubeRadius, ringRadius, sub1, sub2); err != nil {
		return nil, err
	}
	return m, nil
}
