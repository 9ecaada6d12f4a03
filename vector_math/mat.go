package vector_math

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Mat4 is a 4x4 matrix stored column-major: the element in row r and column c
// lives at index c*4+r. This is the layout OpenGL and Vulkan expect for matrix
// uniforms, so the array can be handed to the GPU without reordering.
type Mat4 [16]float32

// At returns the element in row r and column c.
func (m Mat4) At(r, c int) float32 {
	return m[c*4+r]
}

// Set returns a copy of m with the element in row r and column c replaced.
func (m Mat4) Set(r, c int, f float32) Mat4 {
	m[c*4+r] = f
	return m
}

// Row returns row r of m.
func (m Mat4) Row(r int) Vec4 {
	return Vec4{X: m[r], Y: m[4+r], Z: m[8+r], W: m[12+r]}
}

// Col returns column c of m.
func (m Mat4) Col(c int) Vec4 {
	return Vec4{X: m[c*4], Y: m[c*4+1], Z: m[c*4+2], W: m[c*4+3]}
}

// Mult returns m x b. Applying the product to a vector is the same as first
// applying b and then m.
func (m Mat4) Mult(b Mat4) Mat4 {
	return Mult(m, b)
}

// Mult multiplies each row of a with each column of b.
func Mult(a, b Mat4) Mat4 {
	var c Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			c[col*4+row] = a[row]*b[col*4] +
				a[4+row]*b[col*4+1] +
				a[8+row]*b[col*4+2] +
				a[12+row]*b[col*4+3]
		}
	}
	return c
}

// MultAll folds the given matrices left to right, MultAll(a, b, c) = a x b x c.
func MultAll(ms ...Mat4) Mat4 {
	res := Identity()
	for _, m := range ms {
		res = Mult(res, m)
	}
	return res
}

// MulVec4 applies m to the homogeneous vector v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

func (m Mat4) Transpose() Mat4 {
	var mT Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			mT[r*4+c] = m[c*4+r]
		}
	}
	return mT
}

func (m Mat4) Equals(b Mat4) bool {
	return m == b
}

// ApproxEqual reports whether all elements of m and b differ by at most tol.
func (m Mat4) ApproxEqual(b Mat4, tol float32) bool {
	for i := range m {
		if math32.Abs(m[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// Upper3 returns a copy of m with the translation column and the projective
// row cleared, leaving only the linear part.
func (m Mat4) Upper3() Mat4 {
	m[12], m[13], m[14] = 0, 0, 0
	m[3], m[7], m[11] = 0, 0, 0
	m[15] = 1
	return m
}

// Unroll returns the elements in column-major order, ready for upload.
func (m Mat4) Unroll() []float32 {
	f := make([]float32, len(m))
	copy(f, m[:])
	return f
}

func (m Mat4) ByteSize() int {
	return int(unsafe.Sizeof(m))
}

func (m Mat4) Mgl() mgl32.Mat4 {
	return mgl32.Mat4(m)
}

func FromMgl(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

// String prints the matrix row by row.
func (m Mat4) String() string {
	mStr := strings.Builder{}
	for r := 0; r < 4; r++ {
		if r > 0 {
			mStr.WriteString("\n")
		}
		mStr.WriteString(fmt.Sprintf("%v", [4]float32{m[r], m[4+r], m[8+r], m[12+r]}))
	}
	return mStr.String()
}

func (m Mat4) Describe() string {
	return fmt.Sprintf("4x4 Matrix, %d Bytes in memory:\n%s", m.ByteSize(), m.String())
}
