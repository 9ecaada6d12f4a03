package vector_math

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertVec4(t *testing.T, want, got Vec4) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol, "x")
	assert.InDelta(t, want.Y, got.Y, tol, "y")
	assert.InDelta(t, want.Z, got.Z, tol, "z")
	assert.InDelta(t, want.W, got.W, tol, "w")
}

func sampleMat() Mat4 {
	return Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
}

func TestColumnMajorLayout(t *testing.T) {
	m := Translate(1, 2, 3)
	assert.Equal(t, float32(1), m[12])
	assert.Equal(t, float32(2), m[13])
	assert.Equal(t, float32(3), m[14])
	assert.Equal(t, float32(1), m.At(0, 3))
	assert.Equal(t, Vec4{X: 1, Y: 2, Z: 3, W: 1}, m.Col(3))
	assert.Equal(t, Vec4{X: 1, Y: 0, Z: 0, W: 1}, m.Row(0))
	assert.Equal(t, Translate(1, 2, 3).Mgl(), mgl32.Translate3D(1, 2, 3))

	// Set addresses (row, column) and leaves the receiver untouched
	s := m.Set(2, 1, 7)
	assert.Equal(t, float32(7), s[1*4+2])
	assert.Equal(t, float32(7), s.At(2, 1))
	assert.Equal(t, float32(0), m.At(2, 1))
	assert.Equal(t, Translate(4, 2, 3), m.Set(0, 3, 4))
}

func TestIdentityIsNeutral(t *testing.T) {
	m := sampleMat()
	if !Mult(Identity(), m).Equals(m) {
		t.Errorf("I x M != M:\n%s", Mult(Identity(), m).String())
	}
	if !Mult(m, Identity()).Equals(m) {
		t.Errorf("M x I != M:\n%s", Mult(m, Identity()).String())
	}
}

func TestMultMatchesMgl(t *testing.T) {
	a := sampleMat()
	b := RotateX(0.3).Mult(Translate(4, -2, 1))
	got := Mult(a, b)
	want := FromMgl(a.Mgl().Mul4(b.Mgl()))
	assert.True(t, got.ApproxEqual(want, tol), "got:\n%s\nwant:\n%s", got, want)
}

func TestTranslateInverse(t *testing.T) {
	m := Mult(Translate(3, -7, 2.5), Translate(-3, 7, -2.5))
	assert.True(t, m.ApproxEqual(Identity(), 0))
}

func TestTranslateIgnoresDirections(t *testing.T) {
	m := Translate(3, 4, 5)
	assertVec4(t, Vec4{X: 4, Y: 5, Z: 6, W: 1}, m.MulVec4(Vec4{X: 1, Y: 1, Z: 1, W: 1}))
	assertVec4(t, Vec4{X: 1, Y: 1, Z: 1, W: 0}, m.MulVec4(Vec4{X: 1, Y: 1, Z: 1, W: 0}))
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	assertVec4(t, Vec4{X: 2, Y: 3, Z: 4, W: 1}, m.MulVec4(Vec4{X: 1, Y: 1, Z: 1, W: 1}))
	assert.Equal(t, mgl32.Scale3D(2, 3, 4), m.Mgl())
}

func TestRotationY(t *testing.T) {
	assert.True(t, RotateY(0).ApproxEqual(Identity(), 0))

	for _, theta := range []float32{0.1, ToRad(45), ToRad(90), ToRad(200), -1.3} {
		got := RotateY(theta).MulVec4(Vec4{X: 1, W: 1})
		assertVec4(t, Vec4{X: math32.Cos(theta), Y: 0, Z: -math32.Sin(theta), W: 1}, got)
	}
}

func TestRotationX(t *testing.T) {
	mrx := RotateX(ToRad(90))
	mrxComplex, err := Rotate(ToRad(90), 1, 0, 0)
	require.NoError(t, err)

	if !mrx.ApproxEqual(mrxComplex, tol) {
		t.Errorf(
			"RotX not equal to generic roation around X. RotX: \n%s\n Rotation around x-axis: \n%s",
			mrx.String(),
			mrxComplex.String(),
		)
	}
	assertVec4(t, Vec4{Z: 1, W: 1}, mrx.MulVec4(Vec4{Y: 1, W: 1}))
}

func TestRotationZ(t *testing.T) {
	mrz := RotateZ(ToRad(90))
	mrzComplex, err := Rotate(ToRad(90), 0, 0, 1)
	require.NoError(t, err)

	if !mrz.ApproxEqual(mrzComplex, tol) {
		t.Errorf(
			"RotZ not equal to generic roation around Z. RotZ: \n%s\n Rotation around z-axis: \n%s",
			mrz.String(),
			mrzComplex.String(),
		)
	}
	assertVec4(t, Vec4{Y: 1, W: 1}, mrz.MulVec4(Vec4{X: 1, W: 1}))
}

func TestRotationYMatchesGeneric(t *testing.T) {
	mry := RotateY(ToRad(90))
	mryComplex, err := Rotate(ToRad(90), 0, 3, 0)
	require.NoError(t, err)
	assert.True(t, mry.ApproxEqual(mryComplex, tol))
	assert.True(t, mry.ApproxEqual(FromMgl(mgl32.HomogRotate3DY(ToRad(90))), tol))
}

func TestArbitraryRotation(t *testing.T) {
	axis := Vec3{X: -0.5, Y: 1, Z: 1}
	mr, err := RotateV(ToRad(-74), axis)
	require.NoError(t, err)

	n, _ := axis.Norm()
	want := FromMgl(mgl32.HomogRotate3D(ToRad(-74), n.Mgl()))
	if !mr.ApproxEqual(want, tol) {
		t.Errorf(
			"Arbitrary rotation didnt match expectations. expectation: \n%s\n actual: \n%s",
			want.String(),
			mr.String(),
		)
	}

	// the axis itself is a fixed point
	assertVec4(t, axis.Vec4(0), mr.MulVec4(axis.Vec4(0)))
}

func TestRotateZeroAxis(t *testing.T) {
	m, err := Rotate(1, 0, 0, 0)
	assert.ErrorIs(t, err, ErrZeroLength)
	assert.Equal(t, Identity(), m)
}

func TestRotateEuler(t *testing.T) {
	m := RotateEuler(0.2, 0.4, 0.6)
	want := MultAll(RotateZ(0.2), RotateY(0.4), RotateX(0.6))
	assert.True(t, m.ApproxEqual(want, 0))
}

func TestOrbitCompositionOrder(t *testing.T) {
	spin := RotateY(ToRad(90))
	local := Mult(Translate(5, 0, 0), spin)
	orbit := Mult(RotateY(ToRad(90)), local)
	model := Mult(orbit, Scale(2, 2, 2))

	// scale first, spin in place, move out along x, then orbit about the origin
	got := model.MulVec4(Vec4{X: 1, W: 1})
	assertVec4(t, Vec4{X: -2, Y: 0, Z: -5, W: 1}, got)
}

func TestTranspose(t *testing.T) {
	m := sampleMat()
	mT := m.Transpose()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.Equal(t, m.At(r, c), mT.At(c, r))
		}
	}
	assert.Equal(t, m, mT.Transpose())
}

func TestUnroll(t *testing.T) {
	m := sampleMat()
	f := m.Unroll()
	require.Len(t, f, 16)
	f[0] = 99
	assert.Equal(t, float32(1), m[0], "Unroll must copy")
	assert.Equal(t, 64, m.ByteSize())
	t.Logf("%s", m.Describe())
}

func TestUpper3(t *testing.T) {
	m := Mult(Translate(1, 2, 3), RotateZ(0.5))
	u := m.Upper3()
	assert.Equal(t, RotateZ(0.5), u)
}

func TestPerspective(t *testing.T) {
	const near, far = 0.1, 100
	p, err := Perspective(1, ToRad(90), near, far)
	require.NoError(t, err)

	clip := p.MulVec4(Vec4{Z: -near, W: 1})
	assert.InDelta(t, -1, clip.Z/clip.W, tol)

	clip = p.MulVec4(Vec4{Z: -far, W: 1})
	assert.InDelta(t, 1, clip.Z/clip.W, 1e-4)

	// 90 degree fov: a point at 45 degrees lands on the frustum edge
	clip = p.MulVec4(Vec4{Y: 1, Z: -1, W: 1})
	assert.InDelta(t, 1, clip.Y/clip.W, tol)

	want := FromMgl(mgl32.Perspective(ToRad(67), 1.5, 0.1, 50))
	got, err := Perspective(1.5, ToRad(67), 0.1, 50)
	require.NoError(t, err)
	assert.True(t, got.ApproxEqual(want, tol), "got:\n%s\nwant:\n%s", got, want)
}

func TestPerspectiveInvalid(t *testing.T) {
	tests := []struct {
		name                   string
		aspect, fov, near, far float32
	}{
		{"zero near", 1, 1, 0, 10},
		{"negative near", 1, 1, -1, 10},
		{"near beyond far", 1, 1, 10, 1},
		{"near equals far", 1, 1, 5, 5},
		{"zero aspect", 0, 1, 0.1, 10},
		{"zero fov", 1, 0, 0.1, 10},
		{"fov of pi", 1, math32.Pi, 0.1, 10},
		{"infinite far", 1, 1, 0.1, math32.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Perspective(tt.aspect, tt.fov, tt.near, tt.far)
			assert.True(t, errors.Is(err, ErrInvalidProjection), "got %v", err)
		})
	}
}

func TestOrthographic(t *testing.T) {
	o, err := Orthographic(4, 2, 0.5, 10)
	require.NoError(t, err)
	want := FromMgl(mgl32.Ortho(-2, 2, -1, 1, 0.5, 10))
	assert.True(t, o.ApproxEqual(want, tol), "got:\n%s\nwant:\n%s", o, want)

	assertVec4(t, Vec4{X: 1, Y: 1, Z: -1, W: 1}, o.MulVec4(Vec4{X: 2, Y: 1, Z: -0.5, W: 1}))

	_, err = Orthographic(0, 2, 0.5, 10)
	assert.ErrorIs(t, err, ErrInvalidProjection)
	_, err = Orthographic(4, 2, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidProjection)
}

func TestView(t *testing.T) {
	eye := Vec3{X: 1, Y: 2, Z: 5}
	forward := Vec3{X: -0.2, Y: -0.1, Z: -1}
	up := Vec3{Y: 1}

	v, err := View(eye.Vec4(1), forward, up)
	require.NoError(t, err)

	want := FromMgl(mgl32.LookAtV(eye.Mgl(), eye.Add(forward).Mgl(), up.Mgl()))
	assert.True(t, v.ApproxEqual(want, tol), "got:\n%s\nwant:\n%s", v, want)

	// the eye ends up in the origin and forward looks down -z
	assertVec4(t, Vec4{W: 1}, v.MulVec4(eye.Vec4(1)))
	f, _ := forward.Norm()
	assertVec4(t, Vec4{Z: -1}, v.MulVec4(f.Vec4(0)))
}

func TestViewReorthogonalizesUp(t *testing.T) {
	v, err := View(Vec4{W: 1}, Vec3{Z: -1}, Vec3{Y: 1, Z: 0.5})
	require.NoError(t, err)
	assert.True(t, v.ApproxEqual(Identity(), tol), "got:\n%s", v)
}

func TestViewDegenerate(t *testing.T) {
	_, err := View(Vec4{W: 1}, Vec3{Y: 2}, Vec3{Y: 1})
	assert.ErrorIs(t, err, ErrParallelVectors)

	_, err = View(Vec4{W: 1}, Vec3{Y: 1}, Vec3{Y: -1})
	assert.ErrorIs(t, err, ErrParallelVectors)

	_, err = View(Vec4{W: 1}, Vec3{}, Vec3{Y: 1})
	assert.ErrorIs(t, err, ErrZeroLength)

	_, err = View(Vec4{W: 1}, Vec3{Z: -1}, Vec3{})
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestLookAt(t *testing.T) {
	eye := Vec3{X: 3, Y: 3, Z: 3}
	v, err := LookAt(eye, Vec3{}, Vec3{Y: 1})
	require.NoError(t, err)
	want := FromMgl(mgl32.LookAtV(eye.Mgl(), mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	assert.True(t, v.ApproxEqual(want, tol))

	_, err = LookAt(eye, eye, Vec3{Y: 1})
	assert.ErrorIs(t, err, ErrZeroLength)
}

func TestApply(t *testing.T) {
	m := Mult(Translate(1, 0, 0), RotateZ(ToRad(90)))
	p := Apply(Vec3{X: 1}, 1, m)
	d := Apply(Vec3{X: 1}, 0, m)
	assert.InDelta(t, 1, p.X, tol)
	assert.InDelta(t, 1, p.Y, tol)
	assert.InDelta(t, 0, d.X, tol)
	assert.InDelta(t, 1, d.Y, tol)
}

func TestDegRadRoundTrip(t *testing.T) {
	assert.InDelta(t, math32.Pi, ToRad(180), tol)
	assert.InDelta(t, 57.29578, ToDeg(1), 1e-4)
}
