package model

import (
	"unsafe"

	lin "github.com/xlab/linmath"

	vm "planet_skybox/vector_math"
)

// UniformBufferObject a uniform buffer object as a tightly packed struct that will be transferred to the GPU.
// It holds the camera transforms shared by every model of a frame.
type UniformBufferObject struct {
	View       lin.Mat4x4
	Projection lin.Mat4x4 // 128byte calculated size
}

const uboSize = int(unsafe.Sizeof(UniformBufferObject{}))

// SizeOfUbo returns size of the UniformBufferObject struct.
func SizeOfUbo() uintptr {
	return uintptr(uboSize)
}

func NewUniformBufferObject(view, projection vm.Mat4) UniformBufferObject {
	return UniformBufferObject{
		View:       ToLinMat(view),
		Projection: ToLinMat(projection),
	}
}

func (u *UniformBufferObject) Bytes() []byte {
	const m = 0x7fffffff
	return (*[m]byte)(unsafe.Pointer(u))[:uboSize:uboSize]
}

// ContextUniformBufferObject a uniform buffer object as a tightly packed struct that will be transferred to the GPU.
// This one contains context information for each model and will be bound for each model between draw calls.
type ContextUniformBufferObject struct {
	ModelType uint32
}

// SizeOfCtxUbo returns size of the ContextUniformBufferObject
func SizeOfCtxUbo() uintptr {
	return unsafe.Sizeof(ContextUniformBufferObject{})
}

func (u *ContextUniformBufferObject) Bytes() []byte {
	return (*[4]byte)(unsafe.Pointer(u))[:]
}

// ToLinMat converts a column-major matrix into linmath's column array form, m[column][row].
func ToLinMat(m vm.Mat4) lin.Mat4x4 {
	var l lin.Mat4x4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			l[c][r] = m.At(r, c)
		}
	}
	return l
}

func FromLinMat(l lin.Mat4x4) vm.Mat4 {
	var m vm.Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			m[c*4+r] = l[c][r]
		}
	}
	return m
}
