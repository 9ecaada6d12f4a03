package model

import (
	vk "github.com/goki/vulkan"
	"github.com/xlab/linmath"

	"planet_skybox/common"
	"planet_skybox/geometry"
	vm "planet_skybox/vector_math"
)

// ModelKind selects the shading path a model is drawn with.
type ModelKind uint32

const (
	KindSkybox ModelKind = iota
	KindPlanet
	KindRing
	KindProp
)

type Model struct {
	Mesh     *geometry.Mesh
	Name     string
	Kind     ModelKind
	ModelMat vm.Mat4
}

func NewModel(m *geometry.Mesh, n string) *Model {
	return &Model{
		Name:     n,
		Mesh:     m,
		Kind:     KindProp,
		ModelMat: vm.Identity(),
	}
}

// ModelPushConstantsSize reports the memory size required for all push constants that the Model expects to
// get bound. The actual layout for the constants in memory is decided by the render pipeline. For now only
// the Model.ModelMat (4x4) needs to be provided.
func ModelPushConstantsSize() uint32 {
	return uint32(vm.Identity().ByteSize())
}

// PushConstants returns the model matrix as raw bytes in column-major order.
func (m *Model) PushConstants() []byte {
	return common.ToByteArr(m.ModelMat.Unroll())
}

// GetVBufferSize returns the size required for keeping this model's vertices in device memory.
// Mainly used to determine the buffer size when creating the vertex buffer.
func (m *Model) GetVBufferSize() vk.DeviceSize {
	return vk.DeviceSize(linmath.ArrayFloat32(m.Mesh.Vertices).Sizeof())
}

// GetVBufferBytes returns the raw bytes representing all vertices for this model.
// Mainly used to execute vk.Memcopy(..., src []byte) to move memory from CPU to GPU
func (m *Model) GetVBufferBytes() []byte {
	return linmath.ArrayFloat32(m.Mesh.Vertices).Data()
}

// GetIdxBufferSize returns the size required for keeping the index buffer in device memory.
func (m *Model) GetIdxBufferSize() vk.DeviceSize {
	return vk.DeviceSize(4 * 3 * len(m.Mesh.Triangles))
}

// GetIdxBufferBytes returns the raw bytes representing the indices used to address vertex data for this model.
func (m *Model) GetIdxBufferBytes() []byte {
	return common.Uint32ByteArr(m.Mesh.Indices())
}

// IndexCount is the number of indices a draw call for this model consumes.
func (m *Model) IndexCount() uint32 {
	return uint32(3 * len(m.Mesh.Triangles))
}

// IndexType matches the element type of GetIdxBufferBytes.
func IndexType() vk.IndexType {
	return vk.IndexTypeUint32
}
