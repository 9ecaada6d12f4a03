package model

import (
	vk "github.com/goki/vulkan"

	"planet_skybox/geometry"
)

// VertexBindingDescription describes how records of the given layout are laid out in a vertex buffer bound
// at binding 0.
func VertexBindingDescription(l geometry.Layout) vk.VertexInputBindingDescription {
	return vk.VertexInputBindingDescription{
		Binding:   0,
		Stride:    uint32(l.StrideBytes()),
		InputRate: vk.VertexInputRateVertex,
	}
}

// VertexAttributeDescriptions maps every slot of the layout onto a shader location in record order, position
// at location 0, normal at 1 and uv at 2. Each slot is four 32bit floats wide.
func VertexAttributeDescriptions(l geometry.Layout) []vk.VertexInputAttributeDescription {
	attrs := l.Attributes()
	desc := make([]vk.VertexInputAttributeDescription, 0, len(attrs))
	for _, a := range attrs {
		desc = append(desc, vk.VertexInputAttributeDescription{
			Location: uint32(a.Semantic),
			Binding:  0,
			Format:   vk.FormatR32g32b32a32Sfloat,
			Offset:   uint32(a.Offset * 4),
		})
	}
	return desc
}
