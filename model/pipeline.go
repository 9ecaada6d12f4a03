package model

import (
	vk "github.com/goki/vulkan"

	"planet_skybox/geometry"
)

// These functions describe the fixed function state and resource layout a renderer needs to draw the scene's
// models. Nothing here touches a device, the returned structs are handed to the vk.Create* calls as they are.

// FrameDescriptorSetLayoutBindings are bound once per frame: the UniformBufferObject at binding 0 and the
// skybox/planet texture sampler at binding 1.
func FrameDescriptorSetLayoutBindings() []vk.DescriptorSetLayoutBinding {
	return []vk.DescriptorSetLayoutBinding{
		{
			Binding:         0, // <- binding index in vert shader
			DescriptorType:  vk.DescriptorTypeUniformBuffer,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		},
		{
			Binding:         1, // <- binding index in frag shader
			DescriptorType:  vk.DescriptorTypeCombinedImageSampler,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageFlags(vk.ShaderStageFragmentBit),
		},
	}
}

// ModelDescriptorSetLayoutBindings are bound per model: the ContextUniformBufferObject at binding 0.
func ModelDescriptorSetLayoutBindings() []vk.DescriptorSetLayoutBinding {
	return []vk.DescriptorSetLayoutBinding{
		{
			Binding:         0,
			DescriptorType:  vk.DescriptorTypeUniformBuffer,
			DescriptorCount: 1,
			StageFlags:      vk.ShaderStageFlags(vk.ShaderStageVertexBit | vk.ShaderStageFragmentBit),
		},
	}
}

func DescriptorSetLayoutInfo(bindings []vk.DescriptorSetLayoutBinding) vk.DescriptorSetLayoutCreateInfo {
	return vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
		PBindings:    bindings,
	}
}

// FrameDescriptorPoolSizes sizes the per frame pool for framesInFlight frames.
func FrameDescriptorPoolSizes(framesInFlight uint32) []vk.DescriptorPoolSize {
	return []vk.DescriptorPoolSize{
		{Type: vk.DescriptorTypeUniformBuffer, DescriptorCount: framesInFlight},
		{Type: vk.DescriptorTypeCombinedImageSampler, DescriptorCount: framesInFlight},
	}
}

// ModelDescriptorPoolSizes sizes the per model pool for every model in the scene.
func (s *Scene) ModelDescriptorPoolSizes() []vk.DescriptorPoolSize {
	return []vk.DescriptorPoolSize{
		{Type: vk.DescriptorTypeUniformBuffer, DescriptorCount: uint32(len(s.models))},
	}
}

// PushConstantRanges carries the model matrix to the vertex stage.
func PushConstantRanges() []vk.PushConstantRange {
	return []vk.PushConstantRange{{
		StageFlags: vk.ShaderStageFlags(vk.ShaderStageVertexBit),
		Offset:     0,
		Size:       ModelPushConstantsSize(),
	}}
}

// VertexInputState wires the layout's binding and attribute descriptions into the pipeline vertex input.
func VertexInputState(l geometry.Layout) vk.PipelineVertexInputStateCreateInfo {
	bindingDesc := []vk.VertexInputBindingDescription{VertexBindingDescription(l)}
	attributeDesc := VertexAttributeDescriptions(l)
	return vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   1,
		PVertexBindingDescriptions:      bindingDesc,
		VertexAttributeDescriptionCount: uint32(len(attributeDesc)),
		PVertexAttributeDescriptions:    attributeDesc,
	}
}

func InputAssemblyState() vk.PipelineInputAssemblyStateCreateInfo {
	return vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyTriangleList,
		PrimitiveRestartEnable: vk.False,
	}
}

// RasterizationState culls back faces. Generated meshes wind counter-clockwise towards the viewer, the
// skybox towards its centre, so one state serves every kind.
func RasterizationState() vk.PipelineRasterizationStateCreateInfo {
	return vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		CullMode:                vk.CullModeFlags(vk.CullModeBackBit),
		FrontFace:               vk.FrontFaceCounterClockwise,
		DepthBiasEnable:         vk.False,
		LineWidth:               1.0,
	}
}

// DepthStencilState for a model kind. The skybox is drawn first without writing depth so everything
// else lands in front of it.
func DepthStencilState(k ModelKind) vk.PipelineDepthStencilStateCreateInfo {
	ds := vk.PipelineDepthStencilStateCreateInfo{
		SType:                 vk.StructureTypePipelineDepthStencilStateCreateInfo,
		DepthTestEnable:       vk.True,
		DepthWriteEnable:      vk.True,
		DepthCompareOp:        vk.CompareOpLess,
		DepthBoundsTestEnable: vk.False,
		StencilTestEnable:     vk.False,
		MinDepthBounds:        0,
		MaxDepthBounds:        1,
	}
	if k == KindSkybox {
		ds.DepthWriteEnable = vk.False
		ds.DepthCompareOp = vk.CompareOpLessOrEqual
	}
	return ds
}
