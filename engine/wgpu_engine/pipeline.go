package wgpu_engine

import "honnef.co/go/wgpu"

// targetFormat is the color format of the off-screen target. Readback
// depends on it: one pixel is exactly four bytes, R first.
const targetFormat = wgpu.TextureFormatRGBA8Unorm

// buildPipeline compiles the vertex and fragment modules and assembles
// the render pipeline. Binding 0 is the frame context uniform, binding 1
// the user data uniform; both are visible to the fragment stage only.
func buildPipeline(dev *wgpu.Device, shader WGSLShader, entryPoint string) (*wgpu.RenderPipeline, *wgpu.BindGroupLayout) {
	vertexModule := dev.CreateShaderModule(wgpu.ShaderModuleDescriptor{
		Label:  "fullscreen vertex",
		Source: wgpu.ShaderSourceWGSL(fullscreenVertexWGSL),
	})
	defer vertexModule.Release()
	fragmentModule := dev.CreateShaderModule(wgpu.ShaderModuleDescriptor{
		Label:  shader.Label,
		Source: wgpu.ShaderSourceWGSL(shader.Source),
	})
	defer fragmentModule.Release()

	bindGroupLayout := dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "shader uniforms",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: &wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Buffer: &wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})

	layout := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "shader pipeline layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	defer layout.Release()

	pipeline := dev.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  shader.Label,
		Layout: layout,
		Vertex: &wgpu.VertexState{
			Module:     vertexModule,
			EntryPoint: "main",
		},
		Fragment: &wgpu.FragmentState{
			Module:     fragmentModule,
			EntryPoint: entryPoint,
			Targets: []wgpu.ColorTargetState{
				{
					Format: targetFormat,
					Blend: &wgpu.BlendState{
						Color: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorSrcAlpha,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
						Alpha: wgpu.BlendComponent{
							SrcFactor: wgpu.BlendFactorOne,
							DstFactor: wgpu.BlendFactorOneMinusSrcAlpha,
							Operation: wgpu.BlendOperationAdd,
						},
					},
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: &wgpu.PrimitiveState{
			Topology:         wgpu.PrimitiveTopologyTriangleList,
			StripIndexFormat: ^wgpu.IndexFormat(0),
			FrontFace:        wgpu.FrontFaceCCW,
			CullMode:         wgpu.CullModeNone,
		},
		Multisample: &wgpu.MultisampleState{
			Count: 1,
			Mask:  ^uint32(0),
		},
	})

	return pipeline, bindGroupLayout
}
