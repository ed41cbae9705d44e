package core

import (
	"errors"
	"fmt"
)

// Shader configuration errors.
var (
	ErrNoVertexShader   = errors.New("no vertex shader bytecode configured")
	ErrNoFragmentShader = errors.New("no fragment shader bytecode configured")
)

// PipelineResources owns the two shader-stage modules, the empty pipeline
// layout and the fixed graphics pipeline built from them.
type PipelineResources struct {
	VertexModule   ShaderModuleHandle
	FragmentModule ShaderModuleHandle
	Layout         PipelineLayoutHandle
	Pipeline       PipelineHandle
}

// createPipeline assembles the fixed graphics pipeline from the two
// supplied bytecode blobs. Bytecode compilation happened elsewhere; the
// blobs are consumed opaquely. A driver rejection here is a programming
// or configuration defect, not a transient condition, and everything
// created inside this call is destroyed before the error surfaces.
func createPipeline(d Driver, device DeviceHandle, renderPass RenderPassHandle, extent Extent2D, vertexBytecode, fragmentBytecode []byte) (*PipelineResources, error) {
	if len(vertexBytecode) == 0 {
		return nil, ErrNoVertexShader
	}
	if len(fragmentBytecode) == 0 {
		return nil, ErrNoFragmentShader
	}

	vertexModule, err := d.CreateShaderModule(device, vertexBytecode)
	if err != nil {
		return nil, fmt.Errorf("vk.CreateShaderModule(vertex): %w", err)
	}
	fragmentModule, err := d.CreateShaderModule(device, fragmentBytecode)
	if err != nil {
		d.DestroyShaderModule(device, vertexModule)
		return nil, fmt.Errorf("vk.CreateShaderModule(fragment): %w", err)
	}

	layout, err := d.CreatePipelineLayout(device)
	if err != nil {
		d.DestroyShaderModule(device, fragmentModule)
		d.DestroyShaderModule(device, vertexModule)
		return nil, fmt.Errorf("vk.CreatePipelineLayout(): %w", err)
	}

	pipeline, err := d.CreateGraphicsPipeline(device, PipelineConfig{
		RenderPass:     renderPass,
		Layout:         layout,
		VertexModule:   vertexModule,
		FragmentModule: fragmentModule,
		Extent:         extent,
	})
	if err != nil {
		d.DestroyPipelineLayout(device, layout)
		d.DestroyShaderModule(device, fragmentModule)
		d.DestroyShaderModule(device, vertexModule)
		return nil, fmt.Errorf("vk.CreateGraphicsPipelines(): %w", err)
	}

	return &PipelineResources{
		VertexModule:   vertexModule,
		FragmentModule: fragmentModule,
		Layout:         layout,
		Pipeline:       pipeline,
	}, nil
}
