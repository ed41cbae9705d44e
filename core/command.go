package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// CommandResources owns the two family-scoped command pools and the
// command buffers allocated from the graphics pool, one per framebuffer.
// Buffers are recorded exactly once and never re-recorded.
type CommandResources struct {
	GraphicsPool CommandPoolHandle
	TransferPool CommandPoolHandle
	Buffers      []CommandBufferHandle
}

// createCommandResources creates one command pool per selected family and
// allocates one primary command buffer per framebuffer from the graphics
// pool. Two pools are created even when the families coincide; pools are
// cheap and keeping the roles separate keeps resets independent.
func createCommandResources(d Driver, device DeviceHandle, indices QueueFamilyIndices, bufferCount int) (*CommandResources, error) {
	graphicsPool, err := d.CreateCommandPool(device, indices.Graphics)
	if err != nil {
		return nil, fmt.Errorf("vk.CreateCommandPool(graphics): %w", err)
	}
	transferPool, err := d.CreateCommandPool(device, indices.Transfer)
	if err != nil {
		d.DestroyCommandPool(device, graphicsPool)
		return nil, fmt.Errorf("vk.CreateCommandPool(transfer): %w", err)
	}

	buffers, err := d.AllocateCommandBuffers(device, graphicsPool, bufferCount)
	if err != nil {
		d.DestroyCommandPool(device, transferPool)
		d.DestroyCommandPool(device, graphicsPool)
		return nil, fmt.Errorf("vk.AllocateCommandBuffers(): %w", err)
	}

	return &CommandResources{
		GraphicsPool: graphicsPool,
		TransferPool: transferPool,
		Buffers:      buffers,
	}, nil
}

// recordCommandBuffers records the fixed draw sequence into each buffer,
// in framebuffer order: begin, begin render pass with the configured clear
// color, bind the pipeline, a single draw of one vertex and one instance,
// end render pass, end. A failed recording reports which buffer index
// failed; partially recorded buffers are not reused.
func recordCommandBuffers(d Driver, buffers []CommandBufferHandle, renderPass RenderPassHandle, framebuffers []FramebufferHandle, pipeline PipelineHandle, extent Extent2D, clear mgl32.Vec4) error {
	for i, buffer := range buffers {
		if err := d.BeginCommandBuffer(buffer); err != nil {
			return fmt.Errorf("vk.BeginCommandBuffer()[%d]: %w", i, err)
		}

		d.CmdBeginRenderPass(buffer, renderPass, framebuffers[i], extent, clear)
		d.CmdBindPipeline(buffer, pipeline)
		d.CmdDraw(buffer, 1, 1)
		d.CmdEndRenderPass(buffer)

		if err := d.EndCommandBuffer(buffer); err != nil {
			return fmt.Errorf("vk.EndCommandBuffer()[%d]: %w", i, err)
		}
	}
	return nil
}
