package core

import "fmt"

// RenderPassResources owns the render pass and one framebuffer per
// swapchain image view, in the same order as the views.
type RenderPassResources struct {
	RenderPass   RenderPassHandle
	Framebuffers []FramebufferHandle
}

// createRenderTargets builds the single-attachment render pass for the
// negotiated surface format and binds each image view to it through its
// own framebuffer at the negotiated extent. A failed framebuffer creation
// destroys everything created inside this call before returning.
func createRenderTargets(d Driver, device DeviceHandle, format PixelFormat, views []ImageViewHandle, extent Extent2D) (*RenderPassResources, error) {
	renderPass, err := d.CreateRenderPass(device, format)
	if err != nil {
		return nil, fmt.Errorf("vk.CreateRenderPass(): %w", err)
	}

	framebuffers := make([]FramebufferHandle, 0, len(views))
	for i, view := range views {
		framebuffer, err := d.CreateFramebuffer(device, renderPass, view, extent)
		if err != nil {
			for _, created := range framebuffers {
				d.DestroyFramebuffer(device, created)
			}
			d.DestroyRenderPass(device, renderPass)
			return nil, fmt.Errorf("vk.CreateFramebuffer() for view %d: %w", i, err)
		}
		framebuffers = append(framebuffers, framebuffer)
	}

	return &RenderPassResources{
		RenderPass:   renderPass,
		Framebuffers: framebuffers,
	}, nil
}
