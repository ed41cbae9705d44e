package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	vk "github.com/vulkan-go/vulkan"
)

// NewVulkanRenderer creates a not yet initialised Vulkan API renderer.
func NewVulkanRenderer(instance Instance, cfg RendererConfiguration) (Renderer, error) {
	if cfg.SwapchainSize == 0 {
		cfg.SwapchainSize = defaultSwapchainSize
	}
	if cfg.ClearColor == (mgl32.Vec4{}) {
		cfg.ClearColor = DefaultClearColor
	}
	return &VulkanRenderer{
		configuration: cfg,
		driver:        instance.Driver(),
		surface:       instance.Surface(),
	}, nil
}

// VulkanRenderer is a Vulkan API renderer. It is the aggregate owner of
// every object the bootstrap creates: construction is all-or-nothing, and
// every created resource is threaded through an ordered teardown list that
// Destroy (or a mid-bootstrap failure) unwinds in exact reverse.
type VulkanRenderer struct {
	configuration RendererConfiguration

	driver  Driver
	surface SurfaceHandle

	physicalDevice PhysicalDeviceHandle
	queueIndices   QueueFamilyIndices

	device DeviceHandle
	queues Queues

	surfaceResources *SurfaceResources
	renderTargets    *RenderPassResources
	pipeline         *PipelineResources
	commands         *CommandResources

	teardown teardownList
}

// Initialise implements interface. It runs the whole bootstrap in one
// linear pass: physical device, queue families, logical device and queues,
// swapchain and image views, render pass and framebuffers, pipeline,
// command pools and recorded command buffers. A failure at any step
// unwinds everything already constructed and leaves the renderer empty.
func (v *VulkanRenderer) Initialise() (err error) {
	defer func() {
		if err != nil {
			v.teardown.unwind()
		}
	}()

	vertexShader, fragmentShader, err := v.loadShaders()
	if err != nil {
		return fmt.Errorf("loadShaders: %w", err)
	}

	v.physicalDevice, err = selectPhysicalDevice(v.driver)
	if err != nil {
		return fmt.Errorf("selectPhysicalDevice: %w", err)
	}

	v.queueIndices, err = selectQueueFamilies(v.driver, v.physicalDevice, v.surface)
	if err != nil {
		return fmt.Errorf("selectQueueFamilies: %w", err)
	}

	v.device, v.queues, err = createLogicalDevice(v.driver, v.physicalDevice, v.queueIndices, v.configuration.DeviceExtensions)
	if err != nil {
		return fmt.Errorf("createLogicalDevice: %w", err)
	}
	v.teardown.push("logical device", func() {
		v.driver.DestroyDevice(v.device)
		v.device = nil
	})

	v.surfaceResources, err = createSurfaceResources(v.driver, v.physicalDevice, v.device, v.surface, v.queueIndices, v.configuration.SwapchainSize)
	if err != nil {
		return fmt.Errorf("createSurfaceResources: %w", err)
	}
	v.teardown.push("swapchain", func() {
		v.driver.DestroySwapchain(v.device, v.surfaceResources.Swapchain)
	})
	for _, view := range v.surfaceResources.ImageViews {
		view := view
		v.teardown.push("swapchain image view", func() {
			v.driver.DestroyImageView(v.device, view)
		})
	}

	v.renderTargets, err = createRenderTargets(v.driver, v.device, v.surfaceResources.Format.Format, v.surfaceResources.ImageViews, v.surfaceResources.Extent)
	if err != nil {
		return fmt.Errorf("createRenderTargets: %w", err)
	}
	v.teardown.push("render pass", func() {
		v.driver.DestroyRenderPass(v.device, v.renderTargets.RenderPass)
	})
	for _, framebuffer := range v.renderTargets.Framebuffers {
		framebuffer := framebuffer
		v.teardown.push("framebuffer", func() {
			v.driver.DestroyFramebuffer(v.device, framebuffer)
		})
	}

	v.pipeline, err = createPipeline(v.driver, v.device, v.renderTargets.RenderPass, v.surfaceResources.Extent, vertexShader, fragmentShader)
	if err != nil {
		return fmt.Errorf("createPipeline: %w", err)
	}
	v.teardown.push("vertex shader module", func() {
		v.driver.DestroyShaderModule(v.device, v.pipeline.VertexModule)
	})
	v.teardown.push("fragment shader module", func() {
		v.driver.DestroyShaderModule(v.device, v.pipeline.FragmentModule)
	})
	v.teardown.push("pipeline layout", func() {
		v.driver.DestroyPipelineLayout(v.device, v.pipeline.Layout)
	})
	v.teardown.push("graphics pipeline", func() {
		v.driver.DestroyPipeline(v.device, v.pipeline.Pipeline)
	})

	v.commands, err = createCommandResources(v.driver, v.device, v.queueIndices, len(v.renderTargets.Framebuffers))
	if err != nil {
		return fmt.Errorf("createCommandResources: %w", err)
	}
	v.teardown.push("graphics command pool", func() {
		v.driver.DestroyCommandPool(v.device, v.commands.GraphicsPool)
	})
	v.teardown.push("transfer command pool", func() {
		v.driver.DestroyCommandPool(v.device, v.commands.TransferPool)
	})
	v.teardown.push("command buffers", func() {
		v.driver.FreeCommandBuffers(v.device, v.commands.GraphicsPool, v.commands.Buffers)
	})

	if err = recordCommandBuffers(v.driver, v.commands.Buffers, v.renderTargets.RenderPass, v.renderTargets.Framebuffers, v.pipeline.Pipeline, v.surfaceResources.Extent, v.configuration.ClearColor); err != nil {
		return fmt.Errorf("recordCommandBuffers: %w", err)
	}

	return nil
}

// DeviceIsSuitable implements interface.
func (v *VulkanRenderer) DeviceIsSuitable(device vk.PhysicalDevice) (bool, string) {
	families, err := v.driver.QueueFamilies(device)
	if err != nil {
		return false, "queue family enumeration failed: " + err.Error()
	}
	if len(families) == 0 {
		return false, "device reports no queue families"
	}
	return true, ""
}

// CommandBuffers implements interface.
func (v *VulkanRenderer) CommandBuffers() []CommandBufferHandle {
	if v.commands == nil {
		return nil
	}
	return v.commands.Buffers
}

// Queues implements interface.
func (v *VulkanRenderer) Queues() Queues {
	return v.queues
}

// QueueFamilies returns the selected queue family indices.
func (v *VulkanRenderer) QueueFamilies() QueueFamilyIndices {
	return v.queueIndices
}

// Destroy implements interface. Destruction follows the recorded teardown
// list in exact reverse construction order.
func (v *VulkanRenderer) Destroy() {
	if v.device != nil {
		v.driver.DeviceWaitIdle(v.device)
	}
	v.teardown.unwind()
	v.surfaceResources = nil
	v.renderTargets = nil
	v.pipeline = nil
	v.commands = nil
}
