package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Opaque handles produced by a Driver. The bootstrap logic never inspects
// them, it only hands them back to the driver that produced them. Keeping
// them opaque is what lets the whole construction sequence run against a
// synthetic driver in tests.
type (
	PhysicalDeviceHandle interface{}
	SurfaceHandle        interface{}
	DeviceHandle         interface{}
	QueueHandle          interface{}
	SwapchainHandle      interface{}
	ImageHandle          interface{}
	ImageViewHandle      interface{}
	RenderPassHandle     interface{}
	FramebufferHandle    interface{}
	ShaderModuleHandle   interface{}
	PipelineLayoutHandle interface{}
	PipelineHandle       interface{}
	CommandPoolHandle    interface{}
	CommandBufferHandle  interface{}
)

// PixelFormat mirrors the VkFormat enumeration values.
type PixelFormat uint32

// ColorSpace mirrors the VkColorSpaceKHR enumeration values.
type ColorSpace uint32

// PresentMode mirrors the VkPresentModeKHR enumeration values.
type PresentMode int32

// FormatB8G8R8A8Unorm is VK_FORMAT_B8G8R8A8_UNORM, the presentation
// view format the swapchain image views are fixed to.
const FormatB8G8R8A8Unorm PixelFormat = 44

// PresentModeFifo is VK_PRESENT_MODE_KHR_FIFO, the only mode every
// implementation is required to support.
const PresentModeFifo PresentMode = 2

// Extent2D is a width/height pair in pixels.
type Extent2D struct {
	Width  uint32
	Height uint32
}

// SurfaceFormat is one format/color-space pair a surface reports support for.
type SurfaceFormat struct {
	Format     PixelFormat
	ColorSpace ColorSpace
}

// SurfaceCapabilities is the subset of the surface capability report the
// bootstrap negotiates with. MaxImageCount of zero means the hardware
// reports no upper bound.
type SurfaceCapabilities struct {
	MinImageCount uint32
	MaxImageCount uint32
	CurrentExtent Extent2D
}

// QueueFamily describes the capabilities of one hardware queue family.
type QueueFamily struct {
	QueueCount uint32
	Graphics   bool
	Transfer   bool
}

// SwapchainConfig carries the negotiated swapchain parameters into the
// driver. Image usage is always color-attachment and sharing is exclusive
// to the graphics family, so neither is configurable here.
type SwapchainConfig struct {
	Surface        SurfaceHandle
	MinImageCount  uint32
	Format         SurfaceFormat
	Extent         Extent2D
	PresentMode    PresentMode
	GraphicsFamily uint32
}

// PipelineConfig carries the variable parts of the fixed graphics pipeline
// into the driver. Everything else about the pipeline is static.
type PipelineConfig struct {
	RenderPass     RenderPassHandle
	Layout         PipelineLayoutHandle
	VertexModule   ShaderModuleHandle
	FragmentModule ShaderModuleHandle
	Extent         Extent2D
}

// Driver is the typed boundary between the bootstrap logic and the
// underlying graphics API. Every call the bootstrap issues goes through
// here; the production implementation maps one-to-one onto Vulkan entry
// points, tests substitute a synthetic driver.
type Driver interface {
	PhysicalDevices() ([]PhysicalDeviceHandle, error)
	QueueFamilies(phys PhysicalDeviceHandle) ([]QueueFamily, error)
	SurfaceSupport(phys PhysicalDeviceHandle, family uint32, surface SurfaceHandle) (bool, error)

	CreateDevice(phys PhysicalDeviceHandle, families []uint32, extensions []string) (DeviceHandle, error)
	DeviceQueue(device DeviceHandle, family uint32) QueueHandle
	DeviceWaitIdle(device DeviceHandle)
	DestroyDevice(device DeviceHandle)

	SurfaceFormats(phys PhysicalDeviceHandle, surface SurfaceHandle) ([]SurfaceFormat, error)
	SurfaceCapabilities(phys PhysicalDeviceHandle, surface SurfaceHandle) (SurfaceCapabilities, error)
	SurfacePresentModes(phys PhysicalDeviceHandle, surface SurfaceHandle) ([]PresentMode, error)

	CreateSwapchain(device DeviceHandle, cfg SwapchainConfig) (SwapchainHandle, error)
	SwapchainImages(device DeviceHandle, swapchain SwapchainHandle) ([]ImageHandle, error)
	DestroySwapchain(device DeviceHandle, swapchain SwapchainHandle)

	CreateImageView(device DeviceHandle, image ImageHandle, format PixelFormat) (ImageViewHandle, error)
	DestroyImageView(device DeviceHandle, view ImageViewHandle)

	CreateRenderPass(device DeviceHandle, format PixelFormat) (RenderPassHandle, error)
	DestroyRenderPass(device DeviceHandle, renderPass RenderPassHandle)

	CreateFramebuffer(device DeviceHandle, renderPass RenderPassHandle, view ImageViewHandle, extent Extent2D) (FramebufferHandle, error)
	DestroyFramebuffer(device DeviceHandle, framebuffer FramebufferHandle)

	CreateShaderModule(device DeviceHandle, bytecode []byte) (ShaderModuleHandle, error)
	DestroyShaderModule(device DeviceHandle, module ShaderModuleHandle)
	CreatePipelineLayout(device DeviceHandle) (PipelineLayoutHandle, error)
	DestroyPipelineLayout(device DeviceHandle, layout PipelineLayoutHandle)
	CreateGraphicsPipeline(device DeviceHandle, cfg PipelineConfig) (PipelineHandle, error)
	DestroyPipeline(device DeviceHandle, pipeline PipelineHandle)

	CreateCommandPool(device DeviceHandle, family uint32) (CommandPoolHandle, error)
	DestroyCommandPool(device DeviceHandle, pool CommandPoolHandle)
	AllocateCommandBuffers(device DeviceHandle, pool CommandPoolHandle, count int) ([]CommandBufferHandle, error)
	FreeCommandBuffers(device DeviceHandle, pool CommandPoolHandle, buffers []CommandBufferHandle)

	BeginCommandBuffer(buffer CommandBufferHandle) error
	CmdBeginRenderPass(buffer CommandBufferHandle, renderPass RenderPassHandle, framebuffer FramebufferHandle, extent Extent2D, clear mgl32.Vec4)
	CmdBindPipeline(buffer CommandBufferHandle, pipeline PipelineHandle)
	CmdDraw(buffer CommandBufferHandle, vertexCount, instanceCount uint32)
	CmdEndRenderPass(buffer CommandBufferHandle)
	EndCommandBuffer(buffer CommandBufferHandle) error
}
