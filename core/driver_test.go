package core

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
)

var errInjected = errors.New("injected failure")

// fakeHandle stands in for a driver object. The kind string doubles as
// the key for the live-handle bookkeeping.
type fakeHandle struct {
	kind string
	id   int
}

// fakeDriver is a synthetic Driver that journals every call, counts
// live handles per kind and can be told to fail the nth call of a given
// name. All hardware-report style answers are configurable fields.
type fakeDriver struct {
	journal []string
	counts  map[string]int
	failOn  map[string]int

	live    map[string]int
	created map[string]int
	nextID  int

	deviceCount    int
	families       []QueueFamily
	surfaceSupport map[uint32]bool
	formats        []SurfaceFormat
	modes          []PresentMode
	caps           SurfaceCapabilities
	imageCount     int

	swapchainCfg SwapchainConfig
	pipelineCfg  PipelineConfig
	viewFormats  []PixelFormat
	fbExtents    []Extent2D
	draws        [][2]uint32
}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		counts:  make(map[string]int),
		failOn:  make(map[string]int),
		live:    make(map[string]int),
		created: make(map[string]int),

		deviceCount: 1,
		families: []QueueFamily{
			{QueueCount: 1, Graphics: true, Transfer: true},
		},
		surfaceSupport: map[uint32]bool{},
		formats: []SurfaceFormat{
			{Format: FormatB8G8R8A8Unorm, ColorSpace: 0},
		},
		modes:      []PresentMode{0, PresentModeFifo},
		caps:       SurfaceCapabilities{MinImageCount: 1, MaxImageCount: 0, CurrentExtent: Extent2D{Width: 800, Height: 600}},
		imageCount: 3,
	}
}

func (f *fakeDriver) call(name string) error {
	f.journal = append(f.journal, name)
	f.counts[name]++
	if n, ok := f.failOn[name]; ok && f.counts[name] == n {
		return errInjected
	}
	return nil
}

func (f *fakeDriver) make(kind string) fakeHandle {
	f.nextID++
	f.live[kind]++
	f.created[kind]++
	return fakeHandle{kind: kind, id: f.nextID}
}

func (f *fakeDriver) release(kind string) {
	f.live[kind]--
}

func (f *fakeDriver) totalLive() int {
	var total int
	for _, n := range f.live {
		total += n
	}
	return total
}

// journalIndex returns the position of the nth occurrence of name, or -1.
func (f *fakeDriver) journalIndex(name string, nth int) int {
	seen := 0
	for i, entry := range f.journal {
		if entry == name {
			seen++
			if seen == nth {
				return i
			}
		}
	}
	return -1
}

func (f *fakeDriver) PhysicalDevices() ([]PhysicalDeviceHandle, error) {
	if err := f.call("PhysicalDevices"); err != nil {
		return nil, err
	}
	devices := make([]PhysicalDeviceHandle, f.deviceCount)
	for i := range devices {
		devices[i] = fakeHandle{kind: "physical device", id: i}
	}
	return devices, nil
}

func (f *fakeDriver) QueueFamilies(phys PhysicalDeviceHandle) ([]QueueFamily, error) {
	if err := f.call("QueueFamilies"); err != nil {
		return nil, err
	}
	return f.families, nil
}

func (f *fakeDriver) SurfaceSupport(phys PhysicalDeviceHandle, family uint32, surface SurfaceHandle) (bool, error) {
	if err := f.call("SurfaceSupport"); err != nil {
		return false, err
	}
	if supported, ok := f.surfaceSupport[family]; ok {
		return supported, nil
	}
	return true, nil
}

func (f *fakeDriver) CreateDevice(phys PhysicalDeviceHandle, families []uint32, extensions []string) (DeviceHandle, error) {
	if err := f.call("CreateDevice"); err != nil {
		return nil, err
	}
	return f.make("device"), nil
}

func (f *fakeDriver) DeviceQueue(device DeviceHandle, family uint32) QueueHandle {
	f.call("DeviceQueue")
	return fakeHandle{kind: "queue", id: int(family)}
}

func (f *fakeDriver) DeviceWaitIdle(device DeviceHandle) {
	f.call("DeviceWaitIdle")
}

func (f *fakeDriver) DestroyDevice(device DeviceHandle) {
	f.call("DestroyDevice")
	f.release("device")
}

func (f *fakeDriver) SurfaceFormats(phys PhysicalDeviceHandle, surface SurfaceHandle) ([]SurfaceFormat, error) {
	if err := f.call("SurfaceFormats"); err != nil {
		return nil, err
	}
	return f.formats, nil
}

func (f *fakeDriver) SurfaceCapabilities(phys PhysicalDeviceHandle, surface SurfaceHandle) (SurfaceCapabilities, error) {
	if err := f.call("SurfaceCapabilities"); err != nil {
		return SurfaceCapabilities{}, err
	}
	return f.caps, nil
}

func (f *fakeDriver) SurfacePresentModes(phys PhysicalDeviceHandle, surface SurfaceHandle) ([]PresentMode, error) {
	if err := f.call("SurfacePresentModes"); err != nil {
		return nil, err
	}
	return f.modes, nil
}

func (f *fakeDriver) CreateSwapchain(device DeviceHandle, cfg SwapchainConfig) (SwapchainHandle, error) {
	if err := f.call("CreateSwapchain"); err != nil {
		return nil, err
	}
	f.swapchainCfg = cfg
	return f.make("swapchain"), nil
}

func (f *fakeDriver) SwapchainImages(device DeviceHandle, swapchain SwapchainHandle) ([]ImageHandle, error) {
	if err := f.call("SwapchainImages"); err != nil {
		return nil, err
	}
	images := make([]ImageHandle, f.imageCount)
	for i := range images {
		images[i] = fakeHandle{kind: "image", id: i}
	}
	return images, nil
}

func (f *fakeDriver) DestroySwapchain(device DeviceHandle, swapchain SwapchainHandle) {
	f.call("DestroySwapchain")
	f.release("swapchain")
}

func (f *fakeDriver) CreateImageView(device DeviceHandle, image ImageHandle, format PixelFormat) (ImageViewHandle, error) {
	if err := f.call("CreateImageView"); err != nil {
		return nil, err
	}
	f.viewFormats = append(f.viewFormats, format)
	return f.make("image view"), nil
}

func (f *fakeDriver) DestroyImageView(device DeviceHandle, view ImageViewHandle) {
	f.call("DestroyImageView")
	f.release("image view")
}

func (f *fakeDriver) CreateRenderPass(device DeviceHandle, format PixelFormat) (RenderPassHandle, error) {
	if err := f.call("CreateRenderPass"); err != nil {
		return nil, err
	}
	return f.make("render pass"), nil
}

func (f *fakeDriver) DestroyRenderPass(device DeviceHandle, renderPass RenderPassHandle) {
	f.call("DestroyRenderPass")
	f.release("render pass")
}

func (f *fakeDriver) CreateFramebuffer(device DeviceHandle, renderPass RenderPassHandle, view ImageViewHandle, extent Extent2D) (FramebufferHandle, error) {
	if err := f.call("CreateFramebuffer"); err != nil {
		return nil, err
	}
	f.fbExtents = append(f.fbExtents, extent)
	return f.make("framebuffer"), nil
}

func (f *fakeDriver) DestroyFramebuffer(device DeviceHandle, framebuffer FramebufferHandle) {
	f.call("DestroyFramebuffer")
	f.release("framebuffer")
}

func (f *fakeDriver) CreateShaderModule(device DeviceHandle, bytecode []byte) (ShaderModuleHandle, error) {
	if err := f.call("CreateShaderModule"); err != nil {
		return nil, err
	}
	return f.make("shader module"), nil
}

func (f *fakeDriver) DestroyShaderModule(device DeviceHandle, module ShaderModuleHandle) {
	f.call("DestroyShaderModule")
	f.release("shader module")
}

func (f *fakeDriver) CreatePipelineLayout(device DeviceHandle) (PipelineLayoutHandle, error) {
	if err := f.call("CreatePipelineLayout"); err != nil {
		return nil, err
	}
	return f.make("pipeline layout"), nil
}

func (f *fakeDriver) DestroyPipelineLayout(device DeviceHandle, layout PipelineLayoutHandle) {
	f.call("DestroyPipelineLayout")
	f.release("pipeline layout")
}

func (f *fakeDriver) CreateGraphicsPipeline(device DeviceHandle, cfg PipelineConfig) (PipelineHandle, error) {
	if err := f.call("CreateGraphicsPipeline"); err != nil {
		return nil, err
	}
	f.pipelineCfg = cfg
	return f.make("pipeline"), nil
}

func (f *fakeDriver) DestroyPipeline(device DeviceHandle, pipeline PipelineHandle) {
	f.call("DestroyPipeline")
	f.release("pipeline")
}

func (f *fakeDriver) CreateCommandPool(device DeviceHandle, family uint32) (CommandPoolHandle, error) {
	if err := f.call("CreateCommandPool"); err != nil {
		return nil, err
	}
	return f.make("command pool"), nil
}

func (f *fakeDriver) DestroyCommandPool(device DeviceHandle, pool CommandPoolHandle) {
	f.call("DestroyCommandPool")
	f.release("command pool")
}

func (f *fakeDriver) AllocateCommandBuffers(device DeviceHandle, pool CommandPoolHandle, count int) ([]CommandBufferHandle, error) {
	if err := f.call("AllocateCommandBuffers"); err != nil {
		return nil, err
	}
	buffers := make([]CommandBufferHandle, count)
	for i := range buffers {
		buffers[i] = f.make("command buffer")
	}
	return buffers, nil
}

func (f *fakeDriver) FreeCommandBuffers(device DeviceHandle, pool CommandPoolHandle, buffers []CommandBufferHandle) {
	f.call("FreeCommandBuffers")
	for range buffers {
		f.release("command buffer")
	}
}

func (f *fakeDriver) BeginCommandBuffer(buffer CommandBufferHandle) error {
	return f.call("BeginCommandBuffer")
}

func (f *fakeDriver) CmdBeginRenderPass(buffer CommandBufferHandle, renderPass RenderPassHandle, framebuffer FramebufferHandle, extent Extent2D, clear mgl32.Vec4) {
	f.call("CmdBeginRenderPass")
}

func (f *fakeDriver) CmdBindPipeline(buffer CommandBufferHandle, pipeline PipelineHandle) {
	f.call("CmdBindPipeline")
}

func (f *fakeDriver) CmdDraw(buffer CommandBufferHandle, vertexCount, instanceCount uint32) {
	f.call("CmdDraw")
	f.draws = append(f.draws, [2]uint32{vertexCount, instanceCount})
}

func (f *fakeDriver) CmdEndRenderPass(buffer CommandBufferHandle) {
	f.call("CmdEndRenderPass")
}

func (f *fakeDriver) EndCommandBuffer(buffer CommandBufferHandle) error {
	return f.call("EndCommandBuffer")
}
