package core

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/mathgl/mgl32"
	vk "github.com/vulkan-go/vulkan"

	"github.com/ember3d/ember/device"
)

// NewVulkanInstance creates a Vulkan instance. procAddr is the loader
// entry point obtained from the windowing library; passing nil falls
// back to the default system loader.
func NewVulkanInstance(cfg InstanceConfiguration, procAddr unsafe.Pointer) (Instance, error) {
	if cfg.EnabledValidation {
		cfg.Layers = append(cfg.Layers, "VK_LAYER_KHRONOS_validation")
		cfg.Extensions = append(cfg.Extensions, "VK_EXT_debug_report")
	}

	if procAddr == nil {
		if err := vk.SetDefaultGetInstanceProcAddr(); err != nil {
			return nil, fmt.Errorf("vk.SetDefaultGetInstanceProcAddr(): %w", err)
		}
	} else {
		vk.SetGetInstanceProcAddr(procAddr)
	}

	if err := vk.Init(); err != nil {
		return nil, fmt.Errorf("vk.Init(): %w", err)
	}

	appInfo := &vk.ApplicationInfo{
		SType:              vk.StructureTypeApplicationInfo,
		ApiVersion:         vk.MakeVersion(1, 0, 0),
		ApplicationVersion: vk.MakeVersion(1, 0, 0),
		PApplicationName:   safeString(cfg.ApplicationName),
		PEngineName:        safeString(cfg.EngineName),
	}

	/* Create instance */
	instanceInfo := vk.InstanceCreateInfo{
		SType:                   vk.StructureTypeInstanceCreateInfo,
		PApplicationInfo:        appInfo,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}

	var instance vk.Instance
	if err := vk.Error(vk.CreateInstance(&instanceInfo, nil, &instance)); err != nil {
		return nil, fmt.Errorf("vk.CreateInstance(): %w", err)
	}
	vk.InitInstance(instance)

	/* Register diagnostics before anything else touches the instance */
	debugCallback := vk.NullDebugReportCallback
	if cfg.EnabledValidation {
		var err error
		if debugCallback, err = installDebugCallback(instance); err != nil {
			vk.DestroyInstance(instance, nil)
			return nil, fmt.Errorf("vk.CreateDebugReportCallback(): %w", err)
		}
	}

	/* Enumerate devices */
	physicalDevices, err := enumerateDevices(instance)
	if err != nil {
		if debugCallback != vk.NullDebugReportCallback {
			vk.DestroyDebugReportCallback(instance, debugCallback, nil)
		}
		vk.DestroyInstance(instance, nil)
		return nil, fmt.Errorf("core.enumerateDevices(): %w", err)
	}

	return &VulkanInstance{
		configuration:    cfg,
		instance:         instance,
		debugCallback:    debugCallback,
		availableDevices: physicalDevices,
		driver:           &vulkanDriver{instance: instance},
	}, nil
}

// VulkanInstance describes a Vulkan API Instance
type VulkanInstance struct {
	configuration InstanceConfiguration

	availableDevices []vk.PhysicalDevice
	surface          vk.Surface
	instance         vk.Instance
	debugCallback    vk.DebugReportCallback
	driver           *vulkanDriver
}

func enumerateDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var deviceCount uint32
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, nil)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %w", err)
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if err := vk.Error(vk.EnumeratePhysicalDevices(instance, &deviceCount, availableDevices)); err != nil {
		return nil, fmt.Errorf("vulkan physical device enumeration failed: %w", err)
	}
	return availableDevices, nil
}

// PhysicalDevicesInfo implements interface
func (v *VulkanInstance) PhysicalDevicesInfo() []device.PhysicalDeviceInfo {
	pdi := make([]device.PhysicalDeviceInfo, len(v.availableDevices))
	for i := 0; i < len(v.availableDevices); i++ {
		// Get extension info
		var numDeviceExtensions uint32
		if err := vk.Error(vk.EnumerateDeviceExtensionProperties(v.availableDevices[i], "", &numDeviceExtensions, nil)); err != nil {
			pdi[i].Invalid = true
		}
		deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
		if err := vk.Error(vk.EnumerateDeviceExtensionProperties(v.availableDevices[i], "", &numDeviceExtensions, deviceExt)); err != nil {
			pdi[i].Invalid = true
		}
		for _, ext := range deviceExt {
			ext.Deref()
			pdi[i].Extensions = append(pdi[i].Extensions, vk.ToString(ext.ExtensionName[:]))
		}

		// Get layers info
		var numDeviceLayers uint32
		if err := vk.Error(vk.EnumerateDeviceLayerProperties(v.availableDevices[i], &numDeviceLayers, nil)); err != nil {
			pdi[i].Invalid = true
		}
		deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
		if err := vk.Error(vk.EnumerateDeviceLayerProperties(v.availableDevices[i], &numDeviceLayers, deviceLayers)); err != nil {
			pdi[i].Invalid = true
		}
		for _, layer := range deviceLayers {
			layer.Deref()
			pdi[i].Layers = append(pdi[i].Layers, vk.ToString(layer.LayerName[:]))
		}

		// Get memory info
		var memoryProperties vk.PhysicalDeviceMemoryProperties
		vk.GetPhysicalDeviceMemoryProperties(v.availableDevices[i], &memoryProperties)
		memoryProperties.Deref()
		for iMem := (uint32)(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
			memoryProperties.MemoryHeaps[iMem].Deref()
			pdi[i].Memory = pdi[i].Memory + uint(memoryProperties.MemoryHeaps[iMem].Size)
		}

		// Get general device info
		var physicalDeviceProperties vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(v.availableDevices[i], &physicalDeviceProperties)
		physicalDeviceProperties.Deref()
		pdi[i].ID = (int)(physicalDeviceProperties.DeviceID)
		pdi[i].VendorID = (int)(physicalDeviceProperties.VendorID)
		pdi[i].Name = vk.ToString(physicalDeviceProperties.DeviceName[:])
		pdi[i].DriverVersion = (int)(physicalDeviceProperties.DriverVersion)
	}
	return pdi
}

// SetSurface implements interface
func (v *VulkanInstance) SetSurface(pSurface unsafe.Pointer) {
	v.surface = vk.SurfaceFromPointer(uintptr(pSurface))
}

// Surface implements interface
func (v *VulkanInstance) Surface() SurfaceHandle {
	if v.surface == vk.NullSurface {
		return vk.NullSurface
	}
	return v.surface
}

// Instance implements interface
func (v *VulkanInstance) Instance() interface{} {
	return v.instance
}

// Driver implements interface
func (v *VulkanInstance) Driver() Driver {
	return v.driver
}

// Extensions implements interface
func (v *VulkanInstance) Extensions() []string {
	return v.configuration.Extensions
}

// AvailableDevices implements interface
func (v *VulkanInstance) AvailableDevices() []vk.PhysicalDevice {
	return v.availableDevices
}

// Destroy implements interface
func (v *VulkanInstance) Destroy() {
	v.availableDevices = nil
	if v.surface != vk.NullSurface {
		vk.DestroySurface(v.instance, v.surface, nil)
		v.surface = vk.NullSurface
	}
	if v.debugCallback != vk.NullDebugReportCallback {
		vk.DestroyDebugReportCallback(v.instance, v.debugCallback, nil)
		v.debugCallback = vk.NullDebugReportCallback
	}
	vk.DestroyInstance(v.instance, nil)
}

// vulkanDriver maps the Driver boundary one-to-one onto Vulkan entry
// points. It holds no state beyond the owning instance; every handle it
// hands out is a plain vulkan-go handle.
type vulkanDriver struct {
	instance vk.Instance
}

func (d *vulkanDriver) PhysicalDevices() ([]PhysicalDeviceHandle, error) {
	devices, err := enumerateDevices(d.instance)
	if err != nil {
		return nil, err
	}
	handles := make([]PhysicalDeviceHandle, len(devices))
	for i, dev := range devices {
		handles[i] = dev
	}
	return handles, nil
}

func (d *vulkanDriver) QueueFamilies(phys PhysicalDeviceHandle) ([]QueueFamily, error) {
	var familyCount uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(phys.(vk.PhysicalDevice), &familyCount, nil)
	properties := make([]vk.QueueFamilyProperties, familyCount)
	vk.GetPhysicalDeviceQueueFamilyProperties(phys.(vk.PhysicalDevice), &familyCount, properties)

	families := make([]QueueFamily, familyCount)
	for i := range properties {
		properties[i].Deref()
		families[i] = QueueFamily{
			QueueCount: properties[i].QueueCount,
			Graphics:   properties[i].QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			Transfer:   properties[i].QueueFlags&vk.QueueFlags(vk.QueueTransferBit) != 0,
		}
	}
	return families, nil
}

func (d *vulkanDriver) SurfaceSupport(phys PhysicalDeviceHandle, family uint32, surface SurfaceHandle) (bool, error) {
	var supported vk.Bool32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceSupport(phys.(vk.PhysicalDevice), family, surface.(vk.Surface), &supported)); err != nil {
		return false, fmt.Errorf("vk.GetPhysicalDeviceSurfaceSupport(): %w", err)
	}
	return supported.B(), nil
}

func (d *vulkanDriver) CreateDevice(phys PhysicalDeviceHandle, families []uint32, extensions []string) (DeviceHandle, error) {
	queueInfos := make([]vk.DeviceQueueCreateInfo, len(families))
	for i, family := range families {
		queueInfos[i] = vk.DeviceQueueCreateInfo{
			SType:            vk.StructureTypeDeviceQueueCreateInfo,
			QueueFamilyIndex: family,
			QueueCount:       1,
			PQueuePriorities: []float32{1.0},
		}
	}

	deviceInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: safeStrings(extensions),
	}

	var logicalDevice vk.Device
	if err := vk.Error(vk.CreateDevice(phys.(vk.PhysicalDevice), &deviceInfo, nil, &logicalDevice)); err != nil {
		return nil, err
	}
	return logicalDevice, nil
}

func (d *vulkanDriver) DeviceQueue(dev DeviceHandle, family uint32) QueueHandle {
	var queue vk.Queue
	vk.GetDeviceQueue(dev.(vk.Device), family, 0, &queue)
	return queue
}

func (d *vulkanDriver) DeviceWaitIdle(dev DeviceHandle) {
	vk.DeviceWaitIdle(dev.(vk.Device))
}

func (d *vulkanDriver) DestroyDevice(dev DeviceHandle) {
	vk.DestroyDevice(dev.(vk.Device), nil)
}

func (d *vulkanDriver) SurfaceFormats(phys PhysicalDeviceHandle, surface SurfaceHandle) ([]SurfaceFormat, error) {
	var formatCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(phys.(vk.PhysicalDevice), surface.(vk.Surface), &formatCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfaceFormats(): %w", err)
	}
	surfaceFormats := make([]vk.SurfaceFormat, formatCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceFormats(phys.(vk.PhysicalDevice), surface.(vk.Surface), &formatCount, surfaceFormats)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfaceFormats(): %w", err)
	}

	formats := make([]SurfaceFormat, formatCount)
	for i := range surfaceFormats {
		surfaceFormats[i].Deref()
		formats[i] = SurfaceFormat{
			Format:     PixelFormat(surfaceFormats[i].Format),
			ColorSpace: ColorSpace(surfaceFormats[i].ColorSpace),
		}
	}
	return formats, nil
}

func (d *vulkanDriver) SurfaceCapabilities(phys PhysicalDeviceHandle, surface SurfaceHandle) (SurfaceCapabilities, error) {
	var capabilities vk.SurfaceCapabilities
	if err := vk.Error(vk.GetPhysicalDeviceSurfaceCapabilities(phys.(vk.PhysicalDevice), surface.(vk.Surface), &capabilities)); err != nil {
		return SurfaceCapabilities{}, fmt.Errorf("vk.GetPhysicalDeviceSurfaceCapabilities(): %w", err)
	}
	capabilities.Deref()
	capabilities.CurrentExtent.Deref()

	return SurfaceCapabilities{
		MinImageCount: capabilities.MinImageCount,
		MaxImageCount: capabilities.MaxImageCount,
		CurrentExtent: Extent2D{
			Width:  capabilities.CurrentExtent.Width,
			Height: capabilities.CurrentExtent.Height,
		},
	}, nil
}

func (d *vulkanDriver) SurfacePresentModes(phys PhysicalDeviceHandle, surface SurfaceHandle) ([]PresentMode, error) {
	var modeCount uint32
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(phys.(vk.PhysicalDevice), surface.(vk.Surface), &modeCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfacePresentModes(): %w", err)
	}
	presentModes := make([]vk.PresentMode, modeCount)
	if err := vk.Error(vk.GetPhysicalDeviceSurfacePresentModes(phys.(vk.PhysicalDevice), surface.(vk.Surface), &modeCount, presentModes)); err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfacePresentModes(): %w", err)
	}

	modes := make([]PresentMode, modeCount)
	for i, mode := range presentModes {
		modes[i] = PresentMode(mode)
	}
	return modes, nil
}

func (d *vulkanDriver) CreateSwapchain(dev DeviceHandle, cfg SwapchainConfig) (SwapchainHandle, error) {
	swapchainInfo := vk.SwapchainCreateInfo{
		SType:           vk.StructureTypeSwapchainCreateInfo,
		Surface:         cfg.Surface.(vk.Surface),
		MinImageCount:   cfg.MinImageCount,
		ImageFormat:     vk.Format(cfg.Format.Format),
		ImageColorSpace: vk.ColorSpace(cfg.Format.ColorSpace),
		ImageExtent: vk.Extent2D{
			Width:  cfg.Extent.Width,
			Height: cfg.Extent.Height,
		},
		ImageArrayLayers:      1,
		ImageUsage:            vk.ImageUsageFlags(vk.ImageUsageColorAttachmentBit),
		ImageSharingMode:      vk.SharingModeExclusive,
		QueueFamilyIndexCount: 1,
		PQueueFamilyIndices:   []uint32{cfg.GraphicsFamily},
		PreTransform:          vk.SurfaceTransformIdentityBit,
		CompositeAlpha:        vk.CompositeAlphaOpaqueBit,
		PresentMode:           vk.PresentMode(cfg.PresentMode),
		Clipped:               vk.True,
		OldSwapchain:          vk.NullSwapchain,
	}

	var swapchain vk.Swapchain
	if err := vk.Error(vk.CreateSwapchain(dev.(vk.Device), &swapchainInfo, nil, &swapchain)); err != nil {
		return nil, err
	}
	return swapchain, nil
}

func (d *vulkanDriver) SwapchainImages(dev DeviceHandle, swapchain SwapchainHandle) ([]ImageHandle, error) {
	var imageCount uint32
	if err := vk.Error(vk.GetSwapchainImages(dev.(vk.Device), swapchain.(vk.Swapchain), &imageCount, nil)); err != nil {
		return nil, fmt.Errorf("vk.GetSwapchainImages(): %w", err)
	}
	images := make([]vk.Image, imageCount)
	if err := vk.Error(vk.GetSwapchainImages(dev.(vk.Device), swapchain.(vk.Swapchain), &imageCount, images)); err != nil {
		return nil, fmt.Errorf("vk.GetSwapchainImages(): %w", err)
	}

	handles := make([]ImageHandle, imageCount)
	for i, image := range images {
		handles[i] = image
	}
	return handles, nil
}

func (d *vulkanDriver) DestroySwapchain(dev DeviceHandle, swapchain SwapchainHandle) {
	vk.DestroySwapchain(dev.(vk.Device), swapchain.(vk.Swapchain), nil)
}

func (d *vulkanDriver) CreateImageView(dev DeviceHandle, image ImageHandle, format PixelFormat) (ImageViewHandle, error) {
	viewInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    image.(vk.Image),
		ViewType: vk.ImageViewType2d,
		Format:   vk.Format(format),
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     vk.ImageAspectFlags(vk.ImageAspectColorBit),
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}

	var view vk.ImageView
	if err := vk.Error(vk.CreateImageView(dev.(vk.Device), &viewInfo, nil, &view)); err != nil {
		return nil, err
	}
	return view, nil
}

func (d *vulkanDriver) DestroyImageView(dev DeviceHandle, view ImageViewHandle) {
	vk.DestroyImageView(dev.(vk.Device), view.(vk.ImageView), nil)
}

func (d *vulkanDriver) CreateRenderPass(dev DeviceHandle, format PixelFormat) (RenderPassHandle, error) {
	colorAttachment := vk.AttachmentDescription{
		Format:         vk.Format(format),
		Samples:        vk.SampleCount1Bit,
		LoadOp:         vk.AttachmentLoadOpClear,
		StoreOp:        vk.AttachmentStoreOpStore,
		StencilLoadOp:  vk.AttachmentLoadOpDontCare,
		StencilStoreOp: vk.AttachmentStoreOpDontCare,
		InitialLayout:  vk.ImageLayoutUndefined,
		FinalLayout:    vk.ImageLayoutPresentSrc,
	}

	colorAttachmentRef := vk.AttachmentReference{
		Attachment: 0,
		Layout:     vk.ImageLayoutColorAttachmentOptimal,
	}

	subpass := vk.SubpassDescription{
		PipelineBindPoint:    vk.PipelineBindPointGraphics,
		ColorAttachmentCount: 1,
		PColorAttachments:    []vk.AttachmentReference{colorAttachmentRef},
	}

	dependency := vk.SubpassDependency{
		SrcSubpass:    vk.SubpassExternal,
		DstSubpass:    0,
		SrcStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		SrcAccessMask: 0,
		DstStageMask:  vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit),
		DstAccessMask: vk.AccessFlags(vk.AccessColorAttachmentReadBit | vk.AccessColorAttachmentWriteBit),
	}

	renderPassInfo := vk.RenderPassCreateInfo{
		SType:           vk.StructureTypeRenderPassCreateInfo,
		AttachmentCount: 1,
		PAttachments:    []vk.AttachmentDescription{colorAttachment},
		SubpassCount:    1,
		PSubpasses:      []vk.SubpassDescription{subpass},
		DependencyCount: 1,
		PDependencies:   []vk.SubpassDependency{dependency},
	}

	var renderPass vk.RenderPass
	if err := vk.Error(vk.CreateRenderPass(dev.(vk.Device), &renderPassInfo, nil, &renderPass)); err != nil {
		return nil, err
	}
	return renderPass, nil
}

func (d *vulkanDriver) DestroyRenderPass(dev DeviceHandle, renderPass RenderPassHandle) {
	vk.DestroyRenderPass(dev.(vk.Device), renderPass.(vk.RenderPass), nil)
}

func (d *vulkanDriver) CreateFramebuffer(dev DeviceHandle, renderPass RenderPassHandle, view ImageViewHandle, extent Extent2D) (FramebufferHandle, error) {
	framebufferInfo := vk.FramebufferCreateInfo{
		SType:           vk.StructureTypeFramebufferCreateInfo,
		RenderPass:      renderPass.(vk.RenderPass),
		AttachmentCount: 1,
		PAttachments:    []vk.ImageView{view.(vk.ImageView)},
		Width:           extent.Width,
		Height:          extent.Height,
		Layers:          1,
	}

	var framebuffer vk.Framebuffer
	if err := vk.Error(vk.CreateFramebuffer(dev.(vk.Device), &framebufferInfo, nil, &framebuffer)); err != nil {
		return nil, err
	}
	return framebuffer, nil
}

func (d *vulkanDriver) DestroyFramebuffer(dev DeviceHandle, framebuffer FramebufferHandle) {
	vk.DestroyFramebuffer(dev.(vk.Device), framebuffer.(vk.Framebuffer), nil)
}

func (d *vulkanDriver) CreateShaderModule(dev DeviceHandle, bytecode []byte) (ShaderModuleHandle, error) {
	moduleInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uint(len(bytecode)),
		PCode:    SliceUint32(bytecode),
	}

	var module vk.ShaderModule
	if err := vk.Error(vk.CreateShaderModule(dev.(vk.Device), &moduleInfo, nil, &module)); err != nil {
		return nil, err
	}
	return module, nil
}

func (d *vulkanDriver) DestroyShaderModule(dev DeviceHandle, module ShaderModuleHandle) {
	vk.DestroyShaderModule(dev.(vk.Device), module.(vk.ShaderModule), nil)
}

func (d *vulkanDriver) CreatePipelineLayout(dev DeviceHandle) (PipelineLayoutHandle, error) {
	layoutInfo := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         0,
		PushConstantRangeCount: 0,
	}

	var layout vk.PipelineLayout
	if err := vk.Error(vk.CreatePipelineLayout(dev.(vk.Device), &layoutInfo, nil, &layout)); err != nil {
		return nil, err
	}
	return layout, nil
}

func (d *vulkanDriver) DestroyPipelineLayout(dev DeviceHandle, layout PipelineLayoutHandle) {
	vk.DestroyPipelineLayout(dev.(vk.Device), layout.(vk.PipelineLayout), nil)
}

func (d *vulkanDriver) CreateGraphicsPipeline(dev DeviceHandle, cfg PipelineConfig) (PipelineHandle, error) {
	shaderStages := []vk.PipelineShaderStageCreateInfo{
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageVertexBit,
			Module: cfg.VertexModule.(vk.ShaderModule),
			PName:  "main\x00",
		},
		{
			SType:  vk.StructureTypePipelineShaderStageCreateInfo,
			Stage:  vk.ShaderStageFragmentBit,
			Module: cfg.FragmentModule.(vk.ShaderModule),
			PName:  "main\x00",
		},
	}

	vertexInputInfo := vk.PipelineVertexInputStateCreateInfo{
		SType:                           vk.StructureTypePipelineVertexInputStateCreateInfo,
		VertexBindingDescriptionCount:   0,
		VertexAttributeDescriptionCount: 0,
	}

	// Point list is a bootstrap placeholder, not a general default.
	inputAssembly := vk.PipelineInputAssemblyStateCreateInfo{
		SType:                  vk.StructureTypePipelineInputAssemblyStateCreateInfo,
		Topology:               vk.PrimitiveTopologyPointList,
		PrimitiveRestartEnable: vk.False,
	}

	viewport := vk.Viewport{
		X:        0,
		Y:        0,
		Width:    float32(cfg.Extent.Width),
		Height:   float32(cfg.Extent.Height),
		MinDepth: 0,
		MaxDepth: 1,
	}

	scissor := vk.Rect2D{
		Offset: vk.Offset2D{X: 0, Y: 0},
		Extent: vk.Extent2D{
			Width:  cfg.Extent.Width,
			Height: cfg.Extent.Height,
		},
	}

	viewportState := vk.PipelineViewportStateCreateInfo{
		SType:         vk.StructureTypePipelineViewportStateCreateInfo,
		ViewportCount: 1,
		PViewports:    []vk.Viewport{viewport},
		ScissorCount:  1,
		PScissors:     []vk.Rect2D{scissor},
	}

	rasterizer := vk.PipelineRasterizationStateCreateInfo{
		SType:                   vk.StructureTypePipelineRasterizationStateCreateInfo,
		DepthClampEnable:        vk.False,
		RasterizerDiscardEnable: vk.False,
		PolygonMode:             vk.PolygonModeFill,
		CullMode:                vk.CullModeFlags(vk.CullModeNone),
		FrontFace:               vk.FrontFaceCounterClockwise,
		DepthBiasEnable:         vk.False,
		LineWidth:               1.0,
	}

	multisampling := vk.PipelineMultisampleStateCreateInfo{
		SType:                vk.StructureTypePipelineMultisampleStateCreateInfo,
		RasterizationSamples: vk.SampleCount1Bit,
		SampleShadingEnable:  vk.False,
	}

	colorBlendAttachment := vk.PipelineColorBlendAttachmentState{
		BlendEnable:         vk.True,
		SrcColorBlendFactor: vk.BlendFactorSrcAlpha,
		DstColorBlendFactor: vk.BlendFactorOneMinusSrcAlpha,
		ColorBlendOp:        vk.BlendOpAdd,
		SrcAlphaBlendFactor: vk.BlendFactorOne,
		DstAlphaBlendFactor: vk.BlendFactorZero,
		AlphaBlendOp:        vk.BlendOpAdd,
		ColorWriteMask: vk.ColorComponentFlags(vk.ColorComponentRBit |
			vk.ColorComponentGBit | vk.ColorComponentBBit | vk.ColorComponentABit),
	}

	colorBlending := vk.PipelineColorBlendStateCreateInfo{
		SType:           vk.StructureTypePipelineColorBlendStateCreateInfo,
		LogicOpEnable:   vk.False,
		AttachmentCount: 1,
		PAttachments:    []vk.PipelineColorBlendAttachmentState{colorBlendAttachment},
	}

	pipelineInfo := vk.GraphicsPipelineCreateInfo{
		SType:               vk.StructureTypeGraphicsPipelineCreateInfo,
		StageCount:          uint32(len(shaderStages)),
		PStages:             shaderStages,
		PVertexInputState:   &vertexInputInfo,
		PInputAssemblyState: &inputAssembly,
		PViewportState:      &viewportState,
		PRasterizationState: &rasterizer,
		PMultisampleState:   &multisampling,
		PColorBlendState:    &colorBlending,
		Layout:              cfg.Layout.(vk.PipelineLayout),
		RenderPass:          cfg.RenderPass.(vk.RenderPass),
		Subpass:             0,
		BasePipelineHandle:  vk.NullPipeline,
		BasePipelineIndex:   -1,
	}

	pipelines := make([]vk.Pipeline, 1)
	if err := vk.Error(vk.CreateGraphicsPipelines(dev.(vk.Device), vk.NullPipelineCache, 1,
		[]vk.GraphicsPipelineCreateInfo{pipelineInfo}, nil, pipelines)); err != nil {
		return nil, err
	}
	return pipelines[0], nil
}

func (d *vulkanDriver) DestroyPipeline(dev DeviceHandle, pipeline PipelineHandle) {
	vk.DestroyPipeline(dev.(vk.Device), pipeline.(vk.Pipeline), nil)
}

func (d *vulkanDriver) CreateCommandPool(dev DeviceHandle, family uint32) (CommandPoolHandle, error) {
	poolInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: family,
	}

	var pool vk.CommandPool
	if err := vk.Error(vk.CreateCommandPool(dev.(vk.Device), &poolInfo, nil, &pool)); err != nil {
		return nil, err
	}
	return pool, nil
}

func (d *vulkanDriver) DestroyCommandPool(dev DeviceHandle, pool CommandPoolHandle) {
	vk.DestroyCommandPool(dev.(vk.Device), pool.(vk.CommandPool), nil)
}

func (d *vulkanDriver) AllocateCommandBuffers(dev DeviceHandle, pool CommandPoolHandle, count int) ([]CommandBufferHandle, error) {
	allocateInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        pool.(vk.CommandPool),
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: uint32(count),
	}

	buffers := make([]vk.CommandBuffer, count)
	if err := vk.Error(vk.AllocateCommandBuffers(dev.(vk.Device), &allocateInfo, buffers)); err != nil {
		return nil, err
	}

	handles := make([]CommandBufferHandle, count)
	for i, buffer := range buffers {
		handles[i] = buffer
	}
	return handles, nil
}

func (d *vulkanDriver) FreeCommandBuffers(dev DeviceHandle, pool CommandPoolHandle, buffers []CommandBufferHandle) {
	vkBuffers := make([]vk.CommandBuffer, len(buffers))
	for i, buffer := range buffers {
		vkBuffers[i] = buffer.(vk.CommandBuffer)
	}
	vk.FreeCommandBuffers(dev.(vk.Device), pool.(vk.CommandPool), uint32(len(vkBuffers)), vkBuffers)
}

func (d *vulkanDriver) BeginCommandBuffer(buffer CommandBufferHandle) error {
	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
	}
	return vk.Error(vk.BeginCommandBuffer(buffer.(vk.CommandBuffer), &beginInfo))
}

func (d *vulkanDriver) CmdBeginRenderPass(buffer CommandBufferHandle, renderPass RenderPassHandle,
	framebuffer FramebufferHandle, extent Extent2D, clear mgl32.Vec4) {

	beginInfo := vk.RenderPassBeginInfo{
		SType:       vk.StructureTypeRenderPassBeginInfo,
		RenderPass:  renderPass.(vk.RenderPass),
		Framebuffer: framebuffer.(vk.Framebuffer),
		RenderArea: vk.Rect2D{
			Offset: vk.Offset2D{X: 0, Y: 0},
			Extent: vk.Extent2D{
				Width:  extent.Width,
				Height: extent.Height,
			},
		},
		ClearValueCount: 1,
		PClearValues: []vk.ClearValue{
			vk.NewClearValue([]float32{clear[0], clear[1], clear[2], clear[3]}),
		},
	}
	vk.CmdBeginRenderPass(buffer.(vk.CommandBuffer), &beginInfo, vk.SubpassContentsInline)
}

func (d *vulkanDriver) CmdBindPipeline(buffer CommandBufferHandle, pipeline PipelineHandle) {
	vk.CmdBindPipeline(buffer.(vk.CommandBuffer), vk.PipelineBindPointGraphics, pipeline.(vk.Pipeline))
}

func (d *vulkanDriver) CmdDraw(buffer CommandBufferHandle, vertexCount, instanceCount uint32) {
	vk.CmdDraw(buffer.(vk.CommandBuffer), vertexCount, instanceCount, 0, 0)
}

func (d *vulkanDriver) CmdEndRenderPass(buffer CommandBufferHandle) {
	vk.CmdEndRenderPass(buffer.(vk.CommandBuffer))
}

func (d *vulkanDriver) EndCommandBuffer(buffer CommandBufferHandle) error {
	return vk.Error(vk.EndCommandBuffer(buffer.(vk.CommandBuffer)))
}
