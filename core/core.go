package core

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"

	"github.com/ember3d/ember/device"
)

// Instance describes a Vulkan instance and supporting methods.
// Once created it is ready to use.
type Instance interface {
	// PhysicalDevicesInfo returns a struct for each physical device
	// along with info about those devices
	PhysicalDevicesInfo() []device.PhysicalDeviceInfo

	// AvailableDevices returns handles of physical devices
	// from the Vulkan API
	AvailableDevices() []vk.PhysicalDevice

	// SetSurface sets the window surface for rendering
	SetSurface(unsafe.Pointer)

	// Surface returns the window surface, if it's not set
	// it returns a valid but empty surface
	Surface() SurfaceHandle

	// Instance returns the underlying API instance handle for
	// windowing libraries that create surfaces
	Instance() interface{}

	// Driver returns the typed driver boundary backed by this instance
	Driver() Driver

	// Extensions returns enabled instance extensions
	Extensions() []string

	// Destroy destroys internal members
	Destroy()
}

// Renderer describes the rendering machinery.
// It's created only with internal values set,
// it needs to be initialised with Initialise() before use.
type Renderer interface {
	// Initialise sets up the configured rendering pipeline
	Initialise() error

	// DeviceIsSuitable checks if the device given is suitable
	// for the rendering pipeline. If not suitable string contains the reason
	DeviceIsSuitable(vk.PhysicalDevice) (bool, string)

	// CommandBuffers returns the recorded command buffers, one per
	// swapchain framebuffer, ready to submit
	CommandBuffers() []CommandBufferHandle

	// Queues returns the graphics and transfer queue handles
	Queues() Queues

	// Destroy destroys internal members
	Destroy()
}

// ShaderType represents the type of shader thats loaded
type ShaderType int

// Identifies shader objects with their types
const (
	VertexShaderType ShaderType = iota
	FragmentShaderType
	UnknownShaderType
)
