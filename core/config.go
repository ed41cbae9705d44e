package core

import "github.com/go-gl/mathgl/mgl32"

// Configuration defines a whole engine configuration. It is an explicit
// value handed to the bootstrap entry points; nothing in this package
// reads process-wide state.
type Configuration struct {
	Instance InstanceConfiguration
	Time     TimeConfiguration
	Renderer RendererConfiguration
}

// InstanceConfiguration is used to configure instance creation.
type InstanceConfiguration struct {
	// ApplicationName and EngineName are reported to the driver verbatim.
	ApplicationName string
	EngineName      string

	// EnabledValidation turns on the Khronos validation layer and routes
	// driver diagnostics into the configured log sink.
	EnabledValidation bool

	Extensions []string
	Layers     []string
}

// TimeConfiguration is used to configure time services.
type TimeConfiguration struct {
	// FramesPerSecond caps frames per second that is put out.
	// To unlimit, set to 0.
	FramesPerSecond int

	// EventPollDelay is the window event polling interval in milliseconds.
	EventPollDelay int
}

// RendererConfiguration is used to configure the renderer.
type RendererConfiguration struct {
	// SwapchainSize is the requested swapchain image count, clamped into
	// the hardware-reported bounds during negotiation. Zero means the
	// default of three.
	SwapchainSize uint32

	// DeviceExtensions are platform-compatibility extensions enabled on
	// the logical device in addition to the swapchain extension.
	DeviceExtensions []string

	ScreenWidth  uint32
	ScreenHeight uint32

	// ClearColor is the fixed color the single render pass clears to.
	ClearColor mgl32.Vec4

	// VertexShader and FragmentShader are compiled bytecode blobs. When
	// unset, the renderer loads them from ShaderArchive or, failing that,
	// from the compiled shaders found under ShaderDirectory.
	VertexShader    []byte
	FragmentShader  []byte
	ShaderArchive   string
	ShaderDirectory string
}

// DefaultClearColor is a dark, low-saturation tone used when the
// configuration does not specify one.
var DefaultClearColor = mgl32.Vec4{0.05, 0.05, 0.05, 1}

// defaultSwapchainSize is requested when SwapchainSize is zero: three
// images for pipelining headroom, subject to the hardware bounds.
const defaultSwapchainSize = 3
