package main

import (
	"runtime"
	"unsafe"

	"github.com/gobuffalo/packr"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ember3d/ember/core"
)

func init() {
	runtime.LockOSThread()
}

// Essential globals
var (
	vkInstance core.Instance
	vkRenderer core.Renderer
	sdlWindow  *sdl.Window
	sdlSurface unsafe.Pointer

	shaderBox = packr.NewBox("./shaders")
)

var configuration = loadConfiguration()

func newWindow() *sdl.Window {
	window, err := sdl.CreateWindow("Ember",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(configuration.Renderer.ScreenWidth),
		int32(configuration.Renderer.ScreenHeight),
		sdl.WINDOW_VULKAN)
	if err != nil {
		log.Fatal(err)
	}
	return window
}

// bundledShaders fills the shader blobs from the binary-embedded box
// when present, leaving archive and directory loading as fallbacks.
func bundledShaders(cfg *core.RendererConfiguration) {
	vert, vertErr := shaderBox.Find("default.vert.spv")
	frag, fragErr := shaderBox.Find("default.frag.spv")
	if vertErr != nil || fragErr != nil {
		return
	}
	cfg.VertexShader = vert
	cfg.FragmentShader = frag
}

func main() {
	core.SetDiagnosticsSink(log.StandardLogger())
	bundledShaders(&configuration.Renderer)

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		log.Fatal(err)
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		log.Fatal(err)
	}
	defer sdl.VulkanUnloadLibrary()

	sdlWindow = newWindow()
	defer sdlWindow.Destroy()

	{
		cfg := configuration.Instance
		cfg.Extensions = sdlWindow.VulkanGetInstanceExtensions()

		vi, err := core.NewVulkanInstance(cfg, sdl.VulkanGetVkGetInstanceProcAddr())
		if err != nil {
			log.Fatal(err)
		}
		vkInstance = vi
	}

	if srf, err := sdlWindow.VulkanCreateSurface(vkInstance.Instance()); err != nil {
		log.Fatal(err)
	} else {
		sdlSurface = srf
		vkInstance.SetSurface(sdlSurface)
	}

	for _, pdi := range vkInstance.PhysicalDevicesInfo() {
		log.Info(pdi.String())
	}

	var rendererErr error
	vkRenderer, rendererErr = core.NewVulkanRenderer(vkInstance, configuration.Renderer)
	if rendererErr != nil {
		log.Fatal(rendererErr)
	}

	deviceUsed := vkInstance.AvailableDevices()[0]
	if suitable, reason := vkRenderer.DeviceIsSuitable(deviceUsed); !suitable {
		log.Fatal(reason)
	}

	if err := vkRenderer.Initialise(); err != nil {
		log.Fatal(err)
	}
	log.Infof("recorded %d command buffers", len(vkRenderer.CommandBuffers()))

	time := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-time.FpsTicker().C:
			var event sdl.Event
			for event = sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		}
	}

	time.Stop()
	vkRenderer.Destroy()
	vkInstance.Destroy()
}
