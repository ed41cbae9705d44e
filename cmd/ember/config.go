package main

import (
	"strconv"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"

	"github.com/ember3d/ember/core"
)

// Environment keys understood by the binary. A .env file in the working
// directory is loaded first, explicit environment variables win.
const (
	envScreenWidth     = "EMBER_SCREEN_WIDTH"
	envScreenHeight    = "EMBER_SCREEN_HEIGHT"
	envSwapchainSize   = "EMBER_SWAPCHAIN_SIZE"
	envFramesPerSecond = "EMBER_FPS"
	envValidation      = "EMBER_VALIDATION"
	envShaderDirectory = "EMBER_SHADER_DIR"
	envShaderArchive   = "EMBER_SHADER_ARCHIVE"
)

func loadConfiguration() core.Configuration {
	godotenv.Load()

	return core.Configuration{
		Instance: core.InstanceConfiguration{
			ApplicationName:   "Ember",
			EngineName:        "Ember",
			EnabledValidation: envBool(envValidation, false),
		},
		Time: core.TimeConfiguration{
			FramesPerSecond: int(envUint(envFramesPerSecond, 60)),
		},
		Renderer: core.RendererConfiguration{
			ScreenWidth:   envUint(envScreenWidth, 800),
			ScreenHeight:  envUint(envScreenHeight, 600),
			SwapchainSize: envUint(envSwapchainSize, 3),
			DeviceExtensions: []string{
				"VK_KHR_swapchain",
			},
			ClearColor:      core.DefaultClearColor,
			ShaderDirectory: envy.Get(envShaderDirectory, "./shaders"),
			ShaderArchive:   envy.Get(envShaderArchive, ""),
		},
	}
}

func envUint(key string, fallback uint32) uint32 {
	value, err := strconv.ParseUint(envy.Get(key, ""), 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(value)
}

func envBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(envy.Get(key, ""))
	if err != nil {
		return fallback
	}
	return value
}
