package core

import (
	"errors"
	"fmt"
)

// Surface negotiation errors. An empty reported set is a hard environment
// incompatibility, never substituted with a guessed value.
var (
	ErrNoSurfaceFormat = errors.New("surface reports no supported formats")
	ErrNoPresentMode   = errors.New("surface reports no present modes")
)

// swapchainViewFormat is the fixed presentation-compatible format every
// swapchain image view is created with.
const swapchainViewFormat = FormatB8G8R8A8Unorm

// SurfaceResources owns the swapchain and its per-image views. The images
// themselves belong to the swapchain and are never destroyed individually.
// View order matches the order images were returned; framebuffers are
// built one-to-one by position.
type SurfaceResources struct {
	Swapchain  SwapchainHandle
	Images     []ImageHandle
	ImageViews []ImageViewHandle
	Format     SurfaceFormat
	Extent     Extent2D
}

// chooseSurfaceFormat takes the first format/color-space pair the surface
// reports.
func chooseSurfaceFormat(formats []SurfaceFormat) (SurfaceFormat, error) {
	if len(formats) == 0 {
		return SurfaceFormat{}, ErrNoSurfaceFormat
	}
	return formats[0], nil
}

// choosePresentMode takes the first reported mode. Note that swapchain
// creation pins the mode to FIFO regardless of what was negotiated; vsync
// pacing is the active behavior, the negotiated value is advisory only.
func choosePresentMode(modes []PresentMode) (PresentMode, error) {
	if len(modes) == 0 {
		return 0, ErrNoPresentMode
	}
	return modes[0], nil
}

// swapchainImageCount clamps the requested image count into the
// hardware-reported bounds. A reported max of zero means unbounded.
func swapchainImageCount(caps SurfaceCapabilities, requested uint32) uint32 {
	count := requested
	if count < caps.MinImageCount {
		count = caps.MinImageCount
	}
	if caps.MaxImageCount > 0 && count > caps.MaxImageCount {
		count = caps.MaxImageCount
	}
	return count
}

// createSurfaceResources negotiates the swapchain parameters against what
// the surface reports, creates the swapchain and one 2-D color view per
// swapchain image. On any mid-sequence failure everything created inside
// this call is destroyed before the error is returned.
func createSurfaceResources(d Driver, phys PhysicalDeviceHandle, device DeviceHandle, surface SurfaceHandle, indices QueueFamilyIndices, requestedImages uint32) (*SurfaceResources, error) {
	formats, err := d.SurfaceFormats(phys, surface)
	if err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfaceFormats(): %w", err)
	}
	format, err := chooseSurfaceFormat(formats)
	if err != nil {
		return nil, err
	}

	modes, err := d.SurfacePresentModes(phys, surface)
	if err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfacePresentModes(): %w", err)
	}
	if _, err := choosePresentMode(modes); err != nil {
		return nil, err
	}

	caps, err := d.SurfaceCapabilities(phys, surface)
	if err != nil {
		return nil, fmt.Errorf("vk.GetPhysicalDeviceSurfaceCapabilities(): %w", err)
	}

	swapchain, err := d.CreateSwapchain(device, SwapchainConfig{
		Surface:       surface,
		MinImageCount: swapchainImageCount(caps, requestedImages),
		Format:        format,
		// The surface-reported extent is used verbatim.
		Extent:         caps.CurrentExtent,
		PresentMode:    PresentModeFifo,
		GraphicsFamily: indices.Graphics,
	})
	if err != nil {
		return nil, fmt.Errorf("vk.CreateSwapchain(): %w", err)
	}

	images, err := d.SwapchainImages(device, swapchain)
	if err != nil {
		d.DestroySwapchain(device, swapchain)
		return nil, fmt.Errorf("vk.GetSwapchainImages(): %w", err)
	}

	views := make([]ImageViewHandle, 0, len(images))
	for i, image := range images {
		view, err := d.CreateImageView(device, image, swapchainViewFormat)
		if err != nil {
			for _, created := range views {
				d.DestroyImageView(device, created)
			}
			d.DestroySwapchain(device, swapchain)
			return nil, fmt.Errorf("vk.CreateImageView() for image %d: %w", i, err)
		}
		views = append(views, view)
	}

	return &SurfaceResources{
		Swapchain:  swapchain,
		Images:     images,
		ImageViews: views,
		Format:     format,
		Extent:     caps.CurrentExtent,
	}, nil
}
