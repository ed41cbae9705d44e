package core

import (
	"errors"
	"strings"
	"testing"
)

func TestSwapchainImageCount(t *testing.T) {
	cases := []struct {
		min, max  uint32
		requested uint32
		expected  uint32
	}{
		{min: 1, max: 1, requested: 3, expected: 1},
		{min: 4, max: 8, requested: 3, expected: 4},
		{min: 1, max: 0, requested: 3, expected: 3},
		{min: 2, max: 8, requested: 10, expected: 8},
		{min: 3, max: 3, requested: 3, expected: 3},
	}
	for _, c := range cases {
		caps := SurfaceCapabilities{MinImageCount: c.min, MaxImageCount: c.max}
		if got := swapchainImageCount(caps, c.requested); got != c.expected {
			t.Errorf("clamp(%d..%d, %d): expected %d, got %d", c.min, c.max, c.requested, c.expected, got)
		}
	}
}

func TestCreateSurfaceResourcesNegotiation(t *testing.T) {
	f := newFakeDriver()
	f.formats = []SurfaceFormat{
		{Format: 37, ColorSpace: 0},
		{Format: FormatB8G8R8A8Unorm, ColorSpace: 0},
	}
	f.modes = []PresentMode{1, 0, PresentModeFifo}
	f.caps = SurfaceCapabilities{MinImageCount: 2, MaxImageCount: 8, CurrentExtent: Extent2D{Width: 1280, Height: 720}}
	f.imageCount = 4

	resources, err := createSurfaceResources(f, fakeHandle{}, fakeHandle{}, fakeHandle{}, QueueFamilyIndices{}, 3)
	if err != nil {
		t.Fatal(err)
	}

	if resources.Format != f.formats[0] {
		t.Errorf("expected the first reported format, got %+v", resources.Format)
	}
	if f.swapchainCfg.PresentMode != PresentModeFifo {
		t.Errorf("expected fifo presentation, got %d", f.swapchainCfg.PresentMode)
	}
	if f.swapchainCfg.MinImageCount != 3 {
		t.Errorf("expected 3 images requested, got %d", f.swapchainCfg.MinImageCount)
	}
	if resources.Extent != f.caps.CurrentExtent {
		t.Errorf("expected the surface-reported extent, got %+v", resources.Extent)
	}
	if len(resources.ImageViews) != len(resources.Images) {
		t.Errorf("expected one view per image, got %d views for %d images",
			len(resources.ImageViews), len(resources.Images))
	}
	for i, format := range f.viewFormats {
		if format != FormatB8G8R8A8Unorm {
			t.Errorf("view %d created with format %d", i, format)
		}
	}
}

func TestCreateSurfaceResourcesNoFormats(t *testing.T) {
	f := newFakeDriver()
	f.formats = nil

	_, err := createSurfaceResources(f, fakeHandle{}, fakeHandle{}, fakeHandle{}, QueueFamilyIndices{}, 3)
	if !errors.Is(err, ErrNoSurfaceFormat) {
		t.Fatalf("expected ErrNoSurfaceFormat, got %v", err)
	}
	if f.created["swapchain"] != 0 {
		t.Error("no swapchain may be created when negotiation fails")
	}
}

func TestCreateSurfaceResourcesNoPresentModes(t *testing.T) {
	f := newFakeDriver()
	f.modes = nil

	_, err := createSurfaceResources(f, fakeHandle{}, fakeHandle{}, fakeHandle{}, QueueFamilyIndices{}, 3)
	if !errors.Is(err, ErrNoPresentMode) {
		t.Fatalf("expected ErrNoPresentMode, got %v", err)
	}
	if f.created["swapchain"] != 0 {
		t.Error("no swapchain may be created when negotiation fails")
	}
}

func TestCreateSurfaceResourcesViewFailureUnwinds(t *testing.T) {
	f := newFakeDriver()
	f.imageCount = 4
	f.failOn["CreateImageView"] = 3

	_, err := createSurfaceResources(f, fakeHandle{}, fakeHandle{}, fakeHandle{}, QueueFamilyIndices{}, 3)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "image 2") {
		t.Errorf("error should name the failing image, got %q", err)
	}
	if f.totalLive() != 0 {
		t.Errorf("expected no live handles after unwind, got %v", f.live)
	}
}
