package core

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateCommandResources(t *testing.T) {
	f := newFakeDriver()

	resources, err := createCommandResources(f, fakeHandle{}, QueueFamilyIndices{Graphics: 0, Transfer: 0}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if f.created["command pool"] != 2 {
		t.Errorf("expected two pools even for a shared family, got %d", f.created["command pool"])
	}
	if len(resources.Buffers) != 3 {
		t.Errorf("expected one buffer per framebuffer, got %d", len(resources.Buffers))
	}
}

func TestCreateCommandResourcesPoolFailureUnwinds(t *testing.T) {
	f := newFakeDriver()
	f.failOn["CreateCommandPool"] = 2

	if _, err := createCommandResources(f, fakeHandle{}, QueueFamilyIndices{}, 3); err == nil {
		t.Fatal("expected an error")
	}
	if f.totalLive() != 0 {
		t.Errorf("expected no live handles after unwind, got %v", f.live)
	}
}

func TestRecordCommandBuffersSequence(t *testing.T) {
	f := newFakeDriver()
	buffers := []CommandBufferHandle{fakeHandle{id: 1}, fakeHandle{id: 2}}
	framebuffers := []FramebufferHandle{fakeHandle{id: 3}, fakeHandle{id: 4}}

	err := recordCommandBuffers(f, buffers, fakeHandle{}, framebuffers, fakeHandle{}, Extent2D{}, mgl32.Vec4{})
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		"BeginCommandBuffer", "CmdBeginRenderPass", "CmdBindPipeline",
		"CmdDraw", "CmdEndRenderPass", "EndCommandBuffer",
		"BeginCommandBuffer", "CmdBeginRenderPass", "CmdBindPipeline",
		"CmdDraw", "CmdEndRenderPass", "EndCommandBuffer",
	}
	if len(f.journal) != len(expected) {
		t.Fatalf("expected %d calls, got %d: %v", len(expected), len(f.journal), f.journal)
	}
	for i, name := range expected {
		if f.journal[i] != name {
			t.Errorf("call %d: expected %s, got %s", i, name, f.journal[i])
		}
	}

	for i, draw := range f.draws {
		if draw != [2]uint32{1, 1} {
			t.Errorf("draw %d: expected a single vertex and instance, got %v", i, draw)
		}
	}
}

func TestRecordCommandBuffersFailureNamesBuffer(t *testing.T) {
	f := newFakeDriver()
	f.failOn["EndCommandBuffer"] = 2
	buffers := []CommandBufferHandle{fakeHandle{id: 1}, fakeHandle{id: 2}, fakeHandle{id: 3}}
	framebuffers := []FramebufferHandle{fakeHandle{id: 4}, fakeHandle{id: 5}, fakeHandle{id: 6}}

	err := recordCommandBuffers(f, buffers, fakeHandle{}, framebuffers, fakeHandle{}, Extent2D{}, mgl32.Vec4{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "[1]") {
		t.Errorf("error should name the failing buffer index, got %q", err)
	}
}
