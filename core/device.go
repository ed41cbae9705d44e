package core

import "fmt"

// Queues holds the per-role queue handles retrieved from the logical
// device. The handles are weak references into the device and stay valid
// only while the device lives.
type Queues struct {
	Graphics QueueHandle
	Transfer QueueHandle
}

// createLogicalDevice opens a logical device against the selected physical
// device with one queue per selected family and the swapchain extension
// (plus any configured platform-compatibility extensions) enabled. A
// rejected extension set or queue configuration is fatal; there is no
// degraded fallback. Queue handles are fetched at index zero of each
// family right after creation.
func createLogicalDevice(d Driver, phys PhysicalDeviceHandle, indices QueueFamilyIndices, extensions []string) (DeviceHandle, Queues, error) {
	families := []uint32{indices.Graphics}
	if indices.Transfer != indices.Graphics {
		// Drivers reject duplicate queue-create entries for one family.
		families = append(families, indices.Transfer)
	}

	device, err := d.CreateDevice(phys, families, extensions)
	if err != nil {
		return nil, Queues{}, fmt.Errorf("vk.CreateDevice(): %w", err)
	}

	queues := Queues{
		Graphics: d.DeviceQueue(device, indices.Graphics),
		Transfer: d.DeviceQueue(device, indices.Transfer),
	}
	return device, queues, nil
}
