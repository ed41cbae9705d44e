package core

import "errors"

// Selection errors. All of them mean the host machine cannot run this
// renderer at all; none of them is retried.
var (
	ErrNoPhysicalDevice = errors.New("no rendering capable physical device present")
	ErrNoGraphicsFamily = errors.New("no queue family with graphics and presentation support")
	ErrNoTransferFamily = errors.New("no queue family with transfer support")
)

// QueueFamilyIndices identifies the two queue families the renderer
// submits to. The indices are allowed to coincide: a fair amount of
// hardware exposes a single combined family, and requiring distinct
// families would lock that hardware out. The cost of a shared family is
// that graphics and transfer submissions serialize on the same queue.
type QueueFamilyIndices struct {
	Graphics uint32
	Transfer uint32
}

// selectPhysicalDevice picks the device the renderer runs on. The first
// enumerated device is used; there is no scoring between adapters.
func selectPhysicalDevice(d Driver) (PhysicalDeviceHandle, error) {
	devices, err := d.PhysicalDevices()
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrNoPhysicalDevice
	}
	return devices[0], nil
}

// selectQueueFamilies walks the device's queue families once and picks,
// independently for each role, the first family satisfying that role's
// predicate. Graphics additionally requires presentation support for the
// target surface; transfer only needs the transfer capability bit.
func selectQueueFamilies(d Driver, phys PhysicalDeviceHandle, surface SurfaceHandle) (QueueFamilyIndices, error) {
	families, err := d.QueueFamilies(phys)
	if err != nil {
		return QueueFamilyIndices{}, err
	}

	var (
		graphics      uint32
		transfer      uint32
		graphicsFound bool
		transferFound bool
	)
	for i, family := range families {
		index := uint32(i)
		if !graphicsFound && family.QueueCount > 0 && family.Graphics {
			supported, err := d.SurfaceSupport(phys, index, surface)
			if err != nil {
				return QueueFamilyIndices{}, err
			}
			if supported {
				graphics = index
				graphicsFound = true
			}
		}
		if !transferFound && family.QueueCount > 0 && family.Transfer {
			transfer = index
			transferFound = true
		}
	}

	if !graphicsFound {
		return QueueFamilyIndices{}, ErrNoGraphicsFamily
	}
	if !transferFound {
		return QueueFamilyIndices{}, ErrNoTransferFamily
	}
	return QueueFamilyIndices{Graphics: graphics, Transfer: transfer}, nil
}
