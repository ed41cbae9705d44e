// Package device carries descriptions of physical rendering devices in a
// form that can be logged or shown to a user without touching the API
// that produced them.
package device

import "fmt"

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int
	VendorID      int
	DriverVersion int
	Name          string
	Invalid       bool
	Extensions    []string
	Layers        []string
	Memory        uint
}

// Vendor resolves the PCI vendor identifier to a human readable name.
func (pdi PhysicalDeviceInfo) Vendor() string {
	switch pdi.VendorID {
	case 0x1002:
		return "AMD"
	case 0x10DE:
		return "NVIDIA"
	case 0x8086:
		return "Intel"
	case 0x13B5:
		return "ARM"
	case 0x5143:
		return "Qualcomm"
	case 0x1010:
		return "ImgTec"
	default:
		return fmt.Sprintf("unknown (0x%04X)", pdi.VendorID)
	}
}

func (pdi PhysicalDeviceInfo) String() string {
	if pdi.Invalid {
		return fmt.Sprintf("%s (%s): enumeration incomplete", pdi.Name, pdi.Vendor())
	}
	return fmt.Sprintf("%s (%s): driver %d, %d MiB, %d extensions, %d layers",
		pdi.Name, pdi.Vendor(), pdi.DriverVersion, pdi.Memory/(1024*1024),
		len(pdi.Extensions), len(pdi.Layers))
}
