package core

import (
	"unsafe"

	"github.com/sirupsen/logrus"
	vk "github.com/vulkan-go/vulkan"
)

// diagnosticsSink receives the formatted driver diagnostics. The callback
// is invoked from the loader, so the sink is a package-level value rather
// than a closure capture.
var diagnosticsSink logrus.FieldLogger = logrus.StandardLogger()

// SetDiagnosticsSink routes driver-emitted validation and performance
// messages into the given logger. Call it before creating an instance
// with validation enabled.
func SetDiagnosticsSink(sink logrus.FieldLogger) {
	if sink != nil {
		diagnosticsSink = sink
	}
}

// installDebugCallback registers the debug report callback for every
// severity and category the extension reports. The returned handle must
// be unregistered before the instance is destroyed.
func installDebugCallback(instance vk.Instance) (vk.DebugReportCallback, error) {
	createInfo := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportInformationBit |
			vk.DebugReportWarningBit |
			vk.DebugReportPerformanceWarningBit |
			vk.DebugReportErrorBit |
			vk.DebugReportDebugBit),
		PfnCallback: debugReportCallbackFunc,
	}

	var callback vk.DebugReportCallback
	if err := vk.Error(vk.CreateDebugReportCallback(instance, &createInfo, nil, &callback)); err != nil {
		return vk.NullDebugReportCallback, err
	}
	return callback, nil
}

// debugReportCallbackFunc formats each driver message as
// [severity][category] message and hands it to the sink. It never blocks
// the caller beyond the log write and never propagates a panic into the
// loader.
func debugReportCallbackFunc(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
	object uint64, location uint, messageCode int32, layerPrefix string,
	message string, userData unsafe.Pointer) vk.Bool32 {

	defer func() {
		_ = recover()
	}()

	category := "general"
	if layerPrefix != "" {
		category = layerPrefix
	}

	switch {
	case flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0:
		diagnosticsSink.Errorf("[error][%s] %s", category, message)
	case flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0:
		diagnosticsSink.Warnf("[warning][%s] %s", category, message)
	case flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0:
		diagnosticsSink.Warnf("[performance][%s] %s", category, message)
	case flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0:
		diagnosticsSink.Debugf("[debug][%s] %s", category, message)
	default:
		diagnosticsSink.Infof("[info][%s] %s", category, message)
	}
	return vk.Bool32(vk.False)
}
