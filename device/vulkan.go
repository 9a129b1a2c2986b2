// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"

	"github.com/devblok/sandbox/core"
)

// Candidates enumerates the physical devices of an instance along with
// the name, feature and queue family information selection needs. The
// two-call enumeration protocol of the Vulkan API stays behind this
// function, callers only ever see the finished list.
func Candidates(instance vk.Instance) ([]Candidate, error) {
	devices, err := enumerateDevices(instance)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, len(devices))
	for i, dev := range devices {
		var features vk.PhysicalDeviceFeatures
		vk.GetPhysicalDeviceFeatures(dev, &features)
		features.Deref()

		var properties vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(dev, &properties)
		properties.Deref()

		candidates[i] = Candidate{
			Handle: dev,
			Name:   vk.ToString(properties.DeviceName[:]),
			Features: FeatureSet{
				GeometryShader:     features.GeometryShader == vk.True,
				TessellationShader: features.TessellationShader == vk.True,
			},
			QueueFamilies: queueFamilies(dev),
		}
	}
	return candidates, nil
}

func enumerateDevices(instance vk.Instance) ([]vk.PhysicalDevice, error) {
	var deviceCount uint32
	if res := vk.EnumeratePhysicalDevices(instance, &deviceCount, nil); res != vk.Success {
		return nil, core.ResultError("vk.EnumeratePhysicalDevices()", res)
	}
	availableDevices := make([]vk.PhysicalDevice, deviceCount)
	if res := vk.EnumeratePhysicalDevices(instance, &deviceCount, availableDevices); res != vk.Success {
		return nil, core.ResultError("vk.EnumeratePhysicalDevices()", res)
	}
	return availableDevices, nil
}

// queueFamilies reads the queue family table of a single device.
// The property query has no status code, it cannot fail.
func queueFamilies(dev vk.PhysicalDevice) []QueueFamily {
	var count uint32
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, nil)
	if count == 0 {
		return nil
	}
	properties := make([]vk.QueueFamilyProperties, count)
	vk.GetPhysicalDeviceQueueFamilyProperties(dev, &count, properties)

	families := make([]QueueFamily, count)
	for i := range properties {
		properties[i].Deref()
		families[i] = QueueFamily{
			Index:    i,
			Graphics: properties[i].QueueFlags&vk.QueueFlags(vk.QueueGraphicsBit) != 0,
			Compute:  properties[i].QueueFlags&vk.QueueFlags(vk.QueueComputeBit) != 0,
		}
	}
	return families
}

// Info builds an extended report for every physical device of the
// instance. A device that fails its own property queries is marked
// Invalid instead of failing the whole report.
func Info(instance vk.Instance) ([]PhysicalDeviceInfo, error) {
	devices, err := enumerateDevices(instance)
	if err != nil {
		return nil, err
	}

	pdi := make([]PhysicalDeviceInfo, len(devices))
	for i := 0; i < len(devices); i++ {
		// Get extension info
		var numDeviceExtensions uint32
		if res := vk.EnumerateDeviceExtensionProperties(devices[i], "", &numDeviceExtensions, nil); res != vk.Success {
			pdi[i].Invalid = true
		}
		deviceExt := make([]vk.ExtensionProperties, numDeviceExtensions)
		if res := vk.EnumerateDeviceExtensionProperties(devices[i], "", &numDeviceExtensions, deviceExt); res != vk.Success {
			pdi[i].Invalid = true
		}
		for _, ext := range deviceExt {
			ext.Deref()
			pdi[i].Extensions = append(pdi[i].Extensions, vk.ToString(ext.ExtensionName[:]))
		}

		// Get layers info
		var numDeviceLayers uint32
		if res := vk.EnumerateDeviceLayerProperties(devices[i], &numDeviceLayers, nil); res != vk.Success {
			pdi[i].Invalid = true
		}
		deviceLayers := make([]vk.LayerProperties, numDeviceLayers)
		if res := vk.EnumerateDeviceLayerProperties(devices[i], &numDeviceLayers, deviceLayers); res != vk.Success {
			pdi[i].Invalid = true
		}
		for _, layer := range deviceLayers {
			layer.Deref()
			pdi[i].Layers = append(pdi[i].Layers, vk.ToString(layer.LayerName[:]))
		}

		// Get memory info
		var memoryProperties vk.PhysicalDeviceMemoryProperties
		vk.GetPhysicalDeviceMemoryProperties(devices[i], &memoryProperties)
		memoryProperties.Deref()
		for iMem := (uint32)(0); iMem < memoryProperties.MemoryHeapCount; iMem++ {
			memoryProperties.MemoryHeaps[iMem].Deref()
			pdi[i].Memory = pdi[i].Memory + uint(memoryProperties.MemoryHeaps[iMem].Size)
		}

		// Get general device info
		var physicalDeviceProperties vk.PhysicalDeviceProperties
		vk.GetPhysicalDeviceProperties(devices[i], &physicalDeviceProperties)
		physicalDeviceProperties.Deref()
		pdi[i].ID = (int)(physicalDeviceProperties.DeviceID)
		pdi[i].VendorID = (int)(physicalDeviceProperties.VendorID)
		pdi[i].Name = vk.ToString(physicalDeviceProperties.DeviceName[:])
		pdi[i].DriverVersion = (int)(physicalDeviceProperties.DriverVersion)
	}
	return pdi, nil
}

// NewLogicalDevice creates the logical device for a selection with a
// single queue on the selected family and fetches the queue handle.
func NewLogicalDevice(sel Selection, cfg core.DeviceConfiguration) (*LogicalDevice, error) {
	if sel.Device == nil {
		return nil, ErrNoSuitableDevice
	}

	queueInfos := []vk.DeviceQueueCreateInfo{{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: uint32(sel.QueueFamilyIndex),
		QueueCount:       1,
		PQueuePriorities: []float32{cfg.QueuePriority},
	}}

	deviceInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		QueueCreateInfoCount:    uint32(len(queueInfos)),
		PQueueCreateInfos:       queueInfos,
		EnabledExtensionCount:   uint32(len(cfg.Extensions)),
		PpEnabledExtensionNames: safeStrings(cfg.Extensions),
		EnabledLayerCount:       uint32(len(cfg.Layers)),
		PpEnabledLayerNames:     safeStrings(cfg.Layers),
	}

	var dev vk.Device
	if res := vk.CreateDevice(sel.Device, &deviceInfo, nil, &dev); res != vk.Success {
		return nil, core.ResultError("vk.CreateDevice()", res)
	}

	var queue vk.Queue
	vk.GetDeviceQueue(dev, uint32(sel.QueueFamilyIndex), 0, &queue)

	return &LogicalDevice{
		selection: sel,
		device:    dev,
		queue:     queue,
	}, nil
}

// LogicalDevice wraps the created vk.Device and its single queue
type LogicalDevice struct {
	selection Selection

	device vk.Device
	queue  vk.Queue
}

// Inner returns the inner handle of the underlying API
func (d *LogicalDevice) Inner() vk.Device {
	return d.device
}

// Queue returns the queue created on the selected family
func (d *LogicalDevice) Queue() vk.Queue {
	return d.queue
}

// Selection returns the selection the device was built from
func (d *LogicalDevice) Selection() Selection {
	return d.selection
}

// Destroy implements interface. Waits for the device to go idle first,
// a nil or never-created device is a no-op.
func (d *LogicalDevice) Destroy() {
	if d == nil || d.device == nil {
		return
	}
	vk.DeviceWaitIdle(d.device)
	vk.DestroyDevice(d.device, nil)
	d.device = nil
}

func safeStrings(sgs []string) []string {
	safe := []string{}
	for _, s := range sgs {
		safe = append(safe, fmt.Sprintf("%s\x00", s))
	}
	return safe
}
