// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package device implements physical device discovery and selection on
// top of a Vulkan instance, and the creation of a logical device from
// the selection.
package device

import (
	"fmt"

	vk "github.com/vulkan-go/vulkan"
)

// FeatureSet holds the physical device feature flags
// the selection predicate inspects.
type FeatureSet struct {
	GeometryShader     bool `json:"geometryShader"`
	TessellationShader bool `json:"tessellationShader"`
}

// QueueFamily describes a single queue family of a physical device.
// Index is the position of the family in the device's enumeration.
type QueueFamily struct {
	Index    int  `json:"index"`
	Graphics bool `json:"graphics"`
	Compute  bool `json:"compute"`
}

func (q QueueFamily) String() string {
	return fmt.Sprintf("{ Index: %d Graphics: %v Compute: %v }", q.Index, q.Graphics, q.Compute)
}

// Candidate is one physical device up for selection. It does not own
// the underlying handle, the instance does. Candidates are enumerated
// fresh on every selection pass.
type Candidate struct {
	Handle vk.PhysicalDevice `json:"-"`

	Name          string        `json:"name"`
	Features      FeatureSet    `json:"features"`
	QueueFamilies []QueueFamily `json:"queueFamilies"`
}

// Selection is the chosen device and queue family pair. It is computed
// once at startup and held for the remainder of the process.
type Selection struct {
	Device vk.PhysicalDevice `json:"-"`

	Name             string `json:"name"`
	QueueFamilyIndex int    `json:"queueFamilyIndex"`
}

// PhysicalDeviceInfo describes available physical properties of a rendering device
type PhysicalDeviceInfo struct {
	ID            int      `json:"id"`
	VendorID      int      `json:"vendorId"`
	DriverVersion int      `json:"driverVersion"`
	Name          string   `json:"name"`
	Invalid       bool     `json:"invalid"`
	Extensions    []string `json:"extensions"`
	Layers        []string `json:"layers"`
	Memory        uint     `json:"memory"`
}
