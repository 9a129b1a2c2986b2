// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package core manages the Vulkan instance lifecycle of the sandbox:
// loader setup, layer and extension discovery, instance creation and
// teardown. Physical device discovery and selection live in the
// device package.
package core

import (
	"unsafe"

	vk "github.com/vulkan-go/vulkan"
)

// Destroyable is anything that owns native resources
// which have to be released explicitly.
type Destroyable interface {

	// Destroy destroys internal members
	Destroy()
}

// Instance describes a Vulkan instance and supporting methods.
// Once created it is ready to use.
type Instance interface {
	Destroyable

	// SupportedLayers returns the names of the validation layers
	// the Vulkan runtime reports as available
	SupportedLayers() ([]string, error)

	// SupportedExtensions returns the names of the instance
	// extensions the Vulkan runtime reports as available
	SupportedExtensions() ([]string, error)

	// SetSurface sets the window surface for rendering
	SetSurface(unsafe.Pointer)

	// Surface returns the window surface, if it's not set
	// it returns a valid but empty surface
	Surface() vk.Surface

	// Inner returns the inner handle of the underlying API
	Inner() vk.Instance
}
