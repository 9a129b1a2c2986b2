// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"fmt"

	"github.com/cockroachdb/errors"
	vk "github.com/vulkan-go/vulkan"
)

// ResultDescription returns a human readable description
// for the given Vulkan result code.
func ResultDescription(result vk.Result) string {
	switch result {
	case vk.Success:
		return "Command successfully completed."
	case vk.Incomplete:
		return "A return array was too small for the result."
	case vk.ErrorOutOfHostMemory:
		return "A host memory allocation has failed."
	case vk.ErrorOutOfDeviceMemory:
		return "A device memory allocation has failed."
	case vk.ErrorInitializationFailed:
		return "Initialization of an object could not be completed."
	case vk.ErrorLayerNotPresent:
		return "A requested layer is not present or could not be loaded."
	case vk.ErrorExtensionNotPresent:
		return "A requested extension is not supported."
	case vk.ErrorIncompatibleDriver:
		return "The requested version of Vulkan is not supported by the driver."
	default:
		return fmt.Sprintf("An unknown result code [%d] occurred.", result)
	}
}

// ResultError converts a non-success result code into an error that
// names the failed call and carries the result description.
// A success code yields nil.
func ResultError(call string, result vk.Result) error {
	if result == vk.Success {
		return nil
	}
	return errors.Newf("%s: %s", call, ResultDescription(result))
}
