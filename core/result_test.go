// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strings"
	"testing"

	vk "github.com/vulkan-go/vulkan"
)

func TestResultDescription(t *testing.T) {
	cases := []struct {
		result vk.Result
		want   string
	}{
		{vk.Success, "Command successfully completed."},
		{vk.Incomplete, "A return array was too small for the result."},
		{vk.ErrorOutOfHostMemory, "A host memory allocation has failed."},
		{vk.ErrorOutOfDeviceMemory, "A device memory allocation has failed."},
		{vk.ErrorInitializationFailed, "Initialization of an object could not be completed."},
		{vk.ErrorLayerNotPresent, "A requested layer is not present or could not be loaded."},
		{vk.ErrorExtensionNotPresent, "A requested extension is not supported."},
		{vk.ErrorIncompatibleDriver, "The requested version of Vulkan is not supported by the driver."},
	}

	for _, tc := range cases {
		if got := ResultDescription(tc.result); got != tc.want {
			t.Errorf("ResultDescription(%d) = %q, want %q", tc.result, got, tc.want)
		}
	}
}

func TestResultDescriptionUnknown(t *testing.T) {
	got := ResultDescription(vk.ErrorDeviceLost)
	if !strings.Contains(got, "unknown result code") {
		t.Errorf("ResultDescription() = %q, expected the unknown code fallback", got)
	}
}

func TestResultError(t *testing.T) {
	if err := ResultError("vk.CreateInstance()", vk.Success); err != nil {
		t.Errorf("ResultError() on success = %v, want nil", err)
	}

	err := ResultError("vk.CreateInstance()", vk.ErrorIncompatibleDriver)
	if err == nil {
		t.Fatal("ResultError() on failure = nil, want error")
	}
	if !strings.Contains(err.Error(), "vk.CreateInstance()") {
		t.Errorf("ResultError() = %q, expected the call name in the message", err)
	}
	if !strings.Contains(err.Error(), "not supported by the driver") {
		t.Errorf("ResultError() = %q, expected the result description in the message", err)
	}
}
