// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import "testing"

func TestSafeString(t *testing.T) {
	got := safeString("VK_KHR_surface")
	if got != "VK_KHR_surface\x00" {
		t.Errorf("safeString() = %q, missing terminator", got)
	}
}

func TestSafeStrings(t *testing.T) {
	got := safeStrings([]string{"VK_KHR_surface", "VK_KHR_swapchain"})
	if len(got) != 2 {
		t.Fatalf("safeStrings() returned %d entries, want 2", len(got))
	}
	for _, s := range got {
		if s[len(s)-1] != '\x00' {
			t.Errorf("safeStrings() entry %q is not null terminated", s)
		}
	}
}

func TestSafeStringsEmpty(t *testing.T) {
	if got := safeStrings(nil); got == nil || len(got) != 0 {
		t.Errorf("safeStrings(nil) = %v, want empty non-nil slice", got)
	}
}
