// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import "github.com/cockroachdb/errors"

// ErrNoSuitableDevice is returned by Select when no device offers both
// shader features together with a graphics capable queue family.
var ErrNoSuitableDevice = errors.New("no suitable physical device found")

// Suitable reports whether a device feature set and one of its queue
// families satisfy the sandbox requirements: geometry and tessellation
// shader support on the device, the graphics bit on the family.
func Suitable(features FeatureSet, family QueueFamily) bool {
	return features.GeometryShader && features.TessellationShader && family.Graphics
}

// Select scans candidates in enumeration order and picks a device and
// queue family pair. Every qualifying pair overwrites the held result
// and the scan never breaks early, so the last qualifying pair in
// enumeration order wins. Select has no side effects on the devices.
func Select(candidates []Candidate) (Selection, error) {
	var (
		selection Selection
		found     bool
	)
	for _, candidate := range candidates {
		for _, family := range candidate.QueueFamilies {
			if !Suitable(candidate.Features, family) {
				continue
			}
			selection = Selection{
				Device:           candidate.Handle,
				Name:             candidate.Name,
				QueueFamilyIndex: family.Index,
			}
			found = true
		}
	}
	if !found {
		return Selection{}, ErrNoSuitableDevice
	}
	return selection, nil
}
