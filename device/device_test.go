// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import "testing"

func TestSuitable(t *testing.T) {
	all := FeatureSet{GeometryShader: true, TessellationShader: true}

	cases := []struct {
		name     string
		features FeatureSet
		family   QueueFamily
		want     bool
	}{
		{"all requirements met", all, QueueFamily{Graphics: true}, true},
		{"graphics and compute family", all, QueueFamily{Graphics: true, Compute: true}, true},
		{"missing tessellation", FeatureSet{GeometryShader: true}, QueueFamily{Graphics: true}, false},
		{"missing geometry", FeatureSet{TessellationShader: true}, QueueFamily{Graphics: true}, false},
		{"compute only family", all, QueueFamily{Compute: true}, false},
		{"no capabilities at all", FeatureSet{}, QueueFamily{}, false},
	}

	for _, tc := range cases {
		if got := Suitable(tc.features, tc.family); got != tc.want {
			t.Errorf("%s: Suitable() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestQueueFamilyString(t *testing.T) {
	family := QueueFamily{Index: 2, Graphics: true}
	want := "{ Index: 2 Graphics: true Compute: false }"
	if got := family.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
