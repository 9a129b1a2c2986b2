// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core_test

import (
	"testing"

	"github.com/gobuffalo/envy"

	"github.com/devblok/sandbox/core"
)

func TestConfigurationFromEnvDefaults(t *testing.T) {
	envy.Temp(func() {
		cfg := core.ConfigurationFromEnv()

		if cfg.App.ScreenWidth != 800 || cfg.App.ScreenHeight != 600 {
			t.Errorf("unexpected default window size %dx%d", cfg.App.ScreenWidth, cfg.App.ScreenHeight)
		}
		if cfg.Instance.DebugMode {
			t.Error("debug mode should default to off")
		}
		if cfg.Device.QueuePriority != 1.0 {
			t.Errorf("queue priority = %v, want 1.0", cfg.Device.QueuePriority)
		}
	})
}

func TestConfigurationFromEnvOverrides(t *testing.T) {
	envy.Temp(func() {
		envy.Set("SANDBOX_SCREEN_WIDTH", "1280")
		envy.Set("SANDBOX_SCREEN_HEIGHT", "720")
		envy.Set("SANDBOX_DEBUG", "true")
		envy.Set("SANDBOX_WINDOW_TITLE", "testbed")

		cfg := core.ConfigurationFromEnv()

		if cfg.App.ScreenWidth != 1280 || cfg.App.ScreenHeight != 720 {
			t.Errorf("unexpected window size %dx%d", cfg.App.ScreenWidth, cfg.App.ScreenHeight)
		}
		if !cfg.Instance.DebugMode {
			t.Error("debug mode should have been enabled")
		}
		if cfg.App.Name != "testbed" {
			t.Errorf("window title = %q, want %q", cfg.App.Name, "testbed")
		}
	})
}

func TestConfigurationFromEnvBadValues(t *testing.T) {
	envy.Temp(func() {
		envy.Set("SANDBOX_SCREEN_WIDTH", "not-a-number")
		envy.Set("SANDBOX_DEBUG", "maybe")

		cfg := core.ConfigurationFromEnv()

		if cfg.App.ScreenWidth != 800 {
			t.Errorf("width = %d, want the default on a bad value", cfg.App.ScreenWidth)
		}
		if cfg.Instance.DebugMode {
			t.Error("debug mode should fall back to off on a bad value")
		}
	})
}
