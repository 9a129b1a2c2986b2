// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package core

import (
	"strconv"

	"github.com/gobuffalo/envy"
)

// Configuration defines a global sandbox configuration setting
type Configuration struct {
	App      AppConfiguration
	Instance InstanceConfiguration
	Device   DeviceConfiguration
}

// AppConfiguration is used to configure the application window
type AppConfiguration struct {
	Name string

	ScreenWidth  uint32
	ScreenHeight uint32
}

// InstanceConfiguration is used to configure the Vulkan instance.
// DebugMode appends the standard validation layer and the debug
// report extension on top of whatever is already listed.
type InstanceConfiguration struct {
	DebugMode bool

	Extensions []string
	Layers     []string
}

// DeviceConfiguration is used to configure the logical device
type DeviceConfiguration struct {
	Extensions []string
	Layers     []string

	// QueuePriority is handed to the single queue created
	// on the selected queue family
	QueuePriority float32
}

// ConfigurationFromEnv assembles a Configuration from SANDBOX_*
// environment variables, falling back to built-in defaults for
// anything unset. A .env file in the working directory is honoured.
func ConfigurationFromEnv() Configuration {
	return Configuration{
		App: AppConfiguration{
			Name:         envy.Get("SANDBOX_WINDOW_TITLE", "Vulkan Sandbox"),
			ScreenWidth:  envUint32("SANDBOX_SCREEN_WIDTH", 800),
			ScreenHeight: envUint32("SANDBOX_SCREEN_HEIGHT", 600),
		},
		Instance: InstanceConfiguration{
			DebugMode: envBool("SANDBOX_DEBUG", false),
		},
		Device: DeviceConfiguration{
			QueuePriority: 1.0,
		},
	}
}

func envUint32(key string, def uint32) uint32 {
	parsed, err := strconv.ParseUint(envy.Get(key, strconv.FormatUint(uint64(def), 10)), 10, 32)
	if err != nil {
		return def
	}
	return uint32(parsed)
}

func envBool(key string, def bool) bool {
	parsed, err := strconv.ParseBool(envy.Get(key, strconv.FormatBool(def)))
	if err != nil {
		return def
	}
	return parsed
}
