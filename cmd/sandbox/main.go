// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command sandbox brings up the full Vulkan stack inside an SDL window:
// instance, physical device and queue family selection, logical device
// and window surface. It draws nothing, the point is the bring-up and
// the teardown.
package main

import (
	"flag"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/loov/hrtime"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/sandbox/core"
	"github.com/devblok/sandbox/device"
)

func init() {
	runtime.LockOSThread()
}

var debug = flag.Bool("vkdbg", false, "Load Vulkan validation layers")

func main() {
	flag.Parse()
	godotenv.Load()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run owns the whole lifecycle. Every resource is released through a
// defer planted right after its creation succeeded, so a failure at
// any stage only unwinds what actually exists.
func run() error {
	configuration := core.ConfigurationFromEnv()
	if *debug {
		configuration.Instance.DebugMode = true
	}

	start := hrtime.Now()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "sdl.Init()")
	}
	defer sdl.Quit()

	if err := sdl.VulkanLoadLibrary(""); err != nil {
		return errors.Wrap(err, "sdl.VulkanLoadLibrary()")
	}
	defer sdl.VulkanUnloadLibrary()

	window, err := newWindow(configuration.App)
	if err != nil {
		return errors.Wrap(err, "sdl.CreateWindow()")
	}
	defer window.Destroy()

	configuration.Instance.Extensions = window.VulkanGetInstanceExtensions()

	vkInstance, err := core.NewVulkanInstance(
		core.DefaultVulkanApplicationInfo,
		sdl.VulkanGetVkGetInstanceProcAddr(),
		configuration.Instance)
	if err != nil {
		return errors.Wrap(err, "core.NewVulkanInstance()")
	}
	defer vkInstance.Destroy()

	logSupport(vkInstance)

	candidates, err := device.Candidates(vkInstance.Inner())
	if err != nil {
		return errors.Wrap(err, "device.Candidates()")
	}
	logCandidates(candidates)

	selection, err := device.Select(candidates)
	if err != nil {
		return errors.Wrap(err, "device.Select()")
	}
	log.Infof("selected physical device %s, queue family %d", selection.Name, selection.QueueFamilyIndex)

	logicalDevice, err := device.NewLogicalDevice(selection, configuration.Device)
	if err != nil {
		return errors.Wrap(err, "device.NewLogicalDevice()")
	}
	defer logicalDevice.Destroy()

	surface, err := window.VulkanCreateSurface(vkInstance.Inner())
	if err != nil {
		return errors.Wrap(err, "sdl.VulkanCreateSurface()")
	}
	// Released together with the instance.
	vkInstance.SetSurface(surface)

	log.Infof("vulkan ready in %s", hrtime.Since(start))

	eventLoop()
	return nil
}

func newWindow(cfg core.AppConfiguration) (*sdl.Window, error) {
	return sdl.CreateWindow(cfg.Name,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.ScreenWidth),
		int32(cfg.ScreenHeight),
		sdl.WINDOW_VULKAN)
}

func logSupport(instance core.Instance) {
	if layers, err := instance.SupportedLayers(); err != nil {
		log.Warnf("layer enumeration failed: %s", err)
	} else {
		log.Infof("found %d supported Vulkan layer(s): %v", len(layers), layers)
	}

	if extensions, err := instance.SupportedExtensions(); err != nil {
		log.Warnf("extension enumeration failed: %s", err)
	} else {
		log.Infof("found %d supported Vulkan extension(s): %v", len(extensions), extensions)
	}
}

func logCandidates(candidates []device.Candidate) {
	log.Infof("vulkan reports %d physical device(s)", len(candidates))
	for _, candidate := range candidates {
		log.WithFields(log.Fields{
			"geometryShader":     candidate.Features.GeometryShader,
			"tessellationShader": candidate.Features.TessellationShader,
		}).Infof("physical device %s", candidate.Name)
		for _, family := range candidate.QueueFamilies {
			log.WithFields(log.Fields{
				"graphics": family.Graphics,
				"compute":  family.Compute,
			}).Infof("queue family %d", family.Index)
		}
	}
}

func eventLoop() {
	for {
		event := sdl.WaitEvent()
		if event == nil {
			continue
		}
		switch et := event.(type) {
		case *sdl.KeyboardEvent:
			if et.Keysym.Sym == sdl.K_ESCAPE {
				log.Println("Event loop exited")
				return
			}
		case *sdl.QuitEvent:
			log.Println("Event loop exited")
			return
		}
	}
}
