// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command sandboxinfo inspects the Vulkan runtime without opening a
// window: validation layers, instance extensions, physical devices,
// their queue families and the device the sandbox would select.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xlab/tablewriter"

	"github.com/devblok/sandbox/core"
	"github.com/devblok/sandbox/device"
)

var asJSON = flag.Bool("json", false, "Dump the report as JSON")

type report struct {
	Layers     []string                    `json:"layers"`
	Extensions []string                    `json:"extensions"`
	Devices    []device.PhysicalDeviceInfo `json:"devices"`
	Candidates []device.Candidate          `json:"candidates"`
	Selection  *device.Selection           `json:"selection,omitempty"`
}

func main() {
	flag.Parse()

	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(out io.Writer) error {
	instance, err := core.NewVulkanInstance(core.DefaultVulkanApplicationInfo, nil, core.InstanceConfiguration{})
	if err != nil {
		return errors.Wrap(err, "core.NewVulkanInstance()")
	}
	defer instance.Destroy()

	rep, err := buildReport(instance)
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	render(out, rep)
	return nil
}

func buildReport(instance core.Instance) (report, error) {
	var rep report
	var err error

	if rep.Layers, err = instance.SupportedLayers(); err != nil {
		return rep, err
	}
	if rep.Extensions, err = instance.SupportedExtensions(); err != nil {
		return rep, err
	}
	if rep.Devices, err = device.Info(instance.Inner()); err != nil {
		return rep, err
	}
	if rep.Candidates, err = device.Candidates(instance.Inner()); err != nil {
		return rep, err
	}

	// A machine without a qualifying device is a valid inspection
	// result, not a failure.
	if selection, err := device.Select(rep.Candidates); err == nil {
		rep.Selection = &selection
	}
	return rep, nil
}

func render(out io.Writer, rep report) {
	table := tablewriter.CreateTable()
	table.UTF8Box()
	table.AddTitle("VULKAN RUNTIME")
	table.AddRow("INSTANCE LAYERS", "")
	for i, layerName := range rep.Layers {
		table.AddRow(i+1, layerName)
	}
	table.AddSeparator()
	table.AddRow("INSTANCE EXTENSIONS", "")
	for i, extName := range rep.Extensions {
		table.AddRow(i+1, extName)
	}
	fmt.Fprintln(out, table.Render())

	for i, info := range rep.Devices {
		table := tablewriter.CreateTable()
		table.UTF8Box()
		table.AddTitle(info.Name)
		table.AddRow("Device ID", info.ID)
		table.AddRow("Vendor ID", fmt.Sprintf("%#x", info.VendorID))
		table.AddRow("Driver version", info.DriverVersion)
		table.AddRow("Memory", fmt.Sprintf("%d MiB", info.Memory/(1<<20)))

		if i < len(rep.Candidates) {
			candidate := rep.Candidates[i]
			table.AddSeparator()
			table.AddRow("Geometry shader", candidate.Features.GeometryShader)
			table.AddRow("Tessellation shader", candidate.Features.TessellationShader)
			for _, family := range candidate.QueueFamilies {
				table.AddRow(
					fmt.Sprintf("Queue family %d", family.Index),
					fmt.Sprintf("graphics=%v compute=%v", family.Graphics, family.Compute))
			}
		}
		fmt.Fprintln(out, table.Render())
	}

	if rep.Selection != nil {
		fmt.Fprintf(out, "selected device: %s (queue family %d)\n",
			rep.Selection.Name, rep.Selection.QueueFamilyIndex)
	} else {
		fmt.Fprintln(out, "no suitable device for graphics work")
	}
}
