package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Eearslya/Rake/pkg/core"
	"github.com/Eearslya/Rake/pkg/scene"
	"github.com/Eearslya/Rake/pkg/tracer"
)

func main() {
	worldName := flag.String("world", "default", "World to render: 'default', 'cornell', or 'showcase'")
	width := flag.Int("width", 800, "Image width in pixels")
	height := flag.Int("height", 450, "Image height in pixels")
	samples := flag.Uint("spp", 100, "Samples per pixel")
	output := flag.String("output", "output", "Output directory")
	flag.Parse()

	var world *scene.World
	switch *worldName {
	case "cornell":
		world = scene.NewCornellWorld()
	case "showcase":
		world = scene.NewShowcaseWorld()
	case "default":
		world = scene.NewDefaultWorld()
	default:
		fmt.Printf("Unknown world %q, using default\n", *worldName)
		world = scene.NewDefaultWorld()
		*worldName = "default"
	}

	if err := os.MkdirAll(*output, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		return
	}

	t := tracer.New(tracer.DefaultConfig(), tracer.NewDefaultLogger())
	defer t.Close()

	if !t.StartTrace(*width, *height, uint32(*samples), world) {
		fmt.Println("Failed to start trace")
		return
	}

	// Poll the tracer the way an interactive consumer would: one
	// Update per frame, snapshot when enough samples have landed
	var pixels []core.Vec3
	frame := time.NewTicker(33 * time.Millisecond)
	defer frame.Stop()

	for t.IsRunning() {
		<-frame.C
		t.Update()
		if t.UpdatePixels(&pixels) {
			fmt.Printf("\r%d/%d samples, %d rays, %v elapsed",
				t.CompletedSamples(), *samples, t.RaycastCount(), t.ElapsedTime().Round(time.Millisecond))
		}
	}
	t.Update()
	t.UpdatePixels(&pixels)
	fmt.Printf("\nTrace finished in %v (%d rays)\n", t.ElapsedTime().Round(time.Millisecond), t.RaycastCount())

	filename := filepath.Join(*output, fmt.Sprintf("%s_%s.png", *worldName, time.Now().Format("20060102_150405")))
	if err := tracer.ExportPNG(filename, *width, *height, pixels); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		return
	}
	fmt.Printf("Saved %s\n", filename)
}
