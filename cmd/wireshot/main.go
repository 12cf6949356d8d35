// Command wireshot renders the animation off-screen and writes one frame as
// a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"wiresphere/render"
)

type options struct {
	out    string
	ticks  int
	width  int
	height int
	radius float64
	lat    int
	lon    int
	orbit  float64
}

func main() {
	var opt options
	flag.StringVar(&opt.out, "o", "frame.png", "Output PNG path.")
	flag.IntVar(&opt.ticks, "ticks", 1, "Ticks to advance before capturing.")
	flag.IntVar(&opt.width, "width", 800, "Frame width in pixels.")
	flag.IntVar(&opt.height, "height", 600, "Frame height in pixels.")
	flag.Float64Var(&opt.radius, "radius", 100, "Sphere radius.")
	flag.IntVar(&opt.lat, "lat", 20, "Latitude steps.")
	flag.IntVar(&opt.lon, "lon", 20, "Longitude steps.")
	flag.Float64Var(&opt.orbit, "orbit", 400, "Orbit radius in pixels.")
	flag.Parse()

	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, "wireshot:", err)
		os.Exit(1)
	}
}

func run(opt options) error {
	if opt.ticks < 0 {
		return fmt.Errorf("invalid tick count %d", opt.ticks)
	}
	scene, err := render.NewScene(render.SceneConfig{
		Width:       opt.width,
		Height:      opt.height,
		OrbitRadius: opt.orbit,
	})
	if err != nil {
		return err
	}
	sphere, err := render.NewSphere(opt.radius, opt.lat, opt.lon)
	if err != nil {
		return err
	}
	scene.Add(sphere)

	for i := 0; i < opt.ticks; i++ {
		scene.Tick()
	}

	target := render.NewRGBATarget(opt.width, opt.height)
	target.OnPresent = func(img *image.RGBA) error { return writePNG(opt.out, img) }
	skipped, err := scene.Paint(target)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s: tick %d, orbit %.0f, %d triangles skipped\n", opt.out, scene.Ticks(), scene.OrbitDegree(), skipped)
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
