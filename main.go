package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"wiresphere/app"
	"wiresphere/hal"
	"wiresphere/internal/buildinfo"
)

func main() {
	var (
		headless hal.HeadlessConfig
		window   hal.WindowConfig
		cfg      app.Config
		version  bool
	)
	flag.BoolVar(&headless.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&headless.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&headless.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&window.Width, "width", hal.DefaultWidth, "Viewport width in pixels.")
	flag.IntVar(&window.Height, "height", hal.DefaultHeight, "Viewport height in pixels.")
	flag.IntVar(&window.Zoom, "zoom", 1, "Window pixels per framebuffer pixel.")
	flag.StringVar(&cfg.Shape, "shape", app.ShapeSphere, "Mesh to draw: sphere, torus or both.")
	flag.Float64Var(&cfg.Radius, "radius", 100, "Mesh radius.")
	flag.IntVar(&cfg.LatitudeSteps, "lat", 20, "Latitude steps.")
	flag.IntVar(&cfg.LongitudeSteps, "lon", 20, "Longitude steps.")
	flag.Float64Var(&cfg.OrbitRadius, "orbit", 400, "Orbit radius in pixels.")
	flag.IntVar(&cfg.Workers, "workers", 1, "Rotate meshes on up to N goroutines per tick.")
	flag.BoolVar(&cfg.HUD, "hud", false, "Draw the text overlay.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	if headless.Enabled {
		headless.Width, headless.Height = window.Width, window.Height
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, app.Factory(cfg), headless); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	window.Title = "wiresphere (" + buildinfo.Short() + ")"
	if err := hal.RunWindow(window, app.Factory(cfg)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
