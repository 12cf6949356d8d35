package app

import (
	"errors"
	"fmt"

	"wiresphere/hal"
	"wiresphere/internal/buildinfo"
	"wiresphere/render"
)

// ErrUnknownShape reports a Config.Shape that is not one of the Shape* names.
var ErrUnknownShape = errors.New("unknown shape")

const (
	ShapeSphere = "sphere"
	ShapeTorus  = "torus"
	ShapeBoth   = "both"
)

// Config selects the meshes and animation parameters. Zero values take the
// defaults noted per field.
type Config struct {
	Shape          string  // default ShapeSphere
	Radius         float64 // default 100
	LatitudeSteps  int     // default 20
	LongitudeSteps int     // default 20
	OrbitRadius    float64 // default 400
	Workers        int     // default 1 (sequential)
	HUD            bool
}

const (
	defaultRadius = 100
	defaultSteps  = 20
)

type system struct {
	log hal.Logger
	fb  hal.Framebuffer
	kbd hal.Keyboard

	scene   *render.Scene
	surface *fbSurface
	hud     *hud

	paused bool
	warned bool
}

// Factory returns a hal.AppFactory that builds the app with cfg.
func Factory(cfg Config) hal.AppFactory {
	return func(h hal.HAL) (hal.StepFunc, error) { return New(h, cfg) }
}

// New builds the scene for h and returns the per-tick step function.
func New(h hal.HAL, cfg Config) (hal.StepFunc, error) {
	s, err := newSystem(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.guard(s.step), nil
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	if h == nil || h.Display() == nil || h.Display().Framebuffer() == nil {
		return nil, errors.New("app: no framebuffer")
	}
	fb := h.Display().Framebuffer()
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", fb.Format())
	}

	scene, err := render.NewScene(render.SceneConfig{
		Width:       fb.Width(),
		Height:      fb.Height(),
		OrbitRadius: cfg.OrbitRadius,
		Workers:     cfg.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	meshes, err := buildMeshes(cfg)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	for _, m := range meshes {
		scene.Add(m)
	}

	s := &system{
		log:     h.Logger(),
		fb:      fb,
		scene:   scene,
		surface: newFBSurface(fb),
	}
	if in := h.Input(); in != nil {
		s.kbd = in.Keyboard()
	}
	if cfg.HUD {
		s.hud = newHUD()
		scene.Overlay = s.drawHUD
	}

	s.logf("wiresphere %s: %dx%d, %s", buildinfo.Short(), fb.Width(), fb.Height(), describe(meshes))
	return s, nil
}

func buildMeshes(cfg Config) ([]render.Mesh, error) {
	r := cfg.Radius
	if r == 0 {
		r = defaultRadius
	}
	lat, lon := cfg.LatitudeSteps, cfg.LongitudeSteps
	if lat == 0 {
		lat = defaultSteps
	}
	if lon == 0 {
		lon = defaultSteps
	}

	var out []render.Mesh
	switch cfg.Shape {
	case "", ShapeSphere, ShapeBoth:
		sp, err := render.NewSphere(r, lat, lon)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
		if cfg.Shape != ShapeBoth {
			return out, nil
		}
		// A thin ring around the sphere.
		t, err := render.NewTorus(r*1.4, r*0.25, lon, lat/2+1)
		if err != nil {
			return nil, err
		}
		return append(out, t), nil
	case ShapeTorus:
		t, err := render.NewTorus(r*0.7, r*0.3, lon, lat)
		if err != nil {
			return nil, err
		}
		return append(out, t), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, cfg.Shape)
	}
}

func describe(meshes []render.Mesh) string {
	var verts, tris int
	for _, m := range meshes {
		verts += len(m.Vertices())
		tris += len(m.Triangles())
	}
	return fmt.Sprintf("%d meshes, %d vertices, %d triangles", len(meshes), verts, tris)
}

func (s *system) step() error {
	if err := s.handleInput(); err != nil {
		return err
	}
	if !s.paused {
		s.scene.Tick()
	}

	skipped, err := s.scene.Paint(s.surface)
	if err != nil {
		return err
	}
	if skipped > 0 && !s.warned {
		s.warned = true
		s.logf("tick %d: skipped %d degenerate triangles", s.scene.Ticks(), skipped)
	}
	return nil
}

func (s *system) handleInput() error {
	if s.kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-s.kbd.Events():
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape:
				s.logf("quit at tick %d", s.scene.Ticks())
				return hal.ErrQuit
			case hal.KeySpace:
				s.paused = !s.paused
				if s.paused {
					s.logf("paused at tick %d", s.scene.Ticks())
				} else {
					s.logf("resumed")
				}
			case hal.KeyH:
				if s.hud == nil {
					s.hud = newHUD()
					s.scene.Overlay = s.drawHUD
				} else {
					s.hud.hidden = !s.hud.hidden
				}
			}
		default:
			return nil
		}
	}
}

func (s *system) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
