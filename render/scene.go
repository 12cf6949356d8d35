package render

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidViewport reports a scene configured with a non-positive size.
var ErrInvalidViewport = errors.New("viewport size must be positive")

// SceneConfig controls a Scene. Zero values take the defaults below.
type SceneConfig struct {
	Width  int
	Height int

	Scale       float64 // projection depth scale, default ProjectionScale
	AngleStep   float64 // radians added to each axis per tick, default 0.01
	OrbitStep   float64 // degrees added to the orbit per tick, default 3
	OrbitRadius float64 // orbit offset in pixels, default 400

	Background Color // default White
	Foreground Color // default Blue

	// Workers > 1 rotates meshes concurrently within a tick.
	Workers int
}

const (
	defaultAngleStep   = 0.01
	defaultOrbitStep   = 3
	defaultOrbitRadius = 400
)

// Scene owns a list of meshes and the animation state that moves them.
//
// Tick and Paint must not be called concurrently.
type Scene struct {
	cfg SceneConfig

	objects []Mesh

	angleX, angleY, angleZ float64
	orbitDegree            float64
	moveX, moveY           float64

	centerX, centerY int
	ticks            uint64

	// Overlay, if set, is called after the meshes are drawn and before
	// Present.
	Overlay func(t Target)
}

func NewScene(cfg SceneConfig) (*Scene, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("scene: %w (%dx%d)", ErrInvalidViewport, cfg.Width, cfg.Height)
	}
	if cfg.Scale == 0 {
		cfg.Scale = ProjectionScale
	}
	if cfg.AngleStep == 0 {
		cfg.AngleStep = defaultAngleStep
	}
	if cfg.OrbitStep == 0 {
		cfg.OrbitStep = defaultOrbitStep
	}
	if cfg.OrbitRadius == 0 {
		cfg.OrbitRadius = defaultOrbitRadius
	}
	if cfg.Background == (Color{}) {
		cfg.Background = White
	}
	if cfg.Foreground == (Color{}) {
		cfg.Foreground = Blue
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Scene{
		cfg:     cfg,
		centerX: cfg.Width / 2,
		centerY: cfg.Height / 2,
	}, nil
}

// Add hands ownership of m to the scene.
func (s *Scene) Add(m Mesh) {
	if m == nil {
		return
	}
	s.objects = append(s.objects, m)
}

func (s *Scene) Meshes() []Mesh      { return s.objects }
func (s *Scene) Config() SceneConfig { return s.cfg }
func (s *Scene) Ticks() uint64       { return s.ticks }

func (s *Scene) Center() (x, y int) { return s.centerX, s.centerY }

// Angles returns the cumulative rotation in radians.
func (s *Scene) Angles() (x, y, z float64) { return s.angleX, s.angleY, s.angleZ }

// OrbitDegree returns the orbit position in degrees.
func (s *Scene) OrbitDegree() float64 { return s.orbitDegree }

// SetOrbitDegree moves the orbit and recomputes the offset.
func (s *Scene) SetOrbitDegree(deg float64) {
	s.orbitDegree = deg
	s.updateOffset()
}

// Offset returns the screen-space orbit offset applied after projection.
func (s *Scene) Offset() (x, y float64) { return s.moveX, s.moveY }

// Tick advances the animation by one step and rotates every mesh to the new
// angles. All meshes are rotated when Tick returns.
func (s *Scene) Tick() {
	s.angleX += s.cfg.AngleStep
	s.angleY += s.cfg.AngleStep
	s.angleZ += s.cfg.AngleStep

	s.orbitDegree += s.cfg.OrbitStep
	if s.orbitDegree > 360 {
		s.orbitDegree = 0
	}
	s.updateOffset()
	s.rotateAll()
	s.ticks++
}

func (s *Scene) updateOffset() {
	rad := s.orbitDegree * math.Pi / 180
	s.moveX = s.cfg.OrbitRadius * math.Cos(rad)
	s.moveY = s.cfg.OrbitRadius * math.Sin(rad)
}

func (s *Scene) rotateAll() {
	ax, ay, az := s.angleX, s.angleY, s.angleZ
	if s.cfg.Workers <= 1 || len(s.objects) < 2 {
		for _, m := range s.objects {
			m.Rotate(ax, ay, az)
		}
		return
	}

	// Meshes share no storage, so each can rotate on its own goroutine.
	var g errgroup.Group
	g.SetLimit(s.cfg.Workers)
	for _, m := range s.objects {
		m := m
		g.Go(func() error {
			m.Rotate(ax, ay, az)
			return nil
		})
	}
	_ = g.Wait()
}

// Render clears t and outlines every triangle of every mesh. It returns the
// number of triangles skipped because their projection was degenerate.
func (s *Scene) Render(t Target) (skipped int) {
	t.Clear(s.cfg.Background)
	for _, m := range s.objects {
		for _, tri := range m.Triangles() {
			p := tri.Project(s.centerX, s.centerY, s.cfg.Scale, s.moveX, s.moveY)
			if !DrawTriangle(t, p.P1, p.P2, p.P3, s.cfg.Foreground) {
				skipped++
			}
		}
	}
	return skipped
}

// Paint renders a full frame into dst, runs the overlay and presents it.
func (s *Scene) Paint(dst Surface) (skipped int, err error) {
	skipped = s.Render(dst)
	if s.Overlay != nil {
		s.Overlay(dst)
	}
	if err := dst.Present(); err != nil {
		return skipped, fmt.Errorf("scene: present: %w", err)
	}
	return skipped, nil
}
