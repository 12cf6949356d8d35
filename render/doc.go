// Package render is a small software wireframe pipeline.
//
// Pipeline (fixed):
//
//	Mesh → Rotate → Project → Rasterize (outline) → Present.
//
// Meshes are parametric grids (sphere, torus) that keep their generated
// reference pose and rotate from it each tick, so cumulative angles never
// drift. The rasterizer draws into a caller-provided Target and never clips;
// targets are expected to drop out-of-bounds pixels.
//
// Scene holds the animation state (rotation angles and the orbit offset) and
// is driven by two calls from the host: Tick and Paint.
package render
