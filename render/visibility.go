// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Bounds is an axis-aligned bounding box in world space.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// BoundsFromCenter creates a box centered at c with the given half extents.
func BoundsFromCenter(c, extents mgl32.Vec3) Bounds {
	return Bounds{Min: c.Sub(extents), Max: c.Add(extents)}
}

// Center returns the box center.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Renderable is a drawable scene object.
type Renderable struct {
	// Name identifies the object. It also breaks sort ties.
	Name string

	// Bounds is the world-space bounding box used for culling.
	Bounds Bounds

	// Layer is the object layer (0-31), tested against FilteringSettings.LayerMask.
	Layer uint8

	// Material shades the object. Renderables without a material are never drawn.
	Material *Material
}

// VisibleRenderer is a renderable that passed culling.
type VisibleRenderer struct {
	Renderable *Renderable

	// Distance is the distance from the camera origin to the bounds center.
	Distance float32
}

// VisibleLight is a point light that passed culling.
type VisibleLight struct {
	Name     string
	Position mgl32.Vec3
	Range    float32
	Color    color.RGBA
}

// VisibilitySet is the result of culling a scene against one camera.
//
// A VisibilitySet is immutable once created. It lives for one render call
// and is discarded after submission.
type VisibilitySet struct {
	params    CullingParameters
	renderers []VisibleRenderer
	lights    []VisibleLight
}

// NewVisibilitySet creates a visibility set. The slices are copied.
// Contexts call this from Cull.
func NewVisibilitySet(params CullingParameters, renderers []VisibleRenderer, lights []VisibleLight) *VisibilitySet {
	return &VisibilitySet{
		params:    params,
		renderers: append([]VisibleRenderer(nil), renderers...),
		lights:    append([]VisibleLight(nil), lights...),
	}
}

// Camera returns the name of the camera the set was culled for.
func (v *VisibilitySet) Camera() string {
	return v.params.Camera
}

// Origin returns the camera origin used for distances.
func (v *VisibilitySet) Origin() mgl32.Vec3 {
	return v.params.Origin
}

// Len returns the number of visible renderers.
func (v *VisibilitySet) Len() int {
	if v == nil {
		return 0
	}
	return len(v.renderers)
}

// Renderer returns the i-th visible renderer in visibility order.
func (v *VisibilitySet) Renderer(i int) VisibleRenderer {
	return v.renderers[i]
}

// Lights returns a copy of the visible lights.
func (v *VisibilitySet) Lights() []VisibleLight {
	if v == nil {
		return nil
	}
	return append([]VisibleLight(nil), v.lights...)
}
