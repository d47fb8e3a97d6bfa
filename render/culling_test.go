// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDeriveCullingParameters(t *testing.T) {
	cam := NewPerspectiveCamera("Main", 90, 1, 0.1, 100)
	cam.LookAt(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, -10}, mgl32.Vec3{0, 1, 0})

	p, ok := DeriveCullingParameters(cam)
	if !ok {
		t.Fatal("DeriveCullingParameters() ok = false, want true")
	}
	if p.Camera != "Main" {
		t.Errorf("Camera = %q, want %q", p.Camera, "Main")
	}
	if p.Origin != cam.Position {
		t.Errorf("Origin = %v, want %v", p.Origin, cam.Position)
	}
	for i, pl := range p.Planes {
		if l := pl.Normal.Len(); math.Abs(float64(l-1)) > 1e-4 {
			t.Errorf("plane %d normal length = %v, want 1", i, l)
		}
	}
}

func TestDeriveCullingParametersInvalid(t *testing.T) {
	nan := float32(math.NaN())

	zero := testCamera()
	zero.Projection = mgl32.Mat4{}

	notFinite := testCamera()
	notFinite.Projection[0] = nan

	inf := testCamera()
	inf.View[12] = float32(math.Inf(1))

	tests := []struct {
		name string
		cam  *Camera
	}{
		{"nil camera", nil},
		{"zero projection", zero},
		{"NaN projection", notFinite},
		{"infinite view", inf},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := DeriveCullingParameters(tt.cam); ok {
				t.Error("DeriveCullingParameters() ok = true, want false")
			}
		})
	}
}

func TestDeriveCullingParametersLargeOrtho(t *testing.T) {
	tests := []struct {
		name   string
		extent float32
		far    float32
	}{
		{"minimap", 500, 1000},
		{"world map", 25000, 50000},
		{"tiny", 0.001, 0.01},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := &Camera{
				Name:       "Ortho",
				View:       mgl32.Ident4(),
				Projection: mgl32.Ortho(-tt.extent, tt.extent, -tt.extent, tt.extent, 0.0001, tt.far),
			}
			p, ok := DeriveCullingParameters(cam)
			if !ok {
				t.Fatal("valid orthographic camera rejected")
			}
			center := mgl32.Vec3{tt.extent / 2, 0, -tt.far / 2}
			if !p.IntersectsSphere(center, tt.extent/100) {
				t.Errorf("point inside the ortho volume culled: %v", center)
			}
		})
	}
}

func TestDeriveCullingParametersSingular(t *testing.T) {
	// copy the x row of the projection into its y row: finite, non-zero,
	// but the volume collapses to a plane
	cam := testCamera()
	for c := 0; c < 4; c++ {
		cam.Projection[c*4+1] = cam.Projection[c*4]
	}
	if _, ok := DeriveCullingParameters(cam); ok {
		t.Error("singular projection accepted")
	}
}

func TestCullingParametersIntersectsAABB(t *testing.T) {
	p, ok := DeriveCullingParameters(NewPerspectiveCamera("Main", 90, 1, 0.1, 100))
	if !ok {
		t.Fatal("DeriveCullingParameters failed")
	}
	half := mgl32.Vec3{0.5, 0.5, 0.5}

	tests := []struct {
		name   string
		center mgl32.Vec3
		want   bool
	}{
		{"in front", mgl32.Vec3{0, 0, -5}, true},
		{"behind", mgl32.Vec3{0, 0, 5}, false},
		{"beyond far", mgl32.Vec3{0, 0, -200}, false},
		{"far left", mgl32.Vec3{-20, 0, -5}, false},
		{"far above", mgl32.Vec3{0, 20, -5}, false},
		{"straddling left plane", mgl32.Vec3{-5.2, 0, -5}, true},
		{"straddling near plane", mgl32.Vec3{0, 0, 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.IntersectsAABB(BoundsFromCenter(tt.center, half))
			if got != tt.want {
				t.Errorf("IntersectsAABB(%v) = %v, want %v", tt.center, got, tt.want)
			}
		})
	}
}

func TestCullingParametersIntersectsSphere(t *testing.T) {
	p, ok := DeriveCullingParameters(NewPerspectiveCamera("Main", 90, 1, 0.1, 100))
	if !ok {
		t.Fatal("DeriveCullingParameters failed")
	}
	if !p.IntersectsSphere(mgl32.Vec3{0, 0, -10}, 1) {
		t.Error("sphere in front should intersect")
	}
	if p.IntersectsSphere(mgl32.Vec3{0, 0, 10}, 1) {
		t.Error("sphere behind should not intersect")
	}
	if !p.IntersectsSphere(mgl32.Vec3{0, 0, 2}, 5) {
		t.Error("large sphere around the camera should intersect")
	}
}

func TestPlaneDistance(t *testing.T) {
	pl := Plane{Normal: mgl32.Vec3{0, 1, 0}, D: -2}
	if got := pl.Distance(mgl32.Vec3{5, 3, 1}); got != 1 {
		t.Errorf("Distance = %v, want 1", got)
	}
}
