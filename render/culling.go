// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minFrustumSpan is the smallest |n0 · (n1 × n2)| accepted for the unit
// normals of three adjacent frustum planes. It does not depend on scene
// scale.
const minFrustumSpan = 1e-6

// Plane is a normalized plane: dot(Normal, p) + D = 0.
// Points with a positive distance are on the inner side.
type Plane struct {
	Normal mgl32.Vec3
	D      float32
}

// Distance returns the signed distance of p from the plane.
func (p Plane) Distance(pt mgl32.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum plane indices.
const (
	PlaneLeft = iota
	PlaneRight
	PlaneBottom
	PlaneTop
	PlaneNear
	PlaneFar
)

// CullingParameters describes the view volume of one camera.
// It is produced by TryGetCullingParameters and consumed by Context.Cull.
type CullingParameters struct {
	// Camera is the name of the camera the parameters were derived from.
	Camera string

	// Origin is the camera position used for distance sorting.
	Origin mgl32.Vec3

	// ViewProjection is the combined clip transform.
	ViewProjection mgl32.Mat4

	// Planes are the six frustum planes in Plane* index order.
	Planes [6]Plane
}

// DeriveCullingParameters computes culling parameters for cam.
//
// It reports false when the camera cannot describe a usable view volume:
// a nil camera, a non-finite matrix element, a frustum plane with a
// zero-length normal, or planes that do not enclose a volume (a singular
// view-projection matrix). Callers treat that as "nothing to draw", not as
// an error.
func DeriveCullingParameters(cam *Camera) (CullingParameters, bool) {
	if cam == nil {
		return CullingParameters{}, false
	}
	clip := cam.ViewProjection()
	for _, v := range clip {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return CullingParameters{}, false
		}
	}
	planes, ok := extractFrustumPlanes(clip)
	if !ok {
		return CullingParameters{}, false
	}
	return CullingParameters{
		Camera:         cam.Name,
		Origin:         cam.Position,
		ViewProjection: clip,
		Planes:         planes,
	}, true
}

// extractFrustumPlanes builds the six planes of the combined clip matrix
// (Gribb/Hartmann). mgl32 matrices are column-major.
func extractFrustumPlanes(clip mgl32.Mat4) ([6]Plane, bool) {
	row := func(i int) mgl32.Vec4 {
		return mgl32.Vec4{clip[i], clip[i+4], clip[i+8], clip[i+12]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	raw := [6]mgl32.Vec4{
		PlaneLeft:   r3.Add(r0),
		PlaneRight:  r3.Sub(r0),
		PlaneBottom: r3.Add(r1),
		PlaneTop:    r3.Sub(r1),
		PlaneNear:   r3.Add(r2),
		PlaneFar:    r3.Sub(r2),
	}

	var planes [6]Plane
	for i, p := range raw {
		n := p.Vec3()
		l := n.Len()
		if l == 0 || math.IsNaN(float64(l)) {
			return planes, false
		}
		planes[i] = Plane{Normal: n.Mul(1 / l), D: p.W() / l}
	}
	if !spansVolume(planes[PlaneLeft], planes[PlaneBottom], planes[PlaneNear]) ||
		!spansVolume(planes[PlaneRight], planes[PlaneTop], planes[PlaneFar]) {
		return planes, false
	}
	return planes, true
}

// spansVolume reports whether three unit plane normals are linearly
// independent, i.e. the planes meet in a single corner.
func spansVolume(a, b, c Plane) bool {
	span := a.Normal.Dot(b.Normal.Cross(c.Normal))
	return math.Abs(float64(span)) >= minFrustumSpan
}

// IntersectsAABB reports whether the box touches the view volume.
// Boxes straddling a plane count as visible.
func (p *CullingParameters) IntersectsAABB(b Bounds) bool {
	for _, pl := range p.Planes {
		// positive vertex along the plane normal
		v := b.Max
		if pl.Normal.X() < 0 {
			v[0] = b.Min.X()
		}
		if pl.Normal.Y() < 0 {
			v[1] = b.Min.Y()
		}
		if pl.Normal.Z() < 0 {
			v[2] = b.Min.Z()
		}
		if pl.Distance(v) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether the sphere touches the view volume.
func (p *CullingParameters) IntersectsSphere(center mgl32.Vec3, radius float32) bool {
	for _, pl := range p.Planes {
		if pl.Distance(center) < -radius {
			return false
		}
	}
	return true
}
