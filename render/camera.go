// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"
)

// CameraType classifies what a camera renders for.
type CameraType uint8

const (
	// CameraTypeGame is a regular in-game camera.
	CameraTypeGame CameraType = iota

	// CameraTypeSceneView is the editor scene window camera.
	CameraTypeSceneView

	// CameraTypePreview renders editor previews (material and asset thumbnails).
	CameraTypePreview

	// CameraTypeReflection renders reflection probes.
	CameraTypeReflection
)

// String returns the camera type name.
func (t CameraType) String() string {
	switch t {
	case CameraTypeGame:
		return "Game"
	case CameraTypeSceneView:
		return "SceneView"
	case CameraTypePreview:
		return "Preview"
	case CameraTypeReflection:
		return "Reflection"
	default:
		return "Unknown"
	}
}

// Camera holds the view parameters of one camera.
//
// Cameras are owned by the host. Renderers borrow them read-only for the
// duration of a single render call.
type Camera struct {
	// Name identifies the camera in logs and sample scopes.
	Name string

	// Type is the camera classification.
	Type CameraType

	// Position is the camera origin in world space.
	Position mgl32.Vec3

	// View is the world-to-view transform.
	View mgl32.Mat4

	// Projection is the view-to-clip transform.
	Projection mgl32.Mat4

	// ColorFormat is the color target format.
	// TextureFormatUndefined lets the context pick its surface format.
	ColorFormat gputypes.TextureFormat

	// DepthFormat is the depth target format.
	DepthFormat gputypes.TextureFormat
}

// NewPerspectiveCamera creates a game camera at the origin looking down -Z.
// fovY is the vertical field of view in degrees.
func NewPerspectiveCamera(name string, fovY, aspect, near, far float32) *Camera {
	return &Camera{
		Name:        name,
		Type:        CameraTypeGame,
		View:        mgl32.Ident4(),
		Projection:  mgl32.Perspective(mgl32.DegToRad(fovY), aspect, near, far),
		DepthFormat: gputypes.TextureFormatDepth24PlusStencil8,
	}
}

// LookAt places the camera at eye looking at center.
func (c *Camera) LookAt(eye, center, up mgl32.Vec3) {
	c.Position = eye
	c.View = mgl32.LookAtV(eye, center, up)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Projection.Mul4(c.View)
}
