// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Context is the graphics command submission boundary.
//
// A Context culls scenes, builds renderer lists, executes command buffers
// and submits frame work to the graphics system. The pipeline consumes it;
// platform backends implement it.
//
// Thread Safety: Contexts are NOT thread-safe. A frame is rendered from a
// single goroutine.
type Context interface {
	// TryGetCullingParameters derives culling parameters for cam.
	// It reports false when the camera has no usable view volume.
	TryGetCullingParameters(cam *Camera) (CullingParameters, bool)

	// Cull returns the renderers and lights inside the view volume.
	Cull(params CullingParameters) *VisibilitySet

	// SetupCameraProperties pushes the camera view and projection state.
	SetupCameraProperties(cam *Camera)

	// CreateRendererList builds the renderer list described by desc.
	// It does not modify the context or the visibility set.
	CreateRendererList(desc RendererListDesc) RendererList

	// CreateSkyboxRendererList builds the built-in skybox pass for cam.
	CreateSkyboxRendererList(cam *Camera) RendererList

	// ExecuteCommandBuffer schedules the buffered commands in order.
	// A failed execution schedules none of them.
	// The context must not retain buf after returning.
	ExecuteCommandBuffer(buf *CommandBuffer) error

	// Submit sends all scheduled work to the graphics system.
	Submit() error

	// FindShader looks up a shader by name.
	FindShader(name string) (*Shader, bool)
}

// GizmoSubset selects which gizmos to draw relative to image effects.
type GizmoSubset uint8

const (
	// GizmoSubsetPreImageEffects draws gizmos affected by image effects.
	GizmoSubsetPreImageEffects GizmoSubset = iota

	// GizmoSubsetPostImageEffects draws gizmos drawn over image effects.
	GizmoSubsetPostImageEffects
)

// String returns the subset name.
func (g GizmoSubset) String() string {
	if g == GizmoSubsetPostImageEffects {
		return "PostImageEffects"
	}
	return "PreImageEffects"
}

// GizmoDrawer is an optional interface for contexts that can draw editor gizmos.
type GizmoDrawer interface {
	// ShouldRenderGizmos reports whether gizmos are enabled.
	ShouldRenderGizmos() bool

	// DrawGizmos draws the gizmo subset for cam.
	DrawGizmos(cam *Camera, subset GizmoSubset)
}

// SceneViewEmitter is an optional interface for contexts that can add
// editor-only world geometry (UI, gizmo meshes) to a scene view camera.
type SceneViewEmitter interface {
	EmitWorldGeometryForSceneView(cam *Camera)
}

// DeviceContext is an optional interface for contexts backed by a GPU
// device from the host application.
type DeviceContext interface {
	DeviceHandle() DeviceHandle
}
