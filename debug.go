package forward

import "github.com/gogpu/forward/render"

// DebugHooks are optional editor and debug steps run after the draw phases
// and before submission. They must not change what production cameras draw.
type DebugHooks interface {
	// PrepareForPreviewWindow adds editor-only content for preview cameras.
	PrepareForPreviewWindow(ctx render.Context, cam *render.Camera)

	// DrawDebugOverlays draws gizmos and other overlays for cam.
	DrawDebugOverlays(ctx render.Context, cam *render.Camera)
}

// NopDebugHooks does nothing. It is the production default.
type NopDebugHooks struct{}

// PrepareForPreviewWindow implements DebugHooks.
func (NopDebugHooks) PrepareForPreviewWindow(render.Context, *render.Camera) {}

// DrawDebugOverlays implements DebugHooks.
func (NopDebugHooks) DrawDebugOverlays(render.Context, *render.Camera) {}

// EditorHooks implements DebugHooks using the optional editor capabilities
// of the context. Contexts without them are left untouched.
type EditorHooks struct{}

// PrepareForPreviewWindow emits editor world geometry for scene view cameras
// when ctx implements render.SceneViewEmitter.
func (EditorHooks) PrepareForPreviewWindow(ctx render.Context, cam *render.Camera) {
	if cam.Type != render.CameraTypeSceneView {
		return
	}
	if e, ok := ctx.(render.SceneViewEmitter); ok {
		e.EmitWorldGeometryForSceneView(cam)
	}
}

// DrawDebugOverlays draws the pre- and post-image-effect gizmo subsets when
// ctx implements render.GizmoDrawer and gizmos are enabled.
func (EditorHooks) DrawDebugOverlays(ctx render.Context, cam *render.Camera) {
	g, ok := ctx.(render.GizmoDrawer)
	if !ok || !g.ShouldRenderGizmos() {
		return
	}
	g.DrawGizmos(cam, render.GizmoSubsetPreImageEffects)
	g.DrawGizmos(cam, render.GizmoSubsetPostImageEffects)
}

var (
	_ DebugHooks = NopDebugHooks{}
	_ DebugHooks = EditorHooks{}
)
