package forward

import (
	"testing"

	"github.com/gogpu/forward/backend/soft"
	"github.com/gogpu/forward/render"
)

// plainContext hides the optional editor interfaces of the wrapped context.
type plainContext struct {
	render.Context
}

func TestEditorHooksGameCamera(t *testing.T) {
	spy := newSpyContext(t, nil)
	cam := testCamera("Main")

	hooks := EditorHooks{}
	hooks.PrepareForPreviewWindow(spy, cam)
	hooks.DrawDebugOverlays(spy, cam)

	if spy.count("EmitWorldGeometryForSceneView") != 0 {
		t.Error("game cameras must not get scene view geometry")
	}
	if spy.count("DrawGizmos") != 2 {
		t.Errorf("DrawGizmos calls = %d, want 2", spy.count("DrawGizmos"))
	}
}

func TestEditorHooksGizmosDisabled(t *testing.T) {
	spy := newSpyContext(t, nil)
	spy.gizmosOff = true

	EditorHooks{}.DrawDebugOverlays(spy, testCamera("Main"))
	if spy.count("DrawGizmos") != 0 {
		t.Error("gizmos drawn while disabled")
	}
}

func TestEditorHooksWithoutEditorSupport(t *testing.T) {
	inner := soft.New(nil)
	ctx := plainContext{Context: inner}
	cam := testCamera("Scene")
	cam.Type = render.CameraTypeSceneView

	hooks := EditorHooks{}
	hooks.PrepareForPreviewWindow(ctx, cam)
	hooks.DrawDebugOverlays(ctx, cam)

	if err := inner.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	f := inner.Frames()[0]
	if f.SceneViewGeometry || len(f.Gizmos) != 0 {
		t.Error("hooks reached editor features the context does not expose")
	}
}

func TestNopDebugHooks(t *testing.T) {
	resetErrorMaterial(t)
	spy := newSpyContext(t, testScene)
	cam := testCamera("Scene")
	cam.Type = render.CameraTypeSceneView

	if err := newTestRenderer(t).Render(spy, cam); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if spy.count("DrawGizmos") != 0 || spy.count("EmitWorldGeometryForSceneView") != 0 {
		t.Errorf("default hooks touched editor features: %v", spy.calls)
	}
}

func TestWithDebugHooksNil(t *testing.T) {
	r := newTestRenderer(t, WithDebugHooks(nil))
	if _, ok := r.hooks.(NopDebugHooks); !ok {
		t.Errorf("hooks = %T, want NopDebugHooks", r.hooks)
	}
}
