// Package forward provides a minimal forward render pipeline controller.
//
// # Overview
//
// forward decides, per camera, what is visible, in what order draw calls are
// issued, and how command buffers are assembled and submitted. It is the
// orchestration layer between a host that owns cameras and scenes and a
// graphics backend that implements render.Context. It has no lighting model.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/forward"
//	    "github.com/gogpu/forward/backend/soft"
//	)
//
//	ctx := soft.New(scene)
//	pipeline, err := forward.NewPipeline()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cameras := forward.Cameras{mainCamera, uiCamera}
//	for running {
//	    if err := pipeline.Render(ctx, &cameras); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// # Per-Camera Phases
//
// CameraRenderer.Render runs, in order:
//  1. Cull: a camera without valid culling parameters draws nothing.
//  2. Setup: camera state, clear color and depth, open the sample scope.
//  3. Opaque objects front-to-back, the skybox, transparent objects
//     back-to-front.
//  4. Objects using legacy shader passes, drawn with the shared magenta
//     error material so unsupported shaders are visible.
//  5. Debug hooks (editor only).
//  6. Submit: close the sample scope, flush, submit.
//
// # Configuration
//
// Pipelines are configured with functional options and an Asset, which can be
// loaded from TOML:
//
//	asset, err := forward.LoadAssetFile("pipeline.toml")
//	pipeline, err := forward.NewPipeline(forward.WithAsset(asset))
//
// An Asset that fails Validate makes NewPipeline and NewCameraRenderer
// return an error wrapping ErrInvalidAsset.
//
// # Thread Safety
//
// Rendering is single-threaded and synchronous. Pipelines, camera renderers
// and contexts must be used from one goroutine. SetLogger and ErrorMaterial
// are safe for concurrent use.
package forward
