// Package soft provides a CPU reference implementation of render.Context.
//
// The soft context culls an in-memory Scene against camera frustums, builds
// renderer lists with render.BuildRendererList and records every executed
// command into a per-submit Frame log instead of talking to a GPU. It serves
// as:
//   - Reference implementation for platform backends
//   - Deterministic context for pipeline tests
//   - Frame inspector for the forwarddemo command
//
// # Example
//
//	// Import to register the context
//	import _ "github.com/gogpu/forward/backend/soft"
//
//	// Create via registry
//	ctx, _ := render.NewContext("soft")
//
//	// Or create directly with a scene
//	ctx := soft.New(scene, soft.WithDevice(handle))
//
//	pipeline.Render(ctx, &cameras)
//	for _, f := range ctx.Frames() {
//	    fmt.Println(f.Camera, f.DrawCount())
//	}
package soft

import "github.com/gogpu/forward/render"

func init() {
	render.Register("soft", func() render.Context {
		return New(nil)
	})
}
