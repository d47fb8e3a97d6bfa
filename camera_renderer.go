package forward

import (
	"log/slog"

	"github.com/gogpu/forward/render"
)

// CameraRenderer renders one camera at a time.
//
// Render runs strict phases: cull, setup, visible geometry (opaque, skybox,
// transparent), unsupported shaders, debug hooks, submit. A camera without
// a usable view volume renders nothing.
//
// The command buffer is owned by the renderer and reused across cameras and
// frames. CameraRenderer is not safe for concurrent use.
type CameraRenderer struct {
	asset  Asset
	tag    render.ShaderTagID
	hooks  DebugHooks
	buffer *render.CommandBuffer

	// begun is set while the context holds an open sample scope of ours.
	begun bool
}

// NewCameraRenderer creates a camera renderer. It returns an error wrapping
// ErrInvalidAsset when the configured asset fails Validate.
func NewCameraRenderer(opts ...Option) (*CameraRenderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.asset.Validate(); err != nil {
		return nil, err
	}
	return &CameraRenderer{
		asset:  o.asset,
		tag:    render.ShaderTagID(o.asset.ShaderTag),
		hooks:  o.hooks,
		buffer: render.NewCommandBuffer(o.asset.BufferName),
	}, nil
}

// Buffer returns the renderer's command buffer.
func (r *CameraRenderer) Buffer() *render.CommandBuffer { return r.buffer }

// Render draws cam into ctx and submits the result.
//
// It returns nil without touching ctx when culling parameters cannot be
// derived for cam. ErrErrorShaderNotFound is returned before anything is
// recorded if the shared error material cannot be created. Errors from
// ctx are returned unchanged, after closing any sample scope ctx opened.
func (r *CameraRenderer) Render(ctx render.Context, cam *render.Camera) error {
	params, ok := ctx.TryGetCullingParameters(cam)
	if !ok {
		Logger().Debug("forward: no culling parameters, skipping camera", slog.String("camera", cameraName(cam)))
		return nil
	}
	vis := ctx.Cull(params)

	errMat, err := ErrorMaterial(ctx)
	if err != nil {
		return err
	}

	if err := r.setup(ctx, cam); err != nil {
		return r.unwind(ctx, err)
	}
	r.drawVisibleGeometry(ctx, cam, vis)
	r.drawUnsupportedShaders(ctx, cam, vis, errMat)

	r.hooks.PrepareForPreviewWindow(ctx, cam)
	r.hooks.DrawDebugOverlays(ctx, cam)

	if err := r.submit(ctx); err != nil {
		return r.unwind(ctx, err)
	}
	return nil
}

func (r *CameraRenderer) setup(ctx render.Context, cam *render.Camera) error {
	ctx.SetupCameraProperties(cam)
	r.buffer.ClearRenderTarget(true, true, r.asset.clearColor())
	r.buffer.BeginSample(r.buffer.Name())
	if err := r.executeBuffer(ctx); err != nil {
		return err
	}
	r.begun = true
	return nil
}

// drawVisibleGeometry draws opaque, skybox and transparent lists in that
// order. The sky needs the opaque depth buffer and transparents blend over it.
func (r *CameraRenderer) drawVisibleGeometry(ctx render.Context, cam *render.Camera, vis *render.VisibilitySet) {
	base := render.RendererListDesc{
		Visibility: vis,
		Drawing:    render.NewDrawingSettings(render.NewSortingSettings(cam), r.tag),
		Filtering:  render.NewFilteringSettings(render.QueueRangeOpaque),
	}

	opaque := ctx.CreateRendererList(base.WithPhase(render.SortCommonOpaque, render.QueueRangeOpaque))
	r.buffer.DrawRendererList(opaque)

	if !r.asset.DisableSkybox {
		r.buffer.DrawRendererList(ctx.CreateSkyboxRendererList(cam))
	}

	transparent := ctx.CreateRendererList(base.WithPhase(render.SortCommonTransparent, render.QueueRangeTransparent))
	r.buffer.DrawRendererList(transparent)

	Logger().Debug("forward: visible geometry",
		slog.String("camera", cam.Name),
		slog.Int("opaque", opaque.Len()),
		slog.Int("transparent", transparent.Len()))
}

// drawUnsupportedShaders draws every object using a legacy pass with the
// shared error material.
func (r *CameraRenderer) drawUnsupportedShaders(ctx render.Context, cam *render.Camera, vis *render.VisibilitySet, errMat *render.Material) {
	unsupported := ctx.CreateRendererList(render.RendererListDesc{
		Visibility: vis,
		Drawing:    unsupportedDrawing(cam, errMat),
		Filtering:  render.DefaultFilteringSettings(),
	})
	r.buffer.DrawRendererList(unsupported)

	if !unsupported.IsEmpty() {
		Logger().Debug("forward: unsupported shaders",
			slog.String("camera", cam.Name),
			slog.Int("objects", unsupported.Len()))
	}
}

func (r *CameraRenderer) submit(ctx render.Context) error {
	if err := r.buffer.EndSample(r.buffer.Name()); err != nil {
		return err
	}
	if err := r.executeBuffer(ctx); err != nil {
		return err
	}
	r.begun = false
	return ctx.Submit()
}

// executeBuffer hands the buffered commands to ctx and clears the buffer.
func (r *CameraRenderer) executeBuffer(ctx render.Context) error {
	err := ctx.ExecuteCommandBuffer(r.buffer)
	r.buffer.Clear()
	return err
}

// unwind drops the buffered work of a failed render and returns cause.
// When the context already accepted our BeginSample but not the matching
// EndSample, one attempt is made to send it. A scope the context never
// accepted is not closed.
func (r *CameraRenderer) unwind(ctx render.Context, cause error) error {
	r.buffer.Reset()
	if r.begun {
		r.begun = false
		name := r.buffer.Name()
		// reopen locally only; the context already has the begin
		r.buffer.BeginSample(name)
		r.buffer.Clear()
		if err := r.buffer.EndSample(name); err == nil {
			if err := ctx.ExecuteCommandBuffer(r.buffer); err != nil {
				Logger().Warn("forward: flush after render error failed", slog.Any("error", err))
			}
		}
		r.buffer.Reset()
	}
	return cause
}

func cameraName(cam *render.Camera) string {
	if cam == nil {
		return "<nil>"
	}
	return cam.Name
}
