package soft

import (
	"log/slog"

	"github.com/gogpu/forward/render"
)

// Option configures a Context during creation.
type Option func(*options)

type options struct {
	device  render.DeviceHandle
	shaders []*render.Shader
	logger  *slog.Logger
}

// WithDevice sets the host device. Cameras without a color format render
// to the device surface format.
func WithDevice(h render.DeviceHandle) Option {
	return func(o *options) {
		o.device = h
	}
}

// WithShaders registers shaders in addition to the built-in ones.
// A shader named like a built-in replaces it.
func WithShaders(shaders ...*render.Shader) Option {
	return func(o *options) {
		o.shaders = append(o.shaders, shaders...)
	}
}

// WithLogger sets the context logger. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Context is the CPU reference render.Context.
//
// Context is not safe for concurrent use.
type Context struct {
	scene   *Scene
	device  render.DeviceHandle
	shaders *shaderLibrary
	logger  *slog.Logger

	pending Frame
	frames  []Frame

	culls int
	lists int
}

// New creates a context rendering scene. A nil scene is treated as empty.
func New(scene *Scene, opts ...Option) *Context {
	o := options{device: render.NullDeviceHandle{}}
	for _, opt := range opts {
		opt(&o)
	}
	if scene == nil {
		scene = NewScene()
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	lib := newShaderLibrary(BuiltinShaders()...)
	for _, s := range o.shaders {
		lib.add(s)
	}

	return &Context{
		scene:   scene,
		device:  o.device,
		shaders: lib,
		logger:  o.logger,
	}
}

// Scene returns the scene being rendered.
func (c *Context) Scene() *Scene { return c.scene }

// SetScene replaces the scene being rendered.
func (c *Context) SetScene(s *Scene) {
	if s == nil {
		s = NewScene()
	}
	c.scene = s
}

// DeviceHandle implements render.DeviceContext.
func (c *Context) DeviceHandle() render.DeviceHandle { return c.device }

// TryGetCullingParameters implements render.Context.
func (c *Context) TryGetCullingParameters(cam *render.Camera) (render.CullingParameters, bool) {
	return render.DeriveCullingParameters(cam)
}

// Cull implements render.Context. Renderables are tested by bounding box,
// lights by their range sphere. Scene order is preserved.
func (c *Context) Cull(params render.CullingParameters) *render.VisibilitySet {
	c.culls++

	visible := make([]render.VisibleRenderer, 0, len(c.scene.Renderables))
	for _, r := range c.scene.Renderables {
		if r == nil || !params.IntersectsAABB(r.Bounds) {
			continue
		}
		visible = append(visible, render.VisibleRenderer{
			Renderable: r,
			Distance:   r.Bounds.Center().Sub(params.Origin).Len(),
		})
	}

	var lights []render.VisibleLight
	for _, l := range c.scene.Lights {
		if params.IntersectsSphere(l.Position, l.Range) {
			lights = append(lights, l)
		}
	}

	c.logger.Debug("soft: cull",
		slog.String("camera", params.Camera),
		slog.Int("renderers", len(visible)),
		slog.Int("lights", len(lights)))
	return render.NewVisibilitySet(params, visible, lights)
}

// SetupCameraProperties implements render.Context.
func (c *Context) SetupCameraProperties(cam *render.Camera) {
	c.pending.Camera = cam.Name
	c.pending.ColorFormat = render.ResolveColorFormat(cam, c.device)
}

// CreateRendererList implements render.Context.
func (c *Context) CreateRendererList(desc render.RendererListDesc) render.RendererList {
	c.lists++
	return render.BuildRendererList(desc)
}

// CreateSkyboxRendererList implements render.Context.
func (c *Context) CreateSkyboxRendererList(cam *render.Camera) render.RendererList {
	c.lists++
	return render.NewSkyboxRendererList(cam, c.scene.Skybox)
}

// ExecuteCommandBuffer implements render.Context. Commands are copied.
func (c *Context) ExecuteCommandBuffer(buf *render.CommandBuffer) error {
	c.pending.Commands = append(c.pending.Commands, buf.Commands()...)
	c.pending.Executions++
	return nil
}

// Submit implements render.Context.
func (c *Context) Submit() error {
	c.logger.Debug("soft: submit",
		slog.String("camera", c.pending.Camera),
		slog.Int("commands", len(c.pending.Commands)))
	c.frames = append(c.frames, c.pending)
	c.pending = Frame{}
	return nil
}

// FindShader implements render.Context.
func (c *Context) FindShader(name string) (*render.Shader, bool) {
	return c.shaders.find(name)
}

// ShouldRenderGizmos implements render.GizmoDrawer.
func (c *Context) ShouldRenderGizmos() bool { return true }

// DrawGizmos implements render.GizmoDrawer.
func (c *Context) DrawGizmos(_ *render.Camera, subset render.GizmoSubset) {
	c.pending.Gizmos = append(c.pending.Gizmos, subset)
}

// EmitWorldGeometryForSceneView implements render.SceneViewEmitter.
func (c *Context) EmitWorldGeometryForSceneView(_ *render.Camera) {
	c.pending.SceneViewGeometry = true
}

// Frames returns the submitted frames in submission order.
func (c *Context) Frames() []Frame { return c.frames }

// Stats reports how many culls and renderer lists the context has produced.
func (c *Context) Stats() Stats {
	hits, misses, shaders := c.shaders.stats()
	return Stats{
		Culls:         c.culls,
		RendererLists: c.lists,
		Submits:       len(c.frames),
		Shaders:       shaders,
		ShaderHits:    hits,
		ShaderMisses:  misses,
	}
}

// Reset drops submitted frames, pending work and counters.
func (c *Context) Reset() {
	c.frames = nil
	c.pending = Frame{}
	c.culls = 0
	c.lists = 0
}

// Stats contains soft context counters.
type Stats struct {
	Culls         int
	RendererLists int
	Submits       int
	Shaders       int
	ShaderHits    uint64
	ShaderMisses  uint64
}

// Ensure Context implements the render interfaces.
var (
	_ render.Context          = (*Context)(nil)
	_ render.GizmoDrawer      = (*Context)(nil)
	_ render.SceneViewEmitter = (*Context)(nil)
	_ render.DeviceContext    = (*Context)(nil)
)
