package forward

import (
	"log/slog"

	"github.com/gogpu/forward/render"
)

// CameraList is a read-only, ordered sequence of the cameras of a frame.
// Hosts keep one list and update it in place instead of rebuilding it
// every frame.
type CameraList interface {
	Len() int
	At(i int) *render.Camera
}

// Cameras is a slice-backed CameraList. *Cameras implements CameraList,
// so passing &cameras to Render does not copy the slice header into a new
// interface value each frame.
type Cameras []*render.Camera

// Len implements CameraList. A nil *Cameras is empty.
func (c *Cameras) Len() int {
	if c == nil {
		return 0
	}
	return len(*c)
}

// At implements CameraList.
func (c *Cameras) At(i int) *render.Camera { return (*c)[i] }

// Pipeline renders every camera of a frame with a shared CameraRenderer.
//
// Cameras are rendered strictly in list order, one after another, so
// overlay cameras (split screen, UI over 3D) draw after the cameras below
// them.
type Pipeline struct {
	renderer *CameraRenderer
}

// NewPipeline creates a pipeline. Options configure its camera renderer.
func NewPipeline(opts ...Option) (*Pipeline, error) {
	r, err := NewCameraRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Pipeline{renderer: r}, nil
}

// CameraRenderer returns the renderer shared by all cameras.
func (p *Pipeline) CameraRenderer() *CameraRenderer { return p.renderer }

// Render renders the cameras in order into ctx.
// The first camera error stops the frame and is returned unchanged.
func (p *Pipeline) Render(ctx render.Context, cameras CameraList) error {
	if cameras == nil {
		return nil
	}
	for i := 0; i < cameras.Len(); i++ {
		cam := cameras.At(i)
		if err := p.renderer.Render(ctx, cam); err != nil {
			Logger().Error("forward: camera render failed",
				slog.String("camera", cameraName(cam)),
				slog.Int("index", i),
				slog.Any("error", err))
			return err
		}
	}
	return nil
}
