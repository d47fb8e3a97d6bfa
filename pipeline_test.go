package forward

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/forward/backend/soft"
	"github.com/gogpu/forward/render"
)

func frameCameras(s *spyContext) []string {
	var names []string
	for _, f := range s.Frames() {
		names = append(names, f.Camera)
	}
	return names
}

func TestPipelineRendersCamerasInOrder(t *testing.T) {
	resetErrorMaterial(t)
	spy := newSpyContext(t, testScene)
	p := newTestPipeline(t)

	if err := p.Render(spy, &Cameras{testCamera("Main"), testCamera("Overlay")}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if got := frameCameras(spy); len(got) != 2 || got[0] != "Main" || got[1] != "Overlay" {
		t.Errorf("submitted cameras = %v, want [Main Overlay]", got)
	}
	// each camera gets its own culling result
	if n := spy.count("Cull"); n != 2 {
		t.Fatalf("Cull calls = %d, want 2", n)
	}
	vis := spy.visibilities
	if vis[0] == vis[1] {
		t.Error("cameras share one visibility set")
	}
	if vis[0].Camera() != "Main" || vis[1].Camera() != "Overlay" {
		t.Errorf("visibility cameras = %q, %q, want Main, Overlay", vis[0].Camera(), vis[1].Camera())
	}
	// the first camera is fully submitted before the second is culled
	submit := -1
	for i, c := range spy.calls {
		if c == "Submit" {
			submit = i
			break
		}
	}
	if submit < 0 || spy.calls[submit+1] != "TryGetCullingParameters" {
		t.Errorf("cameras interleaved: %v", spy.calls)
	}
	for i, f := range spy.Frames() {
		if _, balanced := f.Samples(); !balanced {
			t.Errorf("frame %d has unbalanced samples", i)
		}
	}
}

func TestPipelineNilAndEmptyList(t *testing.T) {
	resetErrorMaterial(t)
	spy := newSpyContext(t, testScene)
	p := newTestPipeline(t)

	if err := p.Render(spy, nil); err != nil {
		t.Errorf("Render(nil) = %v", err)
	}
	if err := p.Render(spy, &Cameras{}); err != nil {
		t.Errorf("Render(empty) = %v", err)
	}
	var unset *Cameras
	if err := p.Render(spy, unset); err != nil {
		t.Errorf("Render(nil *Cameras) = %v", err)
	}
	if len(spy.calls) != 0 {
		t.Errorf("calls = %v, want none", spy.calls)
	}
}

func TestPipelineSkipsInvalidCamera(t *testing.T) {
	resetErrorMaterial(t)
	spy := newSpyContext(t, testScene)

	bad := testCamera("Bad")
	bad.Projection = mgl32.Mat4{}

	if err := newTestPipeline(t).Render(spy, &Cameras{testCamera("A"), bad, testCamera("B")}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := frameCameras(spy); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Errorf("submitted cameras = %v, want [A B]", got)
	}
}

func TestPipelineStopsOnFirstError(t *testing.T) {
	resetErrorMaterial(t)
	spy := newSpyContext(t, testScene)
	lost := errors.New("device lost")
	spy.submitErr = lost

	err := newTestPipeline(t).Render(spy, &Cameras{testCamera("A"), testCamera("B")})
	if !errors.Is(err, lost) {
		t.Fatalf("Render = %v, want %v", err, lost)
	}
	if n := spy.count("TryGetCullingParameters"); n != 1 {
		t.Errorf("cameras attempted = %d, want 1", n)
	}
}

// ringCameras is a fixed-size CameraList the host updates in place.
type ringCameras struct {
	cams [2]*render.Camera
	n    int
}

func (r *ringCameras) Len() int                 { return r.n }
func (r *ringCameras) At(i int) *render.Camera { return r.cams[i] }

func TestPipelineCustomCameraList(t *testing.T) {
	resetErrorMaterial(t)
	spy := newSpyContext(t, testScene)
	p := newTestPipeline(t)
	list := &ringCameras{cams: [2]*render.Camera{testCamera("A"), testCamera("B")}, n: 1}

	for frame := 0; frame < 3; frame++ {
		if err := p.Render(spy, list); err != nil {
			t.Fatalf("frame %d: %v", frame, err)
		}
	}
	list.n = 2
	if err := p.Render(spy, list); err != nil {
		t.Fatalf("Render: %v", err)
	}

	got := frameCameras(spy)
	want := []string{"A", "A", "A", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("submitted cameras = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("submit %d camera = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPipelineCameraListAllocs(t *testing.T) {
	resetErrorMaterial(t)
	ctx := soft.New(nil)
	p := newTestPipeline(t)
	r := p.CameraRenderer()

	cams := make(Cameras, 0, 2)
	if n := testing.AllocsPerRun(100, func() { _ = p.Render(ctx, &cams) }); n != 0 {
		t.Errorf("empty list: %v allocs per frame, want 0", n)
	}

	// cameras without culling parameters keep the per-camera cost fixed
	for _, name := range []string{"A", "B"} {
		c := testCamera(name)
		c.Projection = mgl32.Mat4{}
		cams = append(cams, c)
	}
	direct := testing.AllocsPerRun(100, func() {
		for _, c := range cams {
			_ = r.Render(ctx, c)
		}
	})
	viaList := testing.AllocsPerRun(100, func() { _ = p.Render(ctx, &cams) })
	if viaList > direct {
		t.Errorf("Render(&cams) = %v allocs per frame, rendering directly = %v", viaList, direct)
	}
}

func TestPipelineSharesCameraRenderer(t *testing.T) {
	p := newTestPipeline(t, WithCommandBufferName("Frame"))
	r := p.CameraRenderer()
	if r == nil {
		t.Fatal("CameraRenderer() returned nil")
	}
	if p.CameraRenderer() != r {
		t.Error("CameraRenderer() should return the same renderer")
	}
	if r.Buffer().Name() != "Frame" {
		t.Errorf("buffer name = %q, want Frame", r.Buffer().Name())
	}
}
